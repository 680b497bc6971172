package services

import (
	"encoding/base64"
	"strings"

	"filehub-api/internal/apperr"
	"filehub-api/internal/utils"
)

// AuthService turns Basic credentials into sessions and back.
type AuthService struct {
	users    *UserService
	sessions *SessionService
}

func NewAuthService(users *UserService, sessions *SessionService) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login validates a "Basic base64(email:password)" authorization header
// and mints a session token. Every failure mode is the same 401 so the
// response does not leak which part was wrong.
func (s *AuthService) Login(authorization string) (string, error) {
	const prefix = "Basic "
	if !strings.HasPrefix(authorization, prefix) {
		return "", apperr.Unauthorized()
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authorization, prefix))
	if err != nil {
		return "", apperr.Unauthorized()
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", apperr.Unauthorized()
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user.Password != utils.SHA1Hex(password) {
		return "", apperr.Unauthorized()
	}

	return s.sessions.Create(user.ID)
}

// Logout revokes the session behind token. An unknown or expired token
// is a 401, matching the login contract.
func (s *AuthService) Logout(token string) error {
	_, found, err := s.sessions.Resolve(token)
	if err != nil {
		return err
	}
	if !found {
		return apperr.Unauthorized()
	}
	return s.sessions.Revoke(token)
}
