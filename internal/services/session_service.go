package services

import (
	"github.com/google/uuid"

	"filehub-api/internal/apperr"
)

// KeyValueStore is the subset of the cache client the session store
// relies on: values with per-key expiry.
type KeyValueStore interface {
	SetEx(key, value string, ttlSeconds int) error
	Get(key string) (string, bool, error)
	Del(key string) error
}

// SessionService maps opaque bearer tokens to user ids for a bounded
// lifetime. Expiry is enforced by the store; a token that outlives its
// TTL simply stops resolving.
type SessionService struct {
	store      KeyValueStore
	ttlSeconds int
}

func NewSessionService(store KeyValueStore, ttlSeconds int) *SessionService {
	return &SessionService{store: store, ttlSeconds: ttlSeconds}
}

func sessionKey(token string) string {
	return "auth_" + token
}

// Create mints a new token bound to userID for the configured TTL.
func (s *SessionService) Create(userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.store.SetEx(sessionKey(token), userID.String(), s.ttlSeconds); err != nil {
		return "", apperr.Internal("Failed to create session")
	}
	return token, nil
}

// Resolve returns the user id bound to token. Absence covers expired,
// revoked and never-issued tokens alike.
func (s *SessionService) Resolve(token string) (uuid.UUID, bool, error) {
	value, found, err := s.store.Get(sessionKey(token))
	if err != nil {
		return uuid.Nil, false, apperr.Internal("Failed to resolve session")
	}
	if !found {
		return uuid.Nil, false, nil
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return userID, true, nil
}

// Revoke deletes the session. Revoking an absent token is a no-op.
func (s *SessionService) Revoke(token string) error {
	if err := s.store.Del(sessionKey(token)); err != nil {
		return apperr.Internal("Failed to revoke session")
	}
	return nil
}
