package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filehub-api/internal/apperr"
)

func basicAuth(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func newTestAuth(t *testing.T) (*AuthService, *SessionService, *UserService) {
	t.Helper()

	users := NewUserService(newTestDB(t), &fakeQueue{})
	sessions := NewSessionService(newFakeKV(), 86400)
	return NewAuthService(users, sessions), sessions, users
}

func TestLogin(t *testing.T) {
	auth, sessions, users := newTestAuth(t)

	user, err := users.Register("alice@example.com", "secret")
	require.NoError(t, err)

	token, err := auth.Login(basicAuth("alice@example.com", "secret"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, found, err := sessions.Resolve(token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, user.ID, resolved)
}

func TestLoginRejections(t *testing.T) {
	auth, _, users := newTestAuth(t)

	_, err := users.Register("alice@example.com", "secret")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Bearer abc"},
		{"invalid base64", "Basic %%%"},
		{"no separator", "Basic " + base64.StdEncoding.EncodeToString([]byte("alice@example.com"))},
		{"empty email", basicAuth("", "secret")},
		{"empty password", basicAuth("alice@example.com", "")},
		{"unknown user", basicAuth("bob@example.com", "secret")},
		{"wrong password", basicAuth("alice@example.com", "Secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(tt.header)
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 401, appErr.Status)
		})
	}
}

func TestLogout(t *testing.T) {
	auth, sessions, users := newTestAuth(t)

	_, err := users.Register("alice@example.com", "secret")
	require.NoError(t, err)

	token, err := auth.Login(basicAuth("alice@example.com", "secret"))
	require.NoError(t, err)

	require.NoError(t, auth.Logout(token))

	_, found, err := sessions.Resolve(token)
	require.NoError(t, err)
	assert.False(t, found)

	// The token is gone now, so a second logout is a 401.
	err = auth.Logout(token)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
}
