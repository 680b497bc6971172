package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"filehub-api/internal/apperr"
	"filehub-api/internal/services"
)

// HeaderToken carries the session token on authenticated requests.
const HeaderToken = "X-Token"

// resolveUser authenticates the request via its X-Token header.
func resolveUser(sessions *services.SessionService, c *fiber.Ctx) (uuid.UUID, error) {
	token := c.Get(HeaderToken)
	if token == "" {
		return uuid.Nil, apperr.Unauthorized()
	}
	userID, found, err := sessions.Resolve(token)
	if err != nil {
		return uuid.Nil, err
	}
	if !found {
		return uuid.Nil, apperr.Unauthorized()
	}
	return userID, nil
}
