package handlers

import (
	"github.com/gofiber/fiber/v2"

	"filehub-api/internal/apperr"
	"filehub-api/internal/services"
)

// AuthHandler handles session creation and revocation.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// GetConnect exchanges Basic credentials for a session token.
func (h *AuthHandler) GetConnect(c *fiber.Ctx) error {
	token, err := h.auth.Login(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// GetDisconnect revokes the request's session token.
func (h *AuthHandler) GetDisconnect(c *fiber.Ctx) error {
	token := c.Get(HeaderToken)
	if token == "" {
		return apperr.Unauthorized()
	}
	if err := h.auth.Logout(token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
