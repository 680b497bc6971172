package handlers

import (
	"github.com/gofiber/fiber/v2"

	"filehub-api/internal/apperr"
	"filehub-api/internal/requests"
	"filehub-api/internal/services"
)

// UserHandler handles registration and the current-user endpoint.
type UserHandler struct {
	users    *services.UserService
	sessions *services.SessionService
}

func NewUserHandler(users *services.UserService, sessions *services.SessionService) *UserHandler {
	return &UserHandler{users: users, sessions: sessions}
}

// PostNew registers a new user.
func (h *UserHandler) PostNew(c *fiber.Ctx) error {
	var input requests.CreateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return apperr.BadRequest("Missing email")
	}

	user, err := h.users.Register(input.Email, input.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

// GetMe returns the user behind the request's session token.
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, err := resolveUser(h.sessions, c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}
