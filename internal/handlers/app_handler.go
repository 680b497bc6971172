package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"filehub-api/internal/database"
	"filehub-api/internal/services"
)

// Pinger reports liveness of the cache backend.
type Pinger interface {
	Ping() error
}

// AppHandler serves the liveness and stats endpoints.
type AppHandler struct {
	db    *gorm.DB
	cache Pinger
	users *services.UserService
	files *services.FileService
}

func NewAppHandler(db *gorm.DB, cache Pinger, users *services.UserService, files *services.FileService) *AppHandler {
	return &AppHandler{db: db, cache: cache, users: users, files: files}
}

// GetStatus reports liveness of the backing stores.
func (h *AppHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"redis": h.cache.Ping() == nil,
		"db":    database.Ping(h.db),
	})
}

// GetStats reports the number of users and files.
func (h *AppHandler) GetStats(c *fiber.Ctx) error {
	users, err := h.users.Count()
	if err != nil {
		return err
	}
	files, err := h.files.Count()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"users": users,
		"files": files,
	})
}
