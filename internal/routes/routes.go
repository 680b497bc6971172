package routes

import (
	"github.com/gofiber/fiber/v2"

	"filehub-api/internal/handlers"
)

// SetupRoutes wires the REST surface onto the app.
func SetupRoutes(app *fiber.App, appHandler *handlers.AppHandler, userHandler *handlers.UserHandler, authHandler *handlers.AuthHandler, fileHandler *handlers.FileHandler) {
	app.Get("/status", appHandler.GetStatus)
	app.Get("/stats", appHandler.GetStats)

	app.Post("/users", userHandler.PostNew)
	app.Get("/users/me", userHandler.GetMe)

	app.Get("/connect", authHandler.GetConnect)
	app.Get("/disconnect", authHandler.GetDisconnect)

	app.Post("/files", fileHandler.PostUpload)
	app.Get("/files", fileHandler.GetIndex)
	app.Get("/files/:id", fileHandler.GetShow)
	app.Get("/files/:id/data", fileHandler.GetData)
	app.Put("/files/:id/publish", fileHandler.PutPublish)
	app.Put("/files/:id/unpublish", fileHandler.PutUnpublish)
}
