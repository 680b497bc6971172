package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"filehub-api/internal/apperr"
	"filehub-api/internal/cache"
	"filehub-api/internal/config"
	"filehub-api/internal/constants"
	"filehub-api/internal/database"
	"filehub-api/internal/handlers"
	"filehub-api/internal/queue"
	"filehub-api/internal/routes"
	"filehub-api/internal/services"
	"filehub-api/internal/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	pkgValidator "github.com/kerimovok/go-pkg-utils/validator"
	"gorm.io/gorm"
)

func setupApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    100 * 1024 * 1024, // 100MB limit for base64 uploads
		ErrorHandler: apperr.ErrorHandler,
	})

	// Middleware
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(logger.New())

	return app
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	if err := pkgValidator.ValidateConfig(constants.EnvValidationRules); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func(db *gorm.DB) {
		if err := database.Close(db); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}(db)

	cacheClient, err := cache.Connect(pkgConfig.GetEnv("REDIS_URL"))
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer cacheClient.Close()

	blobs, err := services.NewBlobService(cfg.Storage.Blob.Root)
	if err != nil {
		log.Fatalf("failed to prepare blob storage: %v", err)
	}

	jobQueue := queue.New(cacheClient)
	sessions := services.NewSessionService(cacheClient, cfg.Storage.Session.TTLSeconds)
	users := services.NewUserService(db, jobQueue)
	auth := services.NewAuthService(users, sessions)
	files := services.NewFileService(db, blobs, jobQueue, cfg.Storage.Catalog.PageSize, cfg.Storage.Thumbnails.Sizes)

	// Setup Fiber app
	app := setupApp()
	routes.SetupRoutes(app,
		handlers.NewAppHandler(db, cacheClient, users, files),
		handlers.NewUserHandler(users, sessions),
		handlers.NewAuthHandler(auth),
		handlers.NewFileHandler(files, sessions),
	)

	// Background workers share the process but are driven only by the
	// queue, never by request handling.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	thumbnails := workers.NewThumbnailWorker(jobQueue, files, blobs, cfg.Storage.Thumbnails.Sizes)
	for i := 0; i < cfg.Storage.Thumbnails.Concurrency; i++ {
		go thumbnails.Run(workerCtx)
	}
	go workers.NewWelcomeWorker(jobQueue, users).Run(workerCtx)

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")

		stopWorkers()
		if err := app.Shutdown(); err != nil {
			log.Printf("error during server shutdown: %v", err)
		}
	}()

	// Start server
	if err := app.Listen(":" + pkgConfig.GetEnv("PORT")); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}

	log.Println("Server gracefully stopped")
}
