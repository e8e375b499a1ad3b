package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/example/vardhaman/internal/config"
	"github.com/example/vardhaman/internal/database"
	"github.com/example/vardhaman/internal/handlers"
	"github.com/example/vardhaman/internal/routes"
	"github.com/example/vardhaman/internal/storage"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	var store *storage.Service
	if cfg.UploadsEnabled() {
		store, err = storage.New(cfg)
		if err != nil {
			log.Fatal("object storage setup failed", zap.Error(err))
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Vardhaman Catalog Admin",
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, store, log)

	go func() {
		log.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Fatal("fiber.Listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		log.Error("database close failed", zap.Error(err))
	}
}
