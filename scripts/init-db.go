package main

import (
	"brick_manager/internal/config"
	"brick_manager/internal/database"
	"brick_manager/internal/logger"
	"brick_manager/internal/migrations"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.Init(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("Initializing database...")

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, true, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Recreate all tables and seed the billing settings
	if err := migrations.RunMigrations(db, log); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	log.Info("Database initialization completed successfully!")
}
