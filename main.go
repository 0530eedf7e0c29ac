// main.go
package main

import (
	"context"
	"log"
	"time"

	"store-ratings/cmd"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/wire"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/database"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Ensure schema
	if err := database.Bootstrap(context.Background(), db); err != nil {
		logger.Fatal("Failed to bootstrap schema", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session token issuer, secret and validity window from config
	issuer := auth.NewTokenIssuer(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	// Wire all dependencies
	app := wire.Wiring(repos, issuer, config, logger)

	// Seed administrator account when configured
	if err := app.Service.Auth.EnsureSeedAdmin(context.Background()); err != nil {
		logger.Fatal("Failed to seed admin", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
