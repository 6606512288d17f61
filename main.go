package main

import (
	"context"
	"log"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/cmd"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/seed"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/wire"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/database"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Create tables and constraints
	if err := database.InitSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Seed demo data (idempotent)
	seeder := seed.NewSeeder(repos, config.Seed, logger)
	if err := seeder.Run(context.Background()); err != nil {
		logger.Fatal("Failed to seed demo data", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
