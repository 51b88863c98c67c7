package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/config"
	"github.com/pageza/smoothie-orders/backend/internal/database"
	"github.com/pageza/smoothie-orders/backend/internal/logging"
	"github.com/pageza/smoothie-orders/backend/migrations"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Must(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	ctx := context.Background()
	if _, err := database.RunMigrations(ctx, db, migrations.Files); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	inserted, err := database.SeedFruits(ctx, db, database.DefaultFruits)
	if err != nil {
		logger.Fatal("failed to seed fruits", zap.Error(err))
	}
	logger.Info("fruit catalog seeded",
		zap.Int64("inserted", inserted),
		zap.Int("catalog_size", len(database.DefaultFruits)),
	)
}
