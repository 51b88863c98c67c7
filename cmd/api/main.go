package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/config"
	"github.com/pageza/smoothie-orders/backend/internal/api"
	"github.com/pageza/smoothie-orders/backend/internal/database"
	"github.com/pageza/smoothie-orders/backend/internal/logging"
	"github.com/pageza/smoothie-orders/backend/internal/middleware"
	"github.com/pageza/smoothie-orders/backend/internal/router"
	"github.com/pageza/smoothie-orders/backend/internal/server"
	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
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

	applied, err := database.RunMigrations(context.Background(), db, migrations.Files)
	if err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations up to date", zap.Strings("applied", applied))

	// Redis is optional: sessions and rate limits fall back to process memory.
	var redisClient *redis.Client
	sessions := workflow.Store(workflow.NewMemoryStore(cfg.SessionTTL))
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg, logger)
		if err != nil {
			logger.Warn("redis unavailable, keeping sessions in memory", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			sessions = workflow.NewRedisStore(redisClient, cfg.SessionTTL)
		}
	}

	svc := api.Services{
		Catalog:      service.NewCatalogService(db, logger),
		Nutrition:    service.NewNutritionService(service.NewFruityviceClient(cfg.FruityviceBaseURL, cfg.FruityviceTimeout), logger),
		Orders:       service.NewOrderService(db, logger),
		Sessions:     sessions,
		DB:           db,
		OrderLimiter: middleware.NewOrderRateLimiter(redisClient, cfg.OrderRateLimit, cfg.OrderRateWindow),
	}
	srv := server.New(cfg, router.SetupRouter(svc, logger), logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
