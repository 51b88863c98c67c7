package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/config"
	"github.com/pageza/smoothie-orders/backend/internal/database"
	"github.com/pageza/smoothie-orders/backend/internal/logging"
	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

// Opener builds the collaborators for one command run. The returned func
// releases them.
type Opener func(ctx context.Context) (workflow.Deps, func(), error)

// NewRootCmd returns the smoothie command tree backed by open.
func NewRootCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smoothie",
		Short:         "Order a custom smoothie",
		Long:          "Pick up to five fruits, check their nutrition facts and place a smoothie order.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newFruitsCmd(open))
	cmd.AddCommand(newOrderCmd(open))
	return cmd
}

func Execute() error {
	return NewRootCmd(OpenFromConfig).Execute()
}

// OpenFromConfig wires real services from the environment configuration.
func OpenFromConfig(ctx context.Context) (workflow.Deps, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return workflow.Deps{}, nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return workflow.Deps{}, nil, fmt.Errorf("creating logger: %w", err)
	}
	db, err := database.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return workflow.Deps{}, nil, fmt.Errorf("connecting to database: %w", err)
	}

	deps := workflow.Deps{
		Catalog:   service.NewCatalogService(db, logger),
		Nutrition: service.NewNutritionService(service.NewFruityviceClient(cfg.FruityviceBaseURL, cfg.FruityviceTimeout), logger),
		Orders:    service.NewOrderService(db, logger),
		Logger:    logger,
	}
	release := func() {
		if err := database.Close(db); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
		_ = logger.Sync()
	}
	return deps, release, nil
}
