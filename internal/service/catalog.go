package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/smoothie-orders/backend/internal/metrics"
	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// CatalogService reads the fruit catalog from the backing store
type CatalogService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		db:     db,
		logger: logger.Named("catalog"),
	}
}

// LoadCatalog fetches every fruit option. A failed read degrades to an empty
// catalog so the caller can keep rendering.
func (s *CatalogService) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	var options []model.FruitOption
	err := s.db.WithContext(ctx).
		Select("fruit_name", "search_on").
		Order("fruit_name").
		Find(&options).Error
	if err != nil {
		s.logger.Warn("catalog load failed", zap.Error(err))
		metrics.RecordCatalogLoad(metrics.OutcomeError)
		return model.EmptyCatalog(), fmt.Errorf("failed to load fruit options: %w", err)
	}

	metrics.RecordCatalogLoad(metrics.OutcomeSuccess)
	s.logger.Debug("catalog loaded", zap.Int("fruits", len(options)))
	return model.NewCatalog(options), nil
}
