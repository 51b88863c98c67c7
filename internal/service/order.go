package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/smoothie-orders/backend/internal/metrics"
	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// ErrEmptySelection is returned when an order has no ingredients
var ErrEmptySelection = errors.New("no ingredients selected")

// OrderService writes submitted orders
type OrderService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrderService creates a new OrderService instance
func NewOrderService(db *gorm.DB, logger *zap.Logger) *OrderService {
	return &OrderService{
		db:     db,
		logger: logger.Named("orders"),
	}
}

// SubmitOrder inserts one row for the selection. The insert is a single
// parameterized statement, so a failure leaves nothing behind.
func (s *OrderService) SubmitOrder(ctx context.Context, ingredients []string, nameOnOrder string) (*model.Order, error) {
	if len(ingredients) == 0 {
		metrics.RecordOrderSubmission(metrics.OutcomeRejected)
		return nil, ErrEmptySelection
	}

	order := model.NewOrder(ingredients, nameOnOrder)
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		metrics.RecordOrderSubmission(metrics.OutcomeError)
		s.logger.Error("order insert failed", zap.String("name_on_order", nameOnOrder), zap.Error(err))
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	metrics.RecordOrderSubmission(metrics.OutcomeSuccess)
	s.logger.Info("order submitted",
		zap.Uint("order_id", order.ID),
		zap.String("name_on_order", order.NameOnOrder),
		zap.String("ingredients", order.Ingredients),
	)
	return order, nil
}
