package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// MockOrderService is a mock implementation of the order service
type MockOrderService struct {
	mock.Mock
}

// SubmitOrder mocks the SubmitOrder method
func (m *MockOrderService) SubmitOrder(ctx context.Context, ingredients []string, nameOnOrder string) (*model.Order, error) {
	args := m.Called(ctx, ingredients, nameOnOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}
