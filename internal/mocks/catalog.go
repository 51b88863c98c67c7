package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

// LoadCatalog mocks the LoadCatalog method
func (m *MockCatalogService) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return model.EmptyCatalog(), args.Error(1)
	}
	return args.Get(0).(*model.Catalog), args.Error(1)
}
