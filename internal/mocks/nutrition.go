package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
)

// MockNutritionLookup is a mock implementation of a nutrition API client
type MockNutritionLookup struct {
	mock.Mock
}

// Lookup mocks the Lookup method
func (m *MockNutritionLookup) Lookup(ctx context.Context, searchKey string) (model.NutritionRecord, error) {
	args := m.Called(ctx, searchKey)
	return args.Get(0).(model.NutritionRecord), args.Error(1)
}

// MockNutritionService is a mock implementation of the nutrition enricher
type MockNutritionService struct {
	mock.Mock
}

// Enrich mocks the Enrich method
func (m *MockNutritionService) Enrich(ctx context.Context, catalog *model.Catalog, selection []string) []service.NutritionResult {
	args := m.Called(ctx, catalog, selection)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.NutritionResult)
}
