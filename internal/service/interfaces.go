package service

import (
	"context"

	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// ICatalogService loads the selectable ingredients
type ICatalogService interface {
	// LoadCatalog never returns a nil catalog; on error it is empty.
	LoadCatalog(ctx context.Context) (*model.Catalog, error)
}

// NutritionLookup fetches one nutrition record by external search key
type NutritionLookup interface {
	Lookup(ctx context.Context, searchKey string) (model.NutritionRecord, error)
}

// INutritionService enriches a selection with nutrition facts
type INutritionService interface {
	Enrich(ctx context.Context, catalog *model.Catalog, selection []string) []NutritionResult
}

// IOrderService persists submitted orders
type IOrderService interface {
	SubmitOrder(ctx context.Context, ingredients []string, nameOnOrder string) (*model.Order, error)
}
