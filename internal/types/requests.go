package types

import (
	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

// SetNameRequest represents the request body for naming an order
type SetNameRequest struct {
	NameOnOrder string `json:"name_on_order"`
}

// SetIngredientsRequest replaces the whole selection
type SetIngredientsRequest struct {
	Ingredients []string `json:"ingredients"`
}

// AddIngredientRequest adds one fruit to the selection
type AddIngredientRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

// CreateOrderRequest represents the request body for a one-shot order
type CreateOrderRequest struct {
	NameOnOrder string   `json:"name_on_order"`
	Ingredients []string `json:"ingredients"`
}

// FruitsResponse lists the catalog. Error is set when the catalog failed to load.
type FruitsResponse struct {
	Fruits []model.FruitOption `json:"fruits"`
	Error  string              `json:"error,omitempty"`
}

// SessionResponse wraps a session view
type SessionResponse struct {
	Session workflow.View `json:"session"`
}

// OrderResponse is returned after a successful submit
type OrderResponse struct {
	Message string         `json:"message"`
	Order   *model.Order   `json:"order"`
	Session *workflow.View `json:"session,omitempty"`
}
