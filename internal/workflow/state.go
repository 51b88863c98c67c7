package workflow

import (
	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
)

// State is the serialisable form of a session. The catalog travels with it
// so a restored session never reloads it.
type State struct {
	ID           string                    `json:"id"`
	Catalog      []model.FruitOption       `json:"catalog"`
	CatalogError string                    `json:"catalog_error,omitempty"`
	NameOnOrder  string                    `json:"name_on_order"`
	Selection    []string                  `json:"selection"`
	Nutrition    []service.NutritionResult `json:"nutrition,omitempty"`
	Status       string                    `json:"status,omitempty"`
	Order        *model.Order              `json:"order,omitempty"`
}

// Snapshot captures the session for a Store.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:           s.id,
		Catalog:      s.catalog.Options(),
		CatalogError: s.catalogErr,
		NameOnOrder:  s.name,
		Selection:    append([]string{}, s.selection...),
		Nutrition:    append([]service.NutritionResult{}, s.nutrition...),
		Status:       s.status,
		Order:        s.order,
	}
}

// Restore rebuilds a session from a snapshot without any external calls.
func Restore(state State, deps Deps) *Session {
	s := newSession(state.ID, deps)
	s.catalog = model.NewCatalog(state.Catalog)
	s.catalogErr = state.CatalogError
	s.name = state.NameOnOrder
	s.selection = append([]string{}, state.Selection...)
	if len(s.selection) > MaxIngredients {
		s.selection = s.selection[:MaxIngredients]
	}
	s.nutrition = append([]service.NutritionResult{}, state.Nutrition...)
	s.status = state.Status
	s.order = state.Order
	return s
}
