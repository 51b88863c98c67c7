package workflow

import (
	"fmt"

	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
)

// View is everything a front end needs to render the session.
type View struct {
	ID              string                    `json:"id"`
	NameOnOrder     string                    `json:"name_on_order"`
	NameLine        string                    `json:"name_line,omitempty"`
	Fruits          []string                  `json:"fruits"`
	CatalogError    string                    `json:"catalog_error,omitempty"`
	Selection       []string                  `json:"selection"`
	Nutrition       []service.NutritionResult `json:"nutrition"`
	SubmitAvailable bool                      `json:"submit_available"`
	Status          string                    `json:"status,omitempty"`
	Order           *model.Order              `json:"order,omitempty"`
	Closed          bool                      `json:"closed,omitempty"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:              s.id,
		NameOnOrder:     s.name,
		Fruits:          s.catalog.Names(),
		CatalogError:    s.catalogErr,
		Selection:       append([]string{}, s.selection...),
		Nutrition:       append([]service.NutritionResult{}, s.nutrition...),
		SubmitAvailable: !s.closed && len(s.selection) > 0,
		Status:          s.status,
		Order:           s.order,
		Closed:          s.closed,
	}
	if s.name != "" {
		v.NameLine = fmt.Sprintf(nameLineFormat, s.name)
	}
	return v
}
