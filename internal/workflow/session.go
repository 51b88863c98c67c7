package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
)

// MaxIngredients is the most fruits one smoothie can hold.
const MaxIngredients = 5

const (
	MessageOrdered     = "Your Smoothie is ordered!"
	catalogErrorPrefix = "Error fetching data from the catalog: "
	submitErrorPrefix  = "Error submitting order: "
	nameLineFormat     = "The name on your Smoothie will be: %s"
)

var (
	ErrSelectionLimit    = fmt.Errorf("you can only select up to %d ingredients", MaxIngredients)
	ErrUnknownIngredient = errors.New("ingredient is not in the catalog")
	ErrNothingToSubmit   = errors.New("no ingredients selected")
	ErrClosed            = errors.New("session is closed")
)

// Deps are the collaborators a session talks to.
type Deps struct {
	Catalog   service.ICatalogService
	Nutrition service.INutritionService
	Orders    service.IOrderService
	Logger    *zap.Logger
}

// Session is one order being composed. Each exported method is the handler
// for a single user event.
type Session struct {
	mu     sync.Mutex
	deps   Deps
	logger *zap.Logger

	id         string
	catalog    *model.Catalog
	catalogErr string
	name       string
	selection  []string
	nutrition  []service.NutritionResult
	status     string
	order      *model.Order
	closed     bool
}

// NewSession loads the catalog once and starts an empty order. A catalog
// failure is recorded on the session, which stays usable with nothing to select.
func NewSession(ctx context.Context, deps Deps) *Session {
	s := newSession(uuid.New().String(), deps)

	catalog, err := deps.Catalog.LoadCatalog(ctx)
	if catalog == nil {
		catalog = model.EmptyCatalog()
	}
	s.catalog = catalog
	if err != nil {
		s.catalogErr = catalogErrorPrefix + err.Error()
		s.logger.Warn("catalog unavailable", zap.String("session_id", s.id), zap.Error(err))
	}
	return s
}

func newSession(id string, deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		deps:    deps,
		logger:  logger.Named("workflow"),
		id:      id,
		catalog: model.EmptyCatalog(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// SetName stores the name on the order. It never triggers lookups.
func (s *Session) SetName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.name = strings.TrimSpace(name)
	return nil
}

// AddIngredient appends one fruit. Adding a fruit that is already selected
// does nothing.
func (s *Session) AddIngredient(ctx context.Context, fruit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.selected(fruit) {
		return nil
	}
	if !s.catalog.Contains(fruit) {
		return fmt.Errorf("%w: %s", ErrUnknownIngredient, fruit)
	}
	if len(s.selection) >= MaxIngredients {
		return ErrSelectionLimit
	}

	next := append(append([]string{}, s.selection...), fruit)
	s.changeSelection(ctx, next)
	return nil
}

// RemoveIngredient drops one fruit. Removing an unselected fruit does nothing.
func (s *Session) RemoveIngredient(ctx context.Context, fruit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if !s.selected(fruit) {
		return nil
	}

	next := make([]string, 0, len(s.selection)-1)
	for _, f := range s.selection {
		if f != fruit {
			next = append(next, f)
		}
	}
	s.changeSelection(ctx, next)
	return nil
}

// SetIngredients replaces the selection. The new list is accepted whole or
// not at all; repeated names keep their first position.
func (s *Session) SetIngredients(ctx context.Context, fruits []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	next, err := ValidateSelection(s.catalog, fruits)
	if err != nil {
		return err
	}
	if equalSelection(s.selection, next) {
		return nil
	}
	s.changeSelection(ctx, next)
	return nil
}

// ValidateSelection checks a whole selection against the catalog and the
// ingredient limit, collapsing repeats to their first occurrence.
func ValidateSelection(catalog *model.Catalog, fruits []string) ([]string, error) {
	next := make([]string, 0, len(fruits))
	seen := make(map[string]struct{}, len(fruits))
	for _, f := range fruits {
		if _, dup := seen[f]; dup {
			continue
		}
		if !catalog.Contains(f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownIngredient, f)
		}
		seen[f] = struct{}{}
		next = append(next, f)
	}
	if len(next) > MaxIngredients {
		return nil, ErrSelectionLimit
	}
	return next, nil
}

// CanSubmit reports whether the submit action is offered.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && len(s.selection) > 0
}

// Submit writes the order. A failed write is reported in the view and
// returned; nothing is retried.
func (s *Session) Submit(ctx context.Context) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if len(s.selection) == 0 {
		return nil, ErrNothingToSubmit
	}

	order, err := s.deps.Orders.SubmitOrder(ctx, s.selection, s.name)
	if err != nil {
		s.status = submitErrorPrefix + err.Error()
		s.order = nil
		return nil, err
	}
	s.status = MessageOrdered
	s.order = order
	s.logger.Info("smoothie ordered", zap.String("session_id", s.id), zap.Uint("order_id", order.ID))
	return order, nil
}

// Close releases the session. Later events fail with ErrClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.nutrition = nil
	return nil
}

func (s *Session) selected(fruit string) bool {
	for _, f := range s.selection {
		if f == fruit {
			return true
		}
	}
	return false
}

// changeSelection is the only place nutrition lookups run.
func (s *Session) changeSelection(ctx context.Context, next []string) {
	s.selection = next
	s.status = ""
	s.order = nil
	if len(next) == 0 {
		s.nutrition = nil
		return
	}
	s.nutrition = s.deps.Nutrition.Enrich(ctx, s.catalog, next)
	s.logger.Debug("selection changed", zap.String("session_id", s.id), zap.Strings("selection", next))
}

func equalSelection(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
