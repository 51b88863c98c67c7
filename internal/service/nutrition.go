package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/internal/metrics"
	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// Reasons attached to a failed NutritionResult. They are diagnostic only;
// every failure is displayed as the same placeholder.
const (
	ReasonNotFound          = "not_found"
	ReasonUnavailable       = "unavailable"
	ReasonUnknownIngredient = "unknown_ingredient"
)

// NutritionResult is what the enricher shows for one selected fruit
type NutritionResult struct {
	Fruit      string                `json:"fruit"`
	SearchOn   string                `json:"search_on"`
	SearchLine string                `json:"search_line"`
	Heading    string                `json:"heading"`
	Record     model.NutritionRecord `json:"record"`
	Found      bool                  `json:"found"`
	Reason     string                `json:"reason,omitempty"`
}

// NutritionService looks up nutrition facts for each selected fruit
type NutritionService struct {
	lookup NutritionLookup
	logger *zap.Logger
}

// NewNutritionService creates a new NutritionService instance
func NewNutritionService(lookup NutritionLookup, logger *zap.Logger) *NutritionService {
	return &NutritionService{
		lookup: lookup,
		logger: logger.Named("nutrition"),
	}
}

// Enrich runs one lookup per selected fruit, in selection order. A failed
// lookup yields the placeholder record and never stops later lookups.
func (s *NutritionService) Enrich(ctx context.Context, catalog *model.Catalog, selection []string) []NutritionResult {
	results := make([]NutritionResult, 0, len(selection))
	for _, fruit := range selection {
		results = append(results, s.enrichOne(ctx, catalog, fruit))
	}
	return results
}

func (s *NutritionService) enrichOne(ctx context.Context, catalog *model.Catalog, fruit string) NutritionResult {
	res := NutritionResult{
		Fruit:   fruit,
		Heading: fmt.Sprintf("%s Nutrition Information", fruit),
		Record:  model.NotFoundRecord(),
	}

	searchOn, ok := catalog.SearchKey(fruit)
	if !ok {
		s.logger.Warn("selected fruit missing from catalog", zap.String("fruit", fruit))
		res.Reason = ReasonUnknownIngredient
		return res
	}
	res.SearchOn = searchOn
	res.SearchLine = fmt.Sprintf("The search value for %s is %s.", fruit, searchOn)

	start := time.Now()
	rec, err := s.lookup.Lookup(ctx, searchOn)
	took := time.Since(start)
	if err != nil {
		res.Reason = classifyLookupError(err)
		if res.Reason == ReasonUnavailable {
			metrics.RecordNutritionLookup(metrics.OutcomeUnavailable, took)
		} else {
			metrics.RecordNutritionLookup(metrics.OutcomeNotFound, took)
		}
		s.logger.Info("nutrition lookup failed",
			zap.String("fruit", fruit),
			zap.String("search_on", searchOn),
			zap.String("reason", res.Reason),
			zap.Error(err),
		)
		return res
	}

	metrics.RecordNutritionLookup(metrics.OutcomeSuccess, took)
	res.Record = rec
	res.Found = true
	return res
}

func classifyLookupError(err error) string {
	switch {
	case errors.Is(err, ErrNutritionUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return ReasonUnavailable
	default:
		return ReasonNotFound
	}
}
