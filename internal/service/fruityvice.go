package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/smoothie-orders/backend/internal/model"
)

const maxNutritionBody = 1 << 20

var (
	// ErrNutritionNotFound covers non-200 answers and bodies that are not a JSON object.
	ErrNutritionNotFound = errors.New("nutrition record not found")
	// ErrNutritionUnavailable covers transport failures and timeouts.
	ErrNutritionUnavailable = errors.New("nutrition service unavailable")
)

// FruityviceClient queries the Fruityvice API, one attempt per call
type FruityviceClient struct {
	baseURL string
	client  *http.Client
}

// NewFruityviceClient creates a client for baseURL, e.g. https://fruityvice.com
func NewFruityviceClient(baseURL string, timeout time.Duration) *FruityviceClient {
	return &FruityviceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup fetches the record for searchKey. The key is lower-cased before use.
func (c *FruityviceClient) Lookup(ctx context.Context, searchKey string) (model.NutritionRecord, error) {
	key := strings.ToLower(searchKey)
	if strings.TrimSpace(key) == "" {
		return model.NutritionRecord{}, fmt.Errorf("%w: empty search key", ErrNutritionNotFound)
	}

	endpoint := c.baseURL + "/api/fruit/" + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.NutritionRecord{}, fmt.Errorf("%w: failed to create request: %v", ErrNutritionUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return model.NutritionRecord{}, fmt.Errorf("%w: %v", ErrNutritionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxNutritionBody))
		return model.NutritionRecord{}, fmt.Errorf("%w: %s returned status %d", ErrNutritionNotFound, key, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxNutritionBody))
	if err != nil {
		return model.NutritionRecord{}, fmt.Errorf("%w: failed to read response: %v", ErrNutritionUnavailable, err)
	}

	rec, err := model.ParseNutritionRecord(body)
	if err != nil {
		return model.NutritionRecord{}, fmt.Errorf("%w: %v", ErrNutritionNotFound, err)
	}
	return rec, nil
}
