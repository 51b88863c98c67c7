package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/smoothie-orders/backend/internal/middleware"
	"github.com/pageza/smoothie-orders/backend/internal/mocks"
	"github.com/pageza/smoothie-orders/backend/internal/testhelpers"
	"github.com/pageza/smoothie-orders/backend/internal/types"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

func createSession(t *testing.T, env *testEnv) workflow.View {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[types.SessionResponse](t, w).Session
}

func TestSessionOrderFlow(t *testing.T) {
	env := newTestEnv(t)
	view := createSession(t, env)
	assert.Len(t, view.Fruits, len(testFruits))
	assert.False(t, view.SubmitAvailable)
	base := "/api/v1/sessions/" + view.ID

	w := env.do(t, http.MethodPut, base+"/name", types.SetNameRequest{NameOnOrder: "Alex"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The name on your Smoothie will be: Alex", decode[types.SessionResponse](t, w).Session.NameLine)

	w = env.do(t, http.MethodPut, base+"/ingredients", types.SetIngredientsRequest{Ingredients: []string{"Peach", "Mango"}})
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[types.SessionResponse](t, w).Session
	assert.True(t, view.SubmitAvailable)
	require.Len(t, view.Nutrition, 2)
	assert.Equal(t, "The search value for Peach is Peach.", view.Nutrition[0].SearchLine)
	assert.True(t, view.Nutrition[0].Record.IsPlaceholder())
	assert.Equal(t, "Mango Nutrition Information", view.Nutrition[1].Heading)
	assert.Equal(t, []string{"name", "family"}, view.Nutrition[1].Record.Names())

	w = env.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[types.OrderResponse](t, w)
	assert.Equal(t, "Your Smoothie is ordered!", resp.Message)
	assert.Equal(t, workflow.MessageOrdered, resp.Session.Status)

	orders := testhelpers.StoredOrders(t, env.db)
	require.Len(t, orders, 1)
	assert.Equal(t, "Peach, Mango", orders[0].Ingredients)
	assert.Equal(t, "Alex", orders[0].NameOnOrder)

	w = env.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionIngredientLimit(t *testing.T) {
	env := newTestEnv(t)
	base := "/api/v1/sessions/" + createSession(t, env).ID

	for _, fruit := range []string{"Apples", "Banana", "Kiwi", "Mango", "Peach"} {
		w := env.do(t, http.MethodPost, base+"/ingredients", types.AddIngredientRequest{Ingredient: fruit})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodPost, base+"/ingredients", types.AddIngredientRequest{Ingredient: "Ximenia"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "up to 5")

	w = env.do(t, http.MethodDelete, base+"/ingredients/Kiwi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Apples", "Banana", "Mango", "Peach"}, decode[types.SessionResponse](t, w).Session.Selection)
}

func TestSessionBadRequests(t *testing.T) {
	env := newTestEnv(t)
	base := "/api/v1/sessions/" + createSession(t, env).ID

	w := env.do(t, http.MethodGet, "/api/v1/sessions/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, base+"/ingredients", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, base+"/ingredients", types.AddIngredientRequest{Ingredient: "Durian"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, testhelpers.StoredOrders(t, env.db))
}

func TestSessionSubmitWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	orders := new(mocks.MockOrderService)
	orders.On("SubmitOrder", mock.Anything, []string{"Kiwi"}, "").
		Return(nil, errors.New("failed to submit order: connection refused"))
	env.svc.Orders = orders
	env.router = gin.New()
	RegisterRoutes(env.router, env.svc)

	base := "/api/v1/sessions/" + createSession(t, env).ID
	w := env.do(t, http.MethodPost, base+"/ingredients", types.AddIngredientRequest{Ingredient: "Kiwi"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Error submitting order: failed to submit order: connection refused")

	w = env.do(t, http.MethodGet, base, nil)
	assert.Equal(t, "Error submitting order: failed to submit order: connection refused",
		decode[types.SessionResponse](t, w).Session.Status)
}

func TestSubmitRateLimit(t *testing.T) {
	env := newTestEnv(t)
	env.svc.OrderLimiter = middleware.NewLocalLimiter(middleware.RateLimitConfig{Window: time.Hour, Limit: 1})
	env.router = gin.New()
	RegisterRoutes(env.router, env.svc)

	order := types.CreateOrderRequest{NameOnOrder: "Alex", Ingredients: []string{"Kiwi"}}
	w := env.do(t, http.MethodPost, "/api/v1/orders", order)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/orders", order)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, testhelpers.StoredOrders(t, env.db), 1)
}

func TestSessionStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Sessions = failingStore{}
	env.svc.Logger = zaptest.NewLogger(t)
	env.router = gin.New()
	RegisterRoutes(env.router, env.svc)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	w = env.do(t, http.MethodGet, "/api/v1/sessions/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type failingStore struct{}

func (failingStore) Save(_ context.Context, _ workflow.State) error {
	return errors.New("redis: connection refused")
}

func (failingStore) Load(_ context.Context, _ string) (workflow.State, error) {
	return workflow.State{}, errors.New("redis: connection refused")
}

func (failingStore) Delete(_ context.Context, _ string) error {
	return errors.New("redis: connection refused")
}
