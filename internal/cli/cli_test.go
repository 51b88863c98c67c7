package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/pageza/smoothie-orders/backend/internal/cli"
	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/testhelpers"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

func testOpener(t *testing.T) (cli.Opener, *gorm.DB) {
	t.Helper()

	fruityvice := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/fruit/mango" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"name":"Mango","family":"Anacardiaceae"}`))
	}))
	t.Cleanup(fruityvice.Close)

	logger := zaptest.NewLogger(t)
	db := testhelpers.NewSeededSQLiteDB(t,
		model.FruitOption{FruitName: "Mango", SearchOn: "Mango"},
		model.FruitOption{FruitName: "Peach", SearchOn: "Peach"},
	)
	open := func(ctx context.Context) (workflow.Deps, func(), error) {
		return workflow.Deps{
			Catalog:   service.NewCatalogService(db, logger),
			Nutrition: service.NewNutritionService(service.NewFruityviceClient(fruityvice.URL, time.Second), logger),
			Orders:    service.NewOrderService(db, logger),
			Logger:    logger,
		}, func() {}, nil
	}
	return open, db
}

func run(t *testing.T, open cli.Opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd(open)
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFruitsCmd(t *testing.T) {
	open, _ := testOpener(t)

	out, err := run(t, open, "fruits")
	require.NoError(t, err)
	assert.Contains(t, out, "Mango")
	assert.Contains(t, out, "Peach")
	assert.Contains(t, out, "2 fruits")
}

func TestOrderCmdPreview(t *testing.T) {
	open, db := testOpener(t)

	out, err := run(t, open, "order", "--name", "Alex", "--fruit", "Peach", "--fruit", "Mango")
	require.NoError(t, err)
	assert.Contains(t, out, "The name on your Smoothie will be: Alex")
	assert.Contains(t, out, "The search value for Peach is Peach.")
	assert.Contains(t, out, "Not Found")
	assert.Contains(t, out, "Mango Nutrition Information")
	assert.Contains(t, out, "Anacardiaceae")
	assert.Empty(t, testhelpers.StoredOrders(t, db))
}

func TestOrderCmdSubmit(t *testing.T) {
	open, db := testOpener(t)

	out, err := run(t, open, "order", "--name", "Alex", "--fruit", "Peach", "--fruit", "Mango", "--submit")
	require.NoError(t, err)
	assert.Contains(t, out, "Your Smoothie is ordered!")

	orders := testhelpers.StoredOrders(t, db)
	require.Len(t, orders, 1)
	assert.Equal(t, "Peach, Mango", orders[0].Ingredients)
}

func TestOrderCmdRejectsEmptySubmit(t *testing.T) {
	open, db := testOpener(t)

	_, err := run(t, open, "order", "--name", "Alex", "--submit")
	assert.ErrorIs(t, err, workflow.ErrNothingToSubmit)
	assert.Empty(t, testhelpers.StoredOrders(t, db))
}

func TestOrderCmdUnknownFruit(t *testing.T) {
	open, _ := testOpener(t)

	_, err := run(t, open, "order", "--fruit", "Durian")
	assert.ErrorIs(t, err, workflow.ErrUnknownIngredient)
}

func TestOrderCmdSubmitFailure(t *testing.T) {
	open, db := testOpener(t)
	require.NoError(t, db.Migrator().DropTable(&model.Order{}))

	out, err := run(t, open, "order", "--name", "Alex", "--fruit", "Mango", "--submit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submitting order")
	assert.Contains(t, out, "Error submitting order:")
	assert.NotContains(t, out, "Your Smoothie is ordered!")
}
