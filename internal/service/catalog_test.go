package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/testhelpers"
)

func TestLoadCatalog(t *testing.T) {
	db := testhelpers.NewSeededSQLiteDB(t,
		model.FruitOption{FruitName: "Ximenia", SearchOn: "Sea Lemon"},
		model.FruitOption{FruitName: "Apples", SearchOn: "Apple"},
	)
	svc := service.NewCatalogService(db, zaptest.NewLogger(t))

	catalog, err := svc.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Apples", "Ximenia"}, catalog.Names())

	key, ok := catalog.SearchKey("Ximenia")
	assert.True(t, ok)
	assert.Equal(t, "Sea Lemon", key)
}

func TestLoadCatalogMissingTableDegradesToEmpty(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.FruitOption{}))
	svc := service.NewCatalogService(db, zaptest.NewLogger(t))

	catalog, err := svc.LoadCatalog(context.Background())
	assert.Error(t, err)
	require.NotNil(t, catalog)
	assert.Equal(t, 0, catalog.Len())
}

func TestLoadCatalogQueryErrorDegradesToEmpty(t *testing.T) {
	db, mock := testhelpers.NewMockPostgres(t)
	mock.ExpectQuery(`SELECT .* FROM "fruit_options"`).WillReturnError(errors.New("warehouse suspended"))
	svc := service.NewCatalogService(db, zaptest.NewLogger(t))

	catalog, err := svc.LoadCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warehouse suspended")
	assert.Empty(t, catalog.Names())
	assert.NoError(t, mock.ExpectationsWereMet())
}
