package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/testhelpers"
)

const insertOrderSQL = `INSERT INTO "orders" ("ingredients","name_on_order","order_ts") VALUES ($1,$2,$3) RETURNING "id"`

func TestSubmitOrderWritesOneRow(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	svc := service.NewOrderService(db, zaptest.NewLogger(t))

	order, err := svc.SubmitOrder(context.Background(), []string{"Peach", "Mango"}, "Alex")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	stored := testhelpers.StoredOrders(t, db)
	require.Len(t, stored, 1)
	assert.Equal(t, "Peach, Mango", stored[0].Ingredients)
	assert.Equal(t, "Alex", stored[0].NameOnOrder)
}

func TestSubmitOrderUsesParameterizedInsert(t *testing.T) {
	db, mock := testhelpers.NewMockPostgres(t)
	svc := service.NewOrderService(db, zaptest.NewLogger(t))
	name := "O'Brien'); DROP TABLE orders; --"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertOrderSQL)).
		WithArgs("Peach, Mango", name, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	order, err := svc.SubmitOrder(context.Background(), []string{"Peach", "Mango"}, name)
	require.NoError(t, err)
	assert.Equal(t, uint(7), order.ID)
	assert.Equal(t, name, order.NameOnOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitOrderEmptySelection(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	svc := service.NewOrderService(db, zaptest.NewLogger(t))

	order, err := svc.SubmitOrder(context.Background(), nil, "Alex")
	assert.ErrorIs(t, err, service.ErrEmptySelection)
	assert.Nil(t, order)
	assert.Empty(t, testhelpers.StoredOrders(t, db))
}

func TestSubmitOrderWriteFailure(t *testing.T) {
	db, mock := testhelpers.NewMockPostgres(t)
	svc := service.NewOrderService(db, zaptest.NewLogger(t))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertOrderSQL)).WillReturnError(errors.New("relation \"orders\" does not exist"))
	mock.ExpectRollback()

	order, err := svc.SubmitOrder(context.Background(), []string{"Kiwi"}, "Sam")
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "failed to submit order")
	assert.NoError(t, mock.ExpectationsWereMet())
}
