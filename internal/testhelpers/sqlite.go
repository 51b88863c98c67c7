package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/smoothie-orders/backend/internal/database"
	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/migrations"
)

// NewSQLiteDB returns a migrated in-memory database private to the test.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := database.RunMigrations(context.Background(), db, migrations.Files); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// NewSeededSQLiteDB is NewSQLiteDB with the given fruit options inserted.
func NewSeededSQLiteDB(t *testing.T, fruits ...model.FruitOption) *gorm.DB {
	t.Helper()

	db := NewSQLiteDB(t)
	if _, err := database.SeedFruits(context.Background(), db, fruits); err != nil {
		t.Fatalf("failed to seed fruits: %v", err)
	}
	return db
}

// StoredOrders returns every stored order, oldest first.
func StoredOrders(t *testing.T, db *gorm.DB) []model.Order {
	t.Helper()

	var orders []model.Order
	if err := db.Order("id").Find(&orders).Error; err != nil {
		t.Fatalf("failed to read orders: %v", err)
	}
	return orders
}
