package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/smoothie-orders/backend/internal/model"
)

// DefaultFruits is the starter catalog. SearchOn is what Fruityvice knows the
// fruit as, which is not always the display name.
var DefaultFruits = []model.FruitOption{
	{FruitName: "Apples", SearchOn: "Apple"},
	{FruitName: "Blueberries", SearchOn: "Blueberry"},
	{FruitName: "Cantaloupe", SearchOn: "Cantaloupe"},
	{FruitName: "Dragon Fruit", SearchOn: "Dragonfruit"},
	{FruitName: "Elderberries", SearchOn: "Elderberry"},
	{FruitName: "Figs", SearchOn: "Fig"},
	{FruitName: "Guava", SearchOn: "Guava"},
	{FruitName: "Honeydew Melon", SearchOn: "Honeydew"},
	{FruitName: "Jackfruit", SearchOn: "Jackfruit"},
	{FruitName: "Kiwi", SearchOn: "Kiwi"},
	{FruitName: "Lime", SearchOn: "Lime"},
	{FruitName: "Mango", SearchOn: "Mango"},
	{FruitName: "Nectarine", SearchOn: "Nectarine"},
	{FruitName: "Oranges", SearchOn: "Orange"},
	{FruitName: "Papaya", SearchOn: "Papaya"},
	{FruitName: "Peach", SearchOn: "Peach"},
	{FruitName: "Raspberries", SearchOn: "Raspberry"},
	{FruitName: "Strawberries", SearchOn: "Strawberry"},
	{FruitName: "Tangerine", SearchOn: "Tangerine"},
	{FruitName: "Watermelon", SearchOn: "Watermelon"},
	{FruitName: "Ximenia", SearchOn: "Sea Lemon"},
	{FruitName: "Ziziphus Jujube", SearchOn: "Jujube"},
}

// SeedFruits inserts fruit options, leaving rows that already exist untouched.
// It returns the number of rows inserted.
func SeedFruits(ctx context.Context, db *gorm.DB, fruits []model.FruitOption) (int64, error) {
	if len(fruits) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fruits)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to seed fruit options: %w", result.Error)
	}
	return result.RowsAffected, nil
}
