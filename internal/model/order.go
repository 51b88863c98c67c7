package model

import (
	"strings"
	"time"
)

// IngredientSeparator joins the selection into the stored ingredients column.
const IngredientSeparator = ", "

// Order is a submitted smoothie. Rows are written once and never updated.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Ingredients string    `gorm:"column:ingredients;type:text;not null" json:"ingredients"`
	NameOnOrder string    `gorm:"column:name_on_order;size:100" json:"name_on_order"`
	OrderTS     time.Time `gorm:"column:order_ts;autoCreateTime" json:"order_ts"`
}

func (Order) TableName() string {
	return "orders"
}

// NewOrder builds the record for a selection.
func NewOrder(ingredients []string, nameOnOrder string) *Order {
	return &Order{
		Ingredients: strings.Join(ingredients, IngredientSeparator),
		NameOnOrder: nameOnOrder,
	}
}

// IngredientList splits the stored column back into names.
func (o *Order) IngredientList() []string {
	if o.Ingredients == "" {
		return nil
	}
	return strings.Split(o.Ingredients, IngredientSeparator)
}
