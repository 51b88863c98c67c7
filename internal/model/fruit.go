package model

// FruitOption is one row of the fruit catalog. SearchOn is the key sent to
// the nutrition API and may differ from the display name.
type FruitOption struct {
	FruitName string `gorm:"column:fruit_name;primaryKey;size:100" json:"fruit_name"`
	SearchOn  string `gorm:"column:search_on;size:100;not null" json:"search_on"`
}

func (FruitOption) TableName() string {
	return "fruit_options"
}
