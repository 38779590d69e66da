package models

import (
	"time"

	"gorm.io/gorm"
)

// Consumption is one user's nutrition totals for one calendar day. Each logged
// food adds into the day's totals and appends to the free-text item list.
type Consumption struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"uniqueIndex:idx_user_date" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Date      time.Time      `gorm:"uniqueIndex:idx_user_date" json:"date" example:"2023-01-01"`
	Weekday   string         `json:"weekday" example:"Sunday"`
	Calories  float64        `json:"calories" example:"2100"`
	Protein   float64        `json:"protein" example:"75"`
	Carbs     float64        `json:"carbs" example:"310"`
	Fat       float64        `json:"fat" example:"65"`
	FoodItems string         `json:"food_items" example:"Oatmeal with banana, Grilled chicken salad"`
}
