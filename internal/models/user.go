package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FirstName          string         `json:"first_name" example:"Jane"`
	LastName           string         `json:"last_name" example:"Doe"`
	Email              string         `gorm:"unique" json:"email" example:"jane@example.com"`
	Password           string         `json:"-"`
	Age                int            `json:"age" example:"30"`
	Height             float64        `json:"height" example:"175"`
	Weight             float64        `json:"weight" example:"70"`
	ActivityMultiplier float64        `json:"activity_multiplier" example:"1.55"`
	Goal               string         `json:"goal" example:"maintain"`
	CalorieGoal        int            `json:"calorie_goal" example:"2550"`
	BgColour           string         `json:"bg_colour" example:"#9333EA"`
	FontColour         string         `json:"font_colour" example:"#FFFFFF"`
}
