package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatHistory records one food-analysis conversation: the uploaded image and
// the accumulated question/answer/recommendation text.
type ChatHistory struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID       uint           `json:"user_id" example:"1"`
	User         User           `gorm:"foreignKey:UserID" json:"-"`
	ImageURL     string         `json:"image_url" example:"https://storage.example.com/food.jpg"`
	Conversation string         `json:"conversation" example:"What portion size was the pasta? About 200g"`
}
