package repository

import (
	"saporis/internal/models"

	"gorm.io/gorm"
)

type ChatHistoryRepository interface {
	Create(entry *models.ChatHistory) error
	FindAllByUserID(userID uint, limit int) ([]models.ChatHistory, error)
	DeleteByUserID(userID uint) error
}

type chatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &chatHistoryRepository{db}
}

func (r *chatHistoryRepository) Create(entry *models.ChatHistory) error {
	return r.db.Create(entry).Error
}

// FindAllByUserID returns the user's conversations newest first.
func (r *chatHistoryRepository) FindAllByUserID(userID uint, limit int) ([]models.ChatHistory, error) {
	var entries []models.ChatHistory
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *chatHistoryRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.ChatHistory{}).Error
}
