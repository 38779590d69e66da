package repository

import (
	"errors"
	"time"

	"saporis/internal/models"

	"gorm.io/gorm"
)

type ConsumptionRepository interface {
	AddToDay(userID uint, date time.Time, calories, protein, carbs, fat float64, foodItems string) (*models.Consumption, error)
	FindByUserIDAndDate(userID uint, date time.Time) (*models.Consumption, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Consumption, error)
}

type consumptionRepository struct {
	db *gorm.DB
}

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepository{db}
}

// truncateToDay normalizes a timestamp to its calendar-day key.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddToDay folds a logged food into the user's record for that calendar day,
// creating it on first log. Macro totals are summed and the free-text item is
// appended to the day's list.
func (r *consumptionRepository) AddToDay(userID uint, date time.Time, calories, protein, carbs, fat float64, foodItems string) (*models.Consumption, error) {
	day := truncateToDay(date)

	var record models.Consumption
	err := r.db.Where("user_id = ? AND date = ?", userID, day).First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record = models.Consumption{
			UserID:    userID,
			Date:      day,
			Weekday:   day.Weekday().String(),
			Calories:  calories,
			Protein:   protein,
			Carbs:     carbs,
			Fat:       fat,
			FoodItems: foodItems,
		}
		if err := r.db.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}

	record.Calories += calories
	record.Protein += protein
	record.Carbs += carbs
	record.Fat += fat
	if foodItems != "" {
		if record.FoodItems != "" {
			record.FoodItems += ", "
		}
		record.FoodItems += foodItems
	}
	if err := r.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *consumptionRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.Consumption, error) {
	var record models.Consumption
	err := r.db.Where("user_id = ? AND date = ?", userID, truncateToDay(date)).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *consumptionRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Consumption, error) {
	var records []models.Consumption
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?",
		userID, truncateToDay(startDate), truncateToDay(endDate)).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
