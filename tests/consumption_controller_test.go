package tests

import (
	"net/http"
	"testing"
	"time"

	"saporis/internal/controllers"
	"saporis/internal/models"
	"saporis/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestLogConsumption(t *testing.T) {
	repo := new(mocks.MockConsumptionRepository)
	controller := controllers.NewConsumptionController(repo)

	record := &models.Consumption{
		UserID:    1,
		Calories:  650,
		Protein:   35,
		Carbs:     70,
		Fat:       20,
		FoodItems: "Pasta bolognese",
	}
	repo.On("AddToDay", uint(1), mock.AnythingOfType("time.Time"),
		650.0, 35.0, 70.0, 20.0, "Pasta bolognese").Return(record, nil)

	router := setupTestRouter()
	router.POST("/consumption", addAuthMiddleware(1), controller.LogConsumption)

	w := performJSONRequest(router, "POST", "/consumption", map[string]interface{}{
		"calories":   650,
		"protein":    35,
		"carbs":      70,
		"fat":        20,
		"food_items": "Pasta bolognese",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Consumption logged successfully", response["message"])
	repo.AssertExpectations(t)
}

func TestLogConsumptionRejectsNegativeValues(t *testing.T) {
	repo := new(mocks.MockConsumptionRepository)
	controller := controllers.NewConsumptionController(repo)

	router := setupTestRouter()
	router.POST("/consumption", addAuthMiddleware(1), controller.LogConsumption)

	w := performJSONRequest(router, "POST", "/consumption", map[string]interface{}{
		"calories": 650,
		"protein":  -5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "AddToDay", mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetTodayWithNoRecord(t *testing.T) {
	repo := new(mocks.MockConsumptionRepository)
	controller := controllers.NewConsumptionController(repo)

	repo.On("FindByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).
		Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/consumption/today", addAuthMiddleware(1), controller.GetToday)

	w := performJSONRequest(router, "GET", "/consumption/today", nil)

	// An empty day is a 200 with nil data, not an error.
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "No consumption logged today", response["message"])
	assert.Nil(t, response["data"])
}

func TestGetWeek(t *testing.T) {
	repo := new(mocks.MockConsumptionRepository)
	controller := controllers.NewConsumptionController(repo)

	records := []models.Consumption{
		{UserID: 1, Date: time.Now().AddDate(0, 0, -1), Calories: 1800},
		{UserID: 1, Date: time.Now(), Calories: 2100},
	}
	repo.On("FindByUserIDAndDateRange", uint(1),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(records, nil)

	router := setupTestRouter()
	router.GET("/consumption/week", addAuthMiddleware(1), controller.GetWeek)

	w := performJSONRequest(router, "GET", "/consumption/week", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	repo.AssertExpectations(t)
}
