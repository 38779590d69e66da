package controllers

import (
	"net/http"
	"time"

	"saporis/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConsumptionController struct {
	repo repository.ConsumptionRepository
}

func NewConsumptionController(repo repository.ConsumptionRepository) *ConsumptionController {
	return &ConsumptionController{repo: repo}
}

// LogConsumption godoc
// @Summary Log food into today's consumption record
// @Description Adds calories and macros into the day's totals and appends the
// @Description food description. The day's record is created on first log.
// @Tags consumption
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Consumption logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /consumption [post]
func (cc *ConsumptionController) LogConsumption(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var request struct {
		Calories  float64 `json:"calories" binding:"required"`
		Protein   float64 `json:"protein"`
		Carbs     float64 `json:"carbs"`
		Fat       float64 `json:"fat"`
		FoodItems string  `json:"food_items"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if request.Calories < 0 || request.Protein < 0 || request.Carbs < 0 || request.Fat < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Nutrition values must not be negative",
		})
		return
	}

	record, err := cc.repo.AddToDay(userID, time.Now(),
		request.Calories, request.Protein, request.Carbs, request.Fat, request.FoodItems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log consumption",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumption logged successfully",
		"data":    record,
	})
}

// GetToday godoc
// @Summary Get today's consumption record
// @Tags consumption
// @Produce json
// @Success 200 {object} map[string]interface{} "Consumption retrieved successfully"
// @Router /consumption/today [get]
func (cc *ConsumptionController) GetToday(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	record, err := cc.repo.FindByUserIDAndDate(userID, time.Now())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Nothing logged yet today: an empty record, not an error.
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "No consumption logged today",
				"data":    nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve consumption",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumption retrieved successfully",
		"data":    record,
	})
}

// GetWeek godoc
// @Summary Get the last seven days of consumption records
// @Tags consumption
// @Produce json
// @Success 200 {object} map[string]interface{} "Consumption retrieved successfully"
// @Router /consumption/week [get]
func (cc *ConsumptionController) GetWeek(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	now := time.Now()
	records, err := cc.repo.FindByUserIDAndDateRange(userID, now.AddDate(0, 0, -6), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve consumption",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumption retrieved successfully",
		"data":    records,
	})
}
