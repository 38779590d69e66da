package controllers

import (
	"math"
	"net/http"
	"time"

	"saporis/internal/ai"
	"saporis/internal/fitness"
	"saporis/internal/models"
	"saporis/internal/repository"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	consumptionRepo repository.ConsumptionRepository
	userRepo        repository.UserRepository
	aiClient        ai.Client
}

func NewAnalyticsController(consumptionRepo repository.ConsumptionRepository, userRepo repository.UserRepository, aiClient ai.Client) *AnalyticsController {
	return &AnalyticsController{
		consumptionRepo: consumptionRepo,
		userRepo:        userRepo,
		aiClient:        aiClient,
	}
}

// currentSunday returns the Sunday of the current week at midnight, the first
// slot of the weekly trend array.
func currentSunday(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// weeklyCalories buckets this week's records into a Sunday-first array of
// seven values; days without a record stay 0.
func weeklyCalories(records []models.Consumption) []float64 {
	values := make([]float64, 7)
	for _, r := range records {
		values[int(r.Date.Weekday())] = r.Calories
	}
	return values
}

// dayTotals returns a day's record or zeroes when nothing was logged.
func dayTotals(repo repository.ConsumptionRepository, userID uint, date time.Time) models.Consumption {
	record, err := repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		return models.Consumption{}
	}
	return *record
}

// GetDashboard godoc
// @Summary Get the analytics dashboard
// @Description Today's totals, day-over-day trend strings, macro distribution
// @Description percentages and this week's calorie array (Sunday-first).
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Router /analytics/dashboard [get]
func (ac *AnalyticsController) GetDashboard(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	now := time.Now()

	today := dayTotals(ac.consumptionRepo, userID, now)
	yesterday := dayTotals(ac.consumptionRepo, userID, now.AddDate(0, 0, -1))

	sunday := currentSunday(now)
	week, err := ac.consumptionRepo.FindByUserIDAndDateRange(userID, sunday, sunday.AddDate(0, 0, 6))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve weekly records",
			"error":   err.Error(),
		})
		return
	}

	proteinShare, carbShare, fatShare := fitness.MacroShare(today.Protein, today.Carbs, today.Fat)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"today": gin.H{
				"calories":   today.Calories,
				"protein":    today.Protein,
				"carbs":      today.Carbs,
				"fat":        today.Fat,
				"food_items": today.FoodItems,
			},
			"trends": gin.H{
				"calories": fitness.PercentChange(today.Calories, yesterday.Calories),
				"protein":  fitness.PercentChange(today.Protein, yesterday.Protein),
				"carbs":    fitness.PercentChange(today.Carbs, yesterday.Carbs),
				"fat":      fitness.PercentChange(today.Fat, yesterday.Fat),
			},
			"macro_shares": gin.H{
				"protein": proteinShare,
				"carbs":   carbShare,
				"fat":     fatShare,
			},
			"weekly_calories": weeklyCalories(week),
		},
	})
}

// GetFitnessMetrics godoc
// @Summary Get BMI, BMR, TDEE and the calorie goal spread
// @Description The three calorie goals here use the fixed 500-calorie offset,
// @Description unlike the signup flow's 20% ratio.
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{} "Metrics retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Profile incomplete"
// @Router /analytics/metrics [get]
func (ac *AnalyticsController) GetFitnessMetrics(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := ac.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	if user.Weight == 0 || user.Height == 0 || user.Age == 0 ||
		!fitness.ValidActivityMultiplier(user.ActivityMultiplier) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Profile incomplete",
			"error":   "Height, weight, age and activity level are required for fitness metrics",
		})
		return
	}

	bmi := fitness.BMI(user.Weight, user.Height)
	bmr := fitness.BMR(user.Weight, user.Height, float64(user.Age), fitness.SexUnspecified)
	tdee, err := fitness.TDEE(bmr, user.ActivityMultiplier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Profile incomplete",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Metrics retrieved successfully",
		"data": gin.H{
			"bmi": gin.H{
				"value":    bmi,
				"category": fitness.BMICategory(bmi),
			},
			"bmr":  int(math.Round(bmr)),
			"tdee": int(math.Round(tdee)),
			"calorie_goals": gin.H{
				"lose":     fitness.AdjustForGoal(tdee, fitness.GoalLose, fitness.PolicyFixedOffset),
				"maintain": fitness.AdjustForGoal(tdee, fitness.GoalMaintain, fitness.PolicyFixedOffset),
				"gain":     fitness.AdjustForGoal(tdee, fitness.GoalGain, fitness.PolicyFixedOffset),
			},
		},
	})
}

// GetSummary godoc
// @Summary Get the narrative nutrition summary
// @Description Sends today's stats, the calorie goal and the weekly trend
// @Description array to the analysis service and returns its summary text.
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 502 {object} map[string]interface{} "Analysis service unavailable"
// @Router /analytics/summary [get]
func (ac *AnalyticsController) GetSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	now := time.Now()

	user, err := ac.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	today := dayTotals(ac.consumptionRepo, userID, now)
	yesterday := dayTotals(ac.consumptionRepo, userID, now.AddDate(0, 0, -1))

	sunday := currentSunday(now)
	week, err := ac.consumptionRepo.FindByUserIDAndDateRange(userID, sunday, sunday.AddDate(0, 0, 6))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve weekly records",
			"error":   err.Error(),
		})
		return
	}

	summary, err := ac.aiClient.NutritionSummary(c.Request.Context(), ai.SummaryRequest{
		Calories:     today.Calories,
		Protein:      today.Protein,
		Carbs:        today.Carbs,
		Fat:          today.Fat,
		CalorieGoal:  user.CalorieGoal,
		WeeklyTrends: weeklyCalories(week),
		Trends: ai.Trends{
			Calories: fitness.PercentChange(today.Calories, yesterday.Calories),
			Protein:  fitness.PercentChange(today.Protein, yesterday.Protein),
			Carbs:    fitness.PercentChange(today.Carbs, yesterday.Carbs),
			Fat:      fitness.PercentChange(today.Fat, yesterday.Fat),
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to generate summary",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data": gin.H{
			"summary": summary,
		},
	})
}
