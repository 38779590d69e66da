package controllers

import (
	"net/http"
	"os"
	"time"

	"saporis/internal/fitness"
	"saporis/internal/models"
	"saporis/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// issueToken signs the 72h session JWT for a user.
func issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
}

// LoginUser godoc
// @Summary Log in with email and password
// @Description Verify credentials and return a session token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body object true "Email and password"
// @Success 200 {object} map[string]interface{} "User logged in successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /users/login [post]
func (uc *UserController) LoginUser(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.GetUserByEmail(credentials.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user associated with this email",
		})
		return
	}

	// OAuth accounts have no password; they must log in via /oauth/google.
	if user.Password == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Incorrect email or password",
		})
		return
	}

	tokenString, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token": tokenString,
			"user":  user,
		},
	})
}

// GetCurrentUser godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := uc.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// PatchUser godoc
// @Summary Partially update the authenticated user's profile
// @Description Update profile fields; the calorie goal is recomputed whenever
// @Description an anthropometric, activity or goal field changes. It can never
// @Description be set directly.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /users/me [patch]
func (uc *UserController) PatchUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var patch struct {
		FirstName          *string  `json:"first_name"`
		LastName           *string  `json:"last_name"`
		Age                *int     `json:"age"`
		Height             *float64 `json:"height"`
		Weight             *float64 `json:"weight"`
		ActivityMultiplier *float64 `json:"activity_multiplier"`
		Goal               *string  `json:"goal"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	data := map[string]interface{}{}
	if patch.FirstName != nil {
		data["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		data["last_name"] = *patch.LastName
	}

	// Anthropometric changes feed the calorie-goal recomputation below.
	age, height, weight := user.Age, user.Height, user.Weight
	multiplier, goal := user.ActivityMultiplier, fitness.Goal(user.Goal)
	recompute := false

	if patch.Age != nil {
		if *patch.Age < 13 || *patch.Age > 120 {
			uc.rejectField(c, "age", "must be between 13 and 120")
			return
		}
		age = *patch.Age
		data["age"] = age
		recompute = true
	}
	if patch.Height != nil {
		if *patch.Height < 100 || *patch.Height > 250 {
			uc.rejectField(c, "height", "must be between 100 and 250")
			return
		}
		height = *patch.Height
		data["height"] = height
		recompute = true
	}
	if patch.Weight != nil {
		if *patch.Weight < 30 || *patch.Weight > 300 {
			uc.rejectField(c, "weight", "must be between 30 and 300")
			return
		}
		weight = *patch.Weight
		data["weight"] = weight
		recompute = true
	}
	if patch.ActivityMultiplier != nil {
		if !fitness.ValidActivityMultiplier(*patch.ActivityMultiplier) {
			uc.rejectField(c, "activity_multiplier", "must be one of the supported activity levels")
			return
		}
		multiplier = *patch.ActivityMultiplier
		data["activity_multiplier"] = multiplier
		recompute = true
	}
	if patch.Goal != nil {
		if !fitness.ValidGoal(fitness.Goal(*patch.Goal)) {
			uc.rejectField(c, "goal", "must be lose, maintain or gain")
			return
		}
		goal = fitness.Goal(*patch.Goal)
		data["goal"] = string(goal)
		recompute = true
	}

	if recompute {
		calorieGoal, err := fitness.CalorieTarget(weight, height, float64(age), multiplier, goal, fitness.PolicyRatio)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Cannot recompute calorie goal",
				"error":   err.Error(),
			})
			return
		}
		data["calorie_goal"] = calorieGoal
	}

	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "No updatable fields provided",
		})
		return
	}

	if err := uc.repo.PatchUser(userID, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   "Database update failed",
		})
		return
	}

	updated, err := uc.repo.GetUserByID(userID)
	if err != nil {
		updated = user
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    updated,
	})
}

// DeleteUser godoc
// @Summary Delete the authenticated user's account
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Router /users/me [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if err := uc.repo.DeleteUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
		"data":    nil,
	})
}

func (uc *UserController) rejectField(c *gin.Context, field, reason string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data",
		"error":   field + " " + reason,
	})
}
