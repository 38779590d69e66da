package controllers

import (
	"errors"
	"net/http"

	"saporis/internal/fitness"
	"saporis/internal/models"
	"saporis/internal/repository"
	"saporis/internal/session"
	"saporis/internal/utils"
	"saporis/internal/wizard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SignupController drives the onboarding wizard over HTTP. Wizard state lives
// in the session store between steps; each request submits the fields for the
// wizard's current step only.
type SignupController struct {
	sessions session.Store
	userRepo repository.UserRepository
}

func NewSignupController(sessions session.Store, userRepo repository.UserRepository) *SignupController {
	return &SignupController{sessions: sessions, userRepo: userRepo}
}

// stepRequest is the union of all step payloads; which fields are read
// depends on the wizard's current step.
type stepRequest struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	ConfirmPassword    string  `json:"confirm_password"`
	Age                int     `json:"age"`
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
	Goal               string  `json:"goal"`
}

// StartSignup godoc
// @Summary Start an onboarding wizard session
// @Description Creates a signup session. With a signup_state from the OAuth
// @Description flow the personal-info step is pre-completed and the wizard
// @Description starts at the age step.
// @Tags signup
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Signup session created"
// @Router /signup [post]
func (sc *SignupController) StartSignup(c *gin.Context) {
	var request struct {
		State string `json:"state"`
	}
	// Body is optional for the non-OAuth path.
	_ = c.ShouldBindJSON(&request)

	var w *wizard.Wizard
	if request.State != "" {
		handoff, found, err := sc.sessions.TakeOAuthHandoff(c.Request.Context(), request.State)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to start signup",
				"error":   err.Error(),
			})
			return
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid signup state",
				"error":   "State is unknown, expired or already used",
			})
			return
		}
		w = wizard.NewPrefilled(handoff.FirstName, handoff.LastName, handoff.Email)
	} else {
		w = wizard.New()
	}

	id := uuid.New().String()
	if err := sc.sessions.SaveSignup(c.Request.Context(), id, w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to start signup",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Signup session created",
		"data": gin.H{
			"signup_id": id,
			"step":      w.Step,
		},
	})
}

// GetSignup godoc
// @Summary Get the wizard's current step
// @Tags signup
// @Produce json
// @Success 200 {object} map[string]interface{} "Signup session retrieved"
// @Failure 404 {object} map[string]interface{} "Signup session not found"
// @Router /signup/{id} [get]
func (sc *SignupController) GetSignup(c *gin.Context) {
	w, ok := sc.loadSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Signup session retrieved",
		"data": gin.H{
			"signup_id": c.Param("id"),
			"step":      w.Step,
			"completed": w.Completed(),
		},
	})
}

// SubmitStep godoc
// @Summary Submit the wizard's current step
// @Description Validates and applies the fields for the current step. A
// @Description rejected step leaves the wizard unchanged. Submitting the goal
// @Description step derives the calorie goal, creates the account and returns
// @Description it with a session token.
// @Tags signup
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Step accepted"
// @Success 201 {object} map[string]interface{} "Account created"
// @Failure 400 {object} map[string]interface{} "Step rejected"
// @Router /signup/{id}/steps [post]
func (sc *SignupController) SubmitStep(c *gin.Context) {
	w, ok := sc.loadSession(c)
	if !ok {
		return
	}

	var request stepRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	id := c.Param("id")

	var err error
	switch w.Step {
	case wizard.StepPersonalInfo:
		err = w.SubmitPersonalInfo(request.FirstName, request.LastName, request.Email,
			request.Password, request.ConfirmPassword)
	case wizard.StepAge:
		err = w.SubmitAge(request.Age)
	case wizard.StepHeight:
		err = w.SubmitHeight(request.Height)
	case wizard.StepWeight:
		err = w.SubmitWeight(request.Weight)
	case wizard.StepActivityLevel:
		err = w.SubmitActivityLevel(request.ActivityMultiplier)
	case wizard.StepGoal:
		sc.submitFinalStep(c, id, w, fitness.Goal(request.Goal))
		return
	default:
		err = wizard.ErrCompleted
	}

	if err != nil {
		sc.rejectStep(c, w, err)
		return
	}

	if err := sc.sessions.SaveSignup(c.Request.Context(), id, w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save signup progress",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Step accepted",
		"data": gin.H{
			"signup_id": id,
			"step":      w.Step,
		},
	})
}

// submitFinalStep completes the wizard and persists the account. A failed
// handoff discards the session: the wizard permits no further transitions and
// the user must restart.
func (sc *SignupController) submitFinalStep(c *gin.Context, id string, w *wizard.Wizard, goal fitness.Goal) {
	profile, err := w.SubmitGoal(goal)
	if err != nil {
		sc.rejectStep(c, w, err)
		return
	}

	password := ""
	if !profile.OAuth {
		hashed, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create account",
				"error":   err.Error(),
			})
			return
		}
		password = string(hashed)
	}

	bgColour, fontColour := utils.GenerateAvatarColours()
	user := models.User{
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		Email:              profile.Email,
		Password:           password,
		Age:                profile.Age,
		Height:             profile.HeightCm,
		Weight:             profile.WeightKg,
		ActivityMultiplier: profile.ActivityMultiplier,
		Goal:               string(profile.Goal),
		CalorieGoal:        profile.CalorieGoal,
		BgColour:           bgColour,
		FontColour:         fontColour,
	}

	if err := sc.userRepo.CreateUser(&user); err != nil {
		_ = sc.sessions.DeleteSignup(c.Request.Context(), id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
			"error":   err.Error(),
		})
		return
	}

	_ = sc.sessions.DeleteSignup(c.Request.Context(), id)

	tokenString, err := issueToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Account created but could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Account created successfully",
		"data": gin.H{
			"token": tokenString,
			"user":  user,
		},
	})
}

func (sc *SignupController) loadSession(c *gin.Context) (*wizard.Wizard, bool) {
	w, found, err := sc.sessions.GetSignup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load signup session",
			"error":   err.Error(),
		})
		return nil, false
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Signup session not found",
			"error":   "Session is unknown or expired",
		})
		return nil, false
	}
	return w, true
}

func (sc *SignupController) rejectStep(c *gin.Context, w *wizard.Wizard, err error) {
	status := http.StatusBadRequest
	message := "Step rejected"

	var validationErr *wizard.ValidationError
	switch {
	case errors.As(err, &validationErr):
		// Field-level rejection; the step does not advance.
	case errors.Is(err, wizard.ErrCompleted):
		status = http.StatusConflict
		message = "Signup already completed"
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
		"data": gin.H{
			"step": w.Step,
		},
	})
}
