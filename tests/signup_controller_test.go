package tests

import (
	"errors"
	"net/http"
	"os"
	"testing"

	"saporis/internal/controllers"
	"saporis/internal/fitness"
	"saporis/internal/models"
	"saporis/internal/session"
	"saporis/internal/wizard"
	"saporis/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSignupControllerWithMocks() (*controllers.SignupController, *mocks.MockSessionStore, *mocks.MockUserRepository) {
	sessions := new(mocks.MockSessionStore)
	userRepo := new(mocks.MockUserRepository)
	controller := controllers.NewSignupController(sessions, userRepo)
	return controller, sessions, userRepo
}

// goalStepWizard builds a wizard that has advanced to the goal step.
func goalStepWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := wizard.New()
	assert.NoError(t, w.SubmitPersonalInfo("Jane", "Doe", "jane@example.com", "password123", "password123"))
	assert.NoError(t, w.SubmitAge(30))
	assert.NoError(t, w.SubmitHeight(175))
	assert.NoError(t, w.SubmitWeight(70))
	assert.NoError(t, w.SubmitActivityLevel(1.55))
	return w
}

func TestStartSignup(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	sessions.On("SaveSignup", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	router := setupTestRouter()
	router.POST("/signup", controller.StartSignup)

	w := performJSONRequest(router, "POST", "/signup", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["signup_id"])
	assert.Equal(t, string(wizard.StepPersonalInfo), data["step"])
	sessions.AssertExpectations(t)
}

func TestStartSignupWithOAuthState(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	handoff := &session.OAuthHandoff{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	sessions.On("TakeOAuthHandoff", mock.Anything, "state-123").Return(handoff, true, nil)
	sessions.On("SaveSignup", mock.Anything, mock.Anything, mock.MatchedBy(func(w *wizard.Wizard) bool {
		return w.Step == wizard.StepAge && w.OAuth && w.Email == "jane@example.com"
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/signup", controller.StartSignup)

	w := performJSONRequest(router, "POST", "/signup", map[string]interface{}{"state": "state-123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, string(wizard.StepAge), data["step"])
	sessions.AssertExpectations(t)
}

func TestStartSignupWithUnknownState(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	// A state can be consumed at most once; a replay finds nothing.
	sessions.On("TakeOAuthHandoff", mock.Anything, "used-state").Return(nil, false, nil)

	router := setupTestRouter()
	router.POST("/signup", controller.StartSignup)

	w := performJSONRequest(router, "POST", "/signup", map[string]interface{}{"state": "used-state"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Invalid signup state", response["message"])
	sessions.AssertNotCalled(t, "SaveSignup", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSignupNotFound(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	sessions.On("GetSignup", mock.Anything, "unknown").Return(nil, false, nil)

	router := setupTestRouter()
	router.GET("/signup/:id", controller.GetSignup)

	w := performJSONRequest(router, "GET", "/signup/unknown", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitStepAdvances(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	w := wizard.New()
	assert.NoError(t, w.SubmitPersonalInfo("Jane", "Doe", "jane@example.com", "password123", "password123"))

	sessions.On("GetSignup", mock.Anything, "abc").Return(w, true, nil)
	sessions.On("SaveSignup", mock.Anything, "abc", mock.MatchedBy(func(saved *wizard.Wizard) bool {
		return saved.Step == wizard.StepHeight && saved.Age == 30
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/signup/:id/steps", controller.SubmitStep)

	resp := performJSONRequest(router, "POST", "/signup/abc/steps", map[string]interface{}{"age": 30})

	assert.Equal(t, http.StatusOK, resp.Code)
	response := decodeResponse(t, resp)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, string(wizard.StepHeight), data["step"])
	sessions.AssertExpectations(t)
}

func TestSubmitStepRejectionDoesNotAdvance(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	w := wizard.New()
	assert.NoError(t, w.SubmitPersonalInfo("Jane", "Doe", "jane@example.com", "password123", "password123"))

	sessions.On("GetSignup", mock.Anything, "abc").Return(w, true, nil)

	router := setupTestRouter()
	router.POST("/signup/:id/steps", controller.SubmitStep)

	resp := performJSONRequest(router, "POST", "/signup/abc/steps", map[string]interface{}{"age": 10})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	response := decodeResponse(t, resp)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, string(wizard.StepAge), data["step"])

	// A rejected step is never persisted.
	sessions.AssertNotCalled(t, "SaveSignup", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitFinalStepCreatesAccount(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	controller, sessions, userRepo := setupSignupControllerWithMocks()

	w := goalStepWizard(t)
	expectedGoal, err := fitness.CalorieTarget(70, 175, 30, 1.55, fitness.GoalMaintain, fitness.PolicyRatio)
	assert.NoError(t, err)

	sessions.On("GetSignup", mock.Anything, "abc").Return(w, true, nil)
	sessions.On("DeleteSignup", mock.Anything, "abc").Return(nil)
	userRepo.On("CreateUser", mock.MatchedBy(func(user *models.User) bool {
		return user.Email == "jane@example.com" &&
			user.CalorieGoal == expectedGoal &&
			user.Goal == "maintain" &&
			user.Password != "password123" // stored hashed, never in plain text
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/signup/:id/steps", controller.SubmitStep)

	resp := performJSONRequest(router, "POST", "/signup/abc/steps", map[string]interface{}{"goal": "maintain"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	response := decodeResponse(t, resp)
	assert.Equal(t, "Account created successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	sessions.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestSubmitFinalStepFailureDiscardsSession(t *testing.T) {
	controller, sessions, userRepo := setupSignupControllerWithMocks()

	w := goalStepWizard(t)
	sessions.On("GetSignup", mock.Anything, "abc").Return(w, true, nil)
	sessions.On("DeleteSignup", mock.Anything, "abc").Return(nil)
	userRepo.On("CreateUser", mock.Anything).Return(errors.New("duplicate email"))

	router := setupTestRouter()
	router.POST("/signup/:id/steps", controller.SubmitStep)

	resp := performJSONRequest(router, "POST", "/signup/abc/steps", map[string]interface{}{"goal": "maintain"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	// The session is gone either way: the wizard permits no retry of a
	// submitted run, so the user must restart.
	sessions.AssertCalled(t, "DeleteSignup", mock.Anything, "abc")
}

func TestSubmitStepAfterCompletion(t *testing.T) {
	controller, sessions, _ := setupSignupControllerWithMocks()

	w := &wizard.Wizard{Step: wizard.StepSubmitted}
	sessions.On("GetSignup", mock.Anything, "abc").Return(w, true, nil)

	router := setupTestRouter()
	router.POST("/signup/:id/steps", controller.SubmitStep)

	resp := performJSONRequest(router, "POST", "/signup/abc/steps", map[string]interface{}{"age": 30})

	assert.Equal(t, http.StatusConflict, resp.Code)
	response := decodeResponse(t, resp)
	assert.Equal(t, "Signup already completed", response["message"])
}
