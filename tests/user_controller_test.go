package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"saporis/internal/controllers"
	"saporis/internal/fitness"
	"saporis/internal/models"
	"saporis/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func hashTestPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func performJSONRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestLoginUser(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	testPassword := "password123"
	testPasswordHash := hashTestPassword(t, testPassword)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
		checkToken     bool
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "jane@example.com",
				"password": testPassword,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{
					ID:       1,
					Email:    "jane@example.com",
					Password: testPasswordHash,
				}
				userRepo.On("GetUserByEmail", "jane@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User logged in successfully",
			checkToken:     true,
		},
		{
			name: "user not found",
			requestBody: map[string]interface{}{
				"email":    "nonexistent@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "nonexistent@example.com").Return(nil, errors.New("user not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name: "incorrect password",
			requestBody: map[string]interface{}{
				"email":    "jane@example.com",
				"password": "wrongpassword",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{
					ID:       1,
					Email:    "jane@example.com",
					Password: testPasswordHash,
				}
				userRepo.On("GetUserByEmail", "jane@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthorized",
		},
		{
			name: "oauth account has no password login",
			requestBody: map[string]interface{}{
				"email":    "oauth@example.com",
				"password": "anything123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{
					ID:       2,
					Email:    "oauth@example.com",
					Password: "",
				}
				userRepo.On("GetUserByEmail", "oauth@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthorized",
		},
		{
			name: "invalid request data",
			requestBody: map[string]interface{}{
				"email": "jane@example.com",
				// Missing password
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.MockUserRepository)
			controller := controllers.NewUserController(userRepo)
			tt.setupMocks(userRepo)

			router := setupTestRouter()
			router.POST("/users/login", controller.LoginUser)

			w := performJSONRequest(router, "POST", "/users/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkToken {
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(userRepo)

	user := &models.User{ID: 1, Email: "jane@example.com", FirstName: "Jane"}
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)

	router := setupTestRouter()
	router.GET("/users/me", addAuthMiddleware(1), controller.GetCurrentUser)

	w := performJSONRequest(router, "GET", "/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "User retrieved successfully", response["message"])
	userRepo.AssertExpectations(t)
}

func TestPatchUserRecomputesCalorieGoal(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(userRepo)

	user := &models.User{
		ID:                 1,
		Email:              "jane@example.com",
		Age:                30,
		Height:             175,
		Weight:             70,
		ActivityMultiplier: 1.55,
		Goal:               "maintain",
		CalorieGoal:        2556,
	}
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)

	// Weight changes to 80: the goal must be recomputed with the new weight.
	expectedGoal, err := fitness.CalorieTarget(80, 175, 30, 1.55, fitness.GoalMaintain, fitness.PolicyRatio)
	assert.NoError(t, err)

	userRepo.On("PatchUser", uint(1), mock.MatchedBy(func(data map[string]interface{}) bool {
		return data["weight"] == 80.0 && data["calorie_goal"] == expectedGoal
	})).Return(nil)

	router := setupTestRouter()
	router.PATCH("/users/me", addAuthMiddleware(1), controller.PatchUser)

	w := performJSONRequest(router, "PATCH", "/users/me", map[string]interface{}{"weight": 80})

	assert.Equal(t, http.StatusOK, w.Code)
	userRepo.AssertExpectations(t)
}

func TestPatchUserRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "age too low", body: map[string]interface{}{"age": 12}},
		{name: "age too high", body: map[string]interface{}{"age": 121}},
		{name: "height too low", body: map[string]interface{}{"height": 99}},
		{name: "weight too high", body: map[string]interface{}{"weight": 301}},
		{name: "unknown activity level", body: map[string]interface{}{"activity_multiplier": 1.5}},
		{name: "unknown goal", body: map[string]interface{}{"goal": "bulk"}},
		{name: "no fields", body: map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.MockUserRepository)
			controller := controllers.NewUserController(userRepo)

			user := &models.User{ID: 1, Age: 30, Height: 175, Weight: 70, ActivityMultiplier: 1.55, Goal: "maintain"}
			userRepo.On("GetUserByID", uint(1)).Return(user, nil)

			router := setupTestRouter()
			router.PATCH("/users/me", addAuthMiddleware(1), controller.PatchUser)

			w := performJSONRequest(router, "PATCH", "/users/me", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			userRepo.AssertNotCalled(t, "PatchUser", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(userRepo)

	userRepo.On("DeleteUser", uint(1)).Return(nil)

	router := setupTestRouter()
	router.DELETE("/users/me", addAuthMiddleware(1), controller.DeleteUser)

	w := performJSONRequest(router, "DELETE", "/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "User deleted successfully", response["message"])
	userRepo.AssertExpectations(t)
}
