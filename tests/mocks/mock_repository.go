package mocks

import (
	"context"
	"io"
	"time"

	"saporis/internal/ai"
	"saporis/internal/models"
	"saporis/internal/session"
	"saporis/internal/wizard"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) PatchUser(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockConsumptionRepository
type MockConsumptionRepository struct {
	mock.Mock
}

func (m *MockConsumptionRepository) AddToDay(userID uint, date time.Time, calories, protein, carbs, fat float64, foodItems string) (*models.Consumption, error) {
	args := m.Called(userID, date, calories, protein, carbs, fat, foodItems)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consumption), args.Error(1)
}

func (m *MockConsumptionRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.Consumption, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consumption), args.Error(1)
}

func (m *MockConsumptionRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Consumption, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.Consumption), args.Error(1)
}

// Shared MockChatHistoryRepository
type MockChatHistoryRepository struct {
	mock.Mock
}

func (m *MockChatHistoryRepository) Create(entry *models.ChatHistory) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockChatHistoryRepository) FindAllByUserID(userID uint, limit int) ([]models.ChatHistory, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.ChatHistory), args.Error(1)
}

func (m *MockChatHistoryRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockSessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) SaveSignup(ctx context.Context, id string, w *wizard.Wizard) error {
	args := m.Called(ctx, id, w)
	return args.Error(0)
}

func (m *MockSessionStore) GetSignup(ctx context.Context, id string) (*wizard.Wizard, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*wizard.Wizard), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) DeleteSignup(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) PutOAuthHandoff(ctx context.Context, state string, handoff *session.OAuthHandoff) error {
	args := m.Called(ctx, state, handoff)
	return args.Error(0)
}

func (m *MockSessionStore) TakeOAuthHandoff(ctx context.Context, state string) (*session.OAuthHandoff, bool, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*session.OAuthHandoff), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockAnalysisClient
type MockAnalysisClient struct {
	mock.Mock
}

func (m *MockAnalysisClient) AnalyzeImage(ctx context.Context, filename string, image io.Reader) (map[string]string, error) {
	args := m.Called(ctx, filename, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockAnalysisClient) CalorieRecommendations(ctx context.Context, userInput string, calorieGoal int) (*ai.RecommendationResult, error) {
	args := m.Called(ctx, userInput, calorieGoal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.RecommendationResult), args.Error(1)
}

func (m *MockAnalysisClient) NutritionChat(ctx context.Context, message, nutritionContext string, daily ai.DailyConsumption, calorieGoal int) (string, bool, error) {
	args := m.Called(ctx, message, nutritionContext, daily, calorieGoal)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockAnalysisClient) NutritionSummary(ctx context.Context, req ai.SummaryRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAnalysisClient) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Shared MockObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}
