package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// NutritionTotals is the structured nutrition block the analysis service
// attaches to a recommendation.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// RecommendationResult pairs the free-text recommendations with the parsed
// nutrition totals for the analyzed food.
type RecommendationResult struct {
	Recommendations string
	Nutrition       NutritionTotals
}

// DailyConsumption is today's running totals passed along with a nutrition
// chat message so the service can answer in context.
type DailyConsumption struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	FoodItems string  `json:"food_items"`
}

// SummaryRequest carries the current-day stats, goal and weekly trend array
// for the narrative dashboard summary.
type SummaryRequest struct {
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	CalorieGoal  int       `json:"calorie_goal"`
	WeeklyTrends []float64 `json:"weekly_trends"`
	Trends       Trends    `json:"trends"`
}

// Trends holds the formatted day-over-day change strings per metric.
type Trends struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// Client is the food-analysis service consumed over plain HTTP. Image
// understanding and all recommendation text come from it; this package only
// does transport.
type Client interface {
	AnalyzeImage(ctx context.Context, filename string, image io.Reader) (map[string]string, error)
	CalorieRecommendations(ctx context.Context, userInput string, calorieGoal int) (*RecommendationResult, error)
	NutritionChat(ctx context.Context, message, nutritionContext string, daily DailyConsumption, calorieGoal int) (string, bool, error)
	NutritionSummary(ctx context.Context, req SummaryRequest) (string, error)
	HealthCheck(ctx context.Context) error
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against ANALYSIS_SERVICE_URL (or the given
// address when non-empty).
func NewClient(address string) Client {
	if address == "" {
		address = os.Getenv("ANALYSIS_SERVICE_URL")
	}
	if address == "" {
		address = "http://localhost:8000"
	}
	return &httpClient{
		baseURL:    address,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalyzeImage uploads a food photo and returns the service's clarification
// questions keyed by question identifier.
func (c *httpClient) AnalyzeImage(ctx context.Context, filename string, image io.Reader) (map[string]string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/upload_image/", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	var questions map[string]string
	if err := c.do(request, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// CalorieRecommendations sends the accumulated question/answer text plus the
// user's calorie goal and returns recommendations with nutrition totals.
func (c *httpClient) CalorieRecommendations(ctx context.Context, userInput string, calorieGoal int) (*RecommendationResult, error) {
	payload := map[string]interface{}{
		"user_input":   userInput,
		"calorie_goal": calorieGoal,
	}

	var result struct {
		CalorieRecommendations string          `json:"calorie_recommendations"`
		NutritionalData        NutritionTotals `json:"nutritional_data"`
	}
	if err := c.postJSON(ctx, "/get_calorie_recommendations/", payload, &result); err != nil {
		return nil, err
	}

	return &RecommendationResult{
		Recommendations: result.CalorieRecommendations,
		Nutrition:       result.NutritionalData,
	}, nil
}

// NutritionChat asks a free-text question against today's consumption context.
// The second return value is the service's suggest-upload flag.
func (c *httpClient) NutritionChat(ctx context.Context, message, nutritionContext string, daily DailyConsumption, calorieGoal int) (string, bool, error) {
	payload := map[string]interface{}{
		"user_message":      message,
		"nutrition_context": nutritionContext,
		"daily_consumption": daily,
		"calorie_goal":      calorieGoal,
	}

	var result struct {
		Response      string `json:"response"`
		SuggestUpload bool   `json:"suggest_upload"`
	}
	if err := c.postJSON(ctx, "/chat_with_nutrition/", payload, &result); err != nil {
		return "", false, err
	}
	return result.Response, result.SuggestUpload, nil
}

// NutritionSummary requests the narrative dashboard summary.
func (c *httpClient) NutritionSummary(ctx context.Context, req SummaryRequest) (string, error) {
	payload := map[string]interface{}{
		"current_stats": map[string]float64{
			"calories": req.Calories,
			"protein":  req.Protein,
			"carbs":    req.Carbs,
			"fat":      req.Fat,
		},
		"calorie_goal":  req.CalorieGoal,
		"weekly_trends": req.WeeklyTrends,
		"trends":        req.Trends,
	}

	var result struct {
		Summary string `json:"summary"`
	}
	if err := c.postJSON(ctx, "/get_nutrition_summary/", payload, &result); err != nil {
		return "", err
	}
	return result.Summary, nil
}

// HealthCheck pings the service with a short deadline.
func (c *httpClient) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := c.do(request, &result); err != nil {
		return err
	}
	if result.Status != "ok" {
		return fmt.Errorf("analysis service unhealthy: %s", result.Status)
	}
	return nil
}

func (c *httpClient) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	return c.do(request, out)
}

func (c *httpClient) do(request *http.Request, out interface{}) error {
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("analysis service request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil || errorResponse.Detail == "" {
			return fmt.Errorf("analysis service returned status %d", response.StatusCode)
		}
		return fmt.Errorf("analysis service error: %s", errorResponse.Detail)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
