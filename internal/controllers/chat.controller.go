package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"saporis/internal/ai"
	"saporis/internal/models"
	"saporis/internal/repository"
	"saporis/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const chatHistoryLimit = 50

// ChatController handles the food-analysis conversation: image upload,
// clarification questions, recommendations and free-text nutrition chat.
type ChatController struct {
	aiClient        ai.Client
	chatRepo        repository.ChatHistoryRepository
	consumptionRepo repository.ConsumptionRepository
	userRepo        repository.UserRepository
	objectStore     storage.ObjectStore
}

func NewChatController(aiClient ai.Client, chatRepo repository.ChatHistoryRepository,
	consumptionRepo repository.ConsumptionRepository, userRepo repository.UserRepository,
	objectStore storage.ObjectStore) *ChatController {
	return &ChatController{
		aiClient:        aiClient,
		chatRepo:        chatRepo,
		consumptionRepo: consumptionRepo,
		userRepo:        userRepo,
		objectStore:     objectStore,
	}
}

// AnalyzeImage godoc
// @Summary Upload a food photo for analysis
// @Description Stores the photo and forwards it to the analysis service, which
// @Description returns clarification questions about the meal. The answers are
// @Description submitted to the recommendations endpoint.
// @Tags chat
// @Accept mpfd
// @Produce json
// @Success 200 {object} map[string]interface{} "Image analyzed successfully"
// @Failure 400 {object} map[string]interface{} "Missing or invalid image"
// @Failure 502 {object} map[string]interface{} "Analysis service unavailable"
// @Router /chat/analyze [post]
func (cc *ChatController) AnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing image file",
			"error":   err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to read image file",
			"error":   err.Error(),
		})
		return
	}
	defer file.Close()

	// The image is sent to both the analysis service and the object store.
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to read image file",
			"error":   err.Error(),
		})
		return
	}

	questions, err := cc.aiClient.AnalyzeImage(c.Request.Context(), fileHeader.Filename, bytes.NewReader(buf.Bytes()))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to analyze image",
			"error":   err.Error(),
		})
		return
	}

	objectName := fmt.Sprintf("%d-%s-%s", time.Now().Unix(), uuid.New().String(), fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	imageURL, err := cc.objectStore.Put(c.Request.Context(), objectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()), contentType)
	if err != nil {
		// The analysis succeeded; a failed archive upload should not block
		// the conversation.
		imageURL = ""
	}

	// The portion-confirmation question is appended here rather than by the
	// analysis service so its wording stays consistent.
	if questions == nil {
		questions = map[string]string{}
	}
	questions["confirmation"] = "Is this everything you ate, or would you like to add anything else?"

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Image analyzed successfully",
		"data": gin.H{
			"questions": questions,
			"image_url": imageURL,
		},
	})
}

// GetRecommendations godoc
// @Summary Get recommendations for an analyzed meal
// @Description Sends the accumulated question/answer text to the analysis
// @Description service. The returned nutrition totals are folded into today's
// @Description consumption record and the conversation is saved to history.
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Recommendations generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "Analysis service unavailable"
// @Router /chat/recommendations [post]
func (cc *ChatController) GetRecommendations(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var request struct {
		UserInput string `json:"user_input" binding:"required"`
		ImageURL  string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := cc.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	result, err := cc.aiClient.CalorieRecommendations(c.Request.Context(), request.UserInput, user.CalorieGoal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to generate recommendations",
			"error":   err.Error(),
		})
		return
	}

	record, err := cc.consumptionRepo.AddToDay(userID, time.Now(),
		result.Nutrition.Calories, result.Nutrition.Protein, result.Nutrition.Carbs,
		result.Nutrition.Fat, request.UserInput)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log consumption",
			"error":   err.Error(),
		})
		return
	}

	entry := models.ChatHistory{
		UserID:       userID,
		ImageURL:     request.ImageURL,
		Conversation: request.UserInput + "\n\n" + result.Recommendations,
	}
	if err := cc.chatRepo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save chat history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendations generated successfully",
		"data": gin.H{
			"recommendations": result.Recommendations,
			"nutrition":       result.Nutrition,
			"consumption":     record,
			"history_id":      entry.ID,
		},
	})
}

// SendMessage godoc
// @Summary Ask the nutrition assistant a question
// @Description Free-text chat answered against today's consumption and the
// @Description user's calorie goal. suggest_upload signals the client to offer
// @Description the photo-upload flow.
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Message answered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "Analysis service unavailable"
// @Router /chat/message [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var request struct {
		Message string `json:"message" binding:"required"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := cc.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	daily := ai.DailyConsumption{}
	if record, err := cc.consumptionRepo.FindByUserIDAndDate(userID, time.Now()); err == nil {
		daily = ai.DailyConsumption{
			Calories:  record.Calories,
			Protein:   record.Protein,
			Carbs:     record.Carbs,
			Fat:       record.Fat,
			FoodItems: record.FoodItems,
		}
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve consumption",
			"error":   err.Error(),
		})
		return
	}

	response, suggestUpload, err := cc.aiClient.NutritionChat(c.Request.Context(),
		request.Message, request.Context, daily, user.CalorieGoal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to answer message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message answered successfully",
		"data": gin.H{
			"response":       response,
			"suggest_upload": suggestUpload,
		},
	})
}

// GetHistory godoc
// @Summary Get past food-analysis conversations
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{} "Chat history retrieved successfully"
// @Router /chat/history [get]
func (cc *ChatController) GetHistory(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	entries, err := cc.chatRepo.FindAllByUserID(userID, chatHistoryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve chat history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chat history retrieved successfully",
		"data":    entries,
	})
}
