package routes

import (
	"saporis/internal/controllers"
	"saporis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, chatController *controllers.ChatController) {
	chatRoutes := router.Group("/chat")
	chatRoutes.Use(middleware.AuthMiddleware())
	{
		chatRoutes.POST("/analyze", chatController.AnalyzeImage)
		chatRoutes.POST("/recommendations", chatController.GetRecommendations)
		chatRoutes.POST("/message", chatController.SendMessage)
		chatRoutes.GET("/history", chatController.GetHistory)
	}
}
