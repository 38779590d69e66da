package routes

import (
	"saporis/internal/controllers"
	"saporis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAnalyticsRoutes(router *gin.Engine, analyticsController *controllers.AnalyticsController) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Use(middleware.AuthMiddleware())
	{
		analyticsRoutes.GET("/dashboard", analyticsController.GetDashboard)
		analyticsRoutes.GET("/metrics", analyticsController.GetFitnessMetrics)
		analyticsRoutes.GET("/summary", analyticsController.GetSummary)
	}
}
