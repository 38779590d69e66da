package routes

import (
	"saporis/internal/controllers"
	"saporis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterConsumptionRoutes(router *gin.Engine, consumptionController *controllers.ConsumptionController) {
	consumptionRoutes := router.Group("/consumption")
	consumptionRoutes.Use(middleware.AuthMiddleware())
	{
		consumptionRoutes.POST("/", consumptionController.LogConsumption)
		consumptionRoutes.GET("/today", consumptionController.GetToday)
		consumptionRoutes.GET("/week", consumptionController.GetWeek)
	}
}
