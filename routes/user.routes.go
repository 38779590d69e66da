package routes

import (
	"saporis/internal/controllers"
	"saporis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/login", userController.LoginUser)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.PATCH("/me", userController.PatchUser)
		userRoutesPrivate.DELETE("/me", userController.DeleteUser)
	}
}
