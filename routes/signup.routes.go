package routes

import (
	"saporis/internal/controllers"

	"github.com/gin-gonic/gin"
)

// Signup routes are public: the account does not exist until the wizard's
// final step is accepted.
func RegisterSignupRoutes(router *gin.Engine, signupController *controllers.SignupController) {
	signupRoutes := router.Group("/signup")
	{
		signupRoutes.POST("/", signupController.StartSignup)
		signupRoutes.GET("/:id", signupController.GetSignup)
		signupRoutes.POST("/:id/steps", signupController.SubmitStep)
	}
}
