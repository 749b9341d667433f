package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmfrancisco/idlink-backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicationController *controllers.ApplicationController,
	mailController *controllers.MailController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Auth routes ---
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)
		api.GET("/users/count", applicationController.CountUsers)
	}

	// --- Application routes ---
	applications := api.Group("/applications")
	{
		applications.GET("", applicationController.List)
		applications.POST("", applicationController.Create)
		applications.POST("/revalidate", applicationController.Revalidate)
		applications.GET("/:id", applicationController.Get)
		applications.PUT("/:id", applicationController.UpdateStatus)
		applications.DELETE("/:id", applicationController.Delete)
	}

	// --- Mail utility routes ---
	{
		api.POST("/send-email", mailController.SendEmail)
		api.POST("/test-email", mailController.TestEmail)
		api.GET("/mailer-status", mailController.MailerStatus)
	}
}
