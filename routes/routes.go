package routes

import (
	"net/http"

	"github.com/jai-619/payment-backend/controllers"
	"github.com/jai-619/payment-backend/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	router.POST("/create_order", controllers.CreateOrder)
	router.POST("/webhook", controllers.HandleWebhook)
	router.GET("/transactions/:order_id", controllers.GetTransaction)

	return router
}
