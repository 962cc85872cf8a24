package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmconnect/handlers"
	"farmconnect/middleware"
)

// RegisterRoutes registers all endpoints of the SMS booking gateway.
func RegisterRoutes(r *gin.Engine, smsHandler *handlers.SMSHandler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/sms")
	api.Use(middleware.SMSRateLimitMiddleware())
	{
		api.POST("/inbound", smsHandler.InboundSMSHandler)
	}
}
