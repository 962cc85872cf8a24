package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"farmconnect/services/sms"
)

// dedupeTTL is how long a provider message id is remembered. Gateways
// redeliver webhooks on timeout; a day comfortably covers retry windows.
const dedupeTTL = 24 * time.Hour

// SMSHandler exposes the inbound SMS webhook.
type SMSHandler struct {
	Service sms.Service
	Dedupe  *redis.Client // optional; nil disables delivery dedupe
	Logger  *zap.Logger
}

// NewSMSHandler creates a new SMSHandler.
func NewSMSHandler(service sms.Service, dedupe *redis.Client, logger *zap.Logger) *SMSHandler {
	return &SMSHandler{Service: service, Dedupe: dedupe, Logger: logger}
}

// InboundSMSHandler receives one SMS from the transport provider and
// answers with the outcome the provider should send back to the sender.
func (h *SMSHandler) InboundSMSHandler(c *gin.Context) {
	var input struct {
		From       string `form:"From" json:"from"`
		Body       string `form:"Body" json:"body"`
		MessageSid string `form:"MessageSid" json:"messageSid"`
	}
	if err := c.ShouldBind(&input); err != nil || input.From == "" || input.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "From and Body are required"})
		return
	}

	if h.Dedupe != nil && input.MessageSid != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		first, err := h.Dedupe.SetNX(ctx, "sms:sid:"+input.MessageSid, 1, dedupeTTL).Result()
		if err != nil {
			// Dedupe is best effort; a redis outage must not drop messages.
			h.Logger.Warn("InboundSMSHandler: dedupe check failed", zap.Error(err))
		} else if !first {
			h.Logger.Info("InboundSMSHandler: duplicate delivery ignored",
				zap.String("message_sid", input.MessageSid))
			c.JSON(http.StatusOK, sms.Outcome{Success: true, Message: "Duplicate delivery ignored."})
			return
		}
	}

	outcome := h.Service.HandleSMSBooking(input.Body, input.From)
	c.JSON(http.StatusOK, outcome)
}
