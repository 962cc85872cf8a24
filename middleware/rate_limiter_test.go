package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"farmconnect/config"
)

func TestSMSRateLimitMiddleware_PerSender(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.SMSRatePerMin = 2

	router := gin.New()
	router.POST("/sms", SMSRateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(from string) int {
		form := url.Values{"From": {from}, "Body": {"HELP"}}
		req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("+911111111111"))
	assert.Equal(t, http.StatusOK, send("+911111111111"))
	assert.Equal(t, http.StatusTooManyRequests, send("+911111111111"))

	// A different sender has its own limiter.
	assert.Equal(t, http.StatusOK, send("+922222222222"))
}
