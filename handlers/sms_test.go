package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmconnect/services/sms"
)

type stubSMSService struct {
	outcome  sms.Outcome
	gotText  string
	gotPhone string
	calls    int
}

func (s *stubSMSService) HandleSMSBooking(text, phoneNumber string) sms.Outcome {
	s.calls++
	s.gotText = text
	s.gotPhone = phoneNumber
	return s.outcome
}

func newTestRouter(svc sms.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewSMSHandler(svc, nil, zap.NewNop())
	router.POST("/api/sms/inbound", handler.InboundSMSHandler)
	return router
}

func postForm(t *testing.T, router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sms/inbound", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInboundSMSHandler_Success(t *testing.T) {
	svc := &stubSMSService{outcome: sms.Outcome{
		Success:   true,
		Message:   "✅ Booking received!",
		BookingID: "b-123",
	}}
	router := newTestRouter(svc)

	w := postForm(t, router, url.Values{
		"From":       {"+911234567890"},
		"Body":       {"BOOK tractor 2026-02-16 kalyani"},
		"MessageSid": {"SM1"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var out sms.Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "b-123", out.BookingID)

	assert.Equal(t, "BOOK tractor 2026-02-16 kalyani", svc.gotText)
	assert.Equal(t, "+911234567890", svc.gotPhone)
}

func TestInboundSMSHandler_MissingFields(t *testing.T) {
	svc := &stubSMSService{}
	router := newTestRouter(svc)

	w := postForm(t, router, url.Values{"Body": {"HELP"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postForm(t, router, url.Values{"From": {"+911234567890"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, svc.calls)
}

func TestInboundSMSHandler_FailureOutcomeIsStill200(t *testing.T) {
	// The transport layer relays the outcome text to the sender either
	// way; only malformed webhooks are HTTP errors.
	svc := &stubSMSService{outcome: sms.Outcome{
		Success: false,
		Message: `Machinery "harvester" not available`,
	}}
	router := newTestRouter(svc)

	w := postForm(t, router, url.Values{
		"From": {"+911234567890"},
		"Body": {"BOOK harvester 2026-02-16 kalyani"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var out sms.Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "harvester")
}
