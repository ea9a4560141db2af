package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivaji43/mymuseum/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewPaymentController(services.NewPaymentService("rzp_test_key", secret))
	router.POST("/v1/payment/orders", controller.CreateOrder)
	router.POST("/v1/payment/verify", controller.Verify)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRequiresAmount(t *testing.T) {
	router := newPaymentRouter("super_secret")

	w := postJSON(t, router, "/v1/payment/orders", map[string]interface{}{"currency": "INR"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Amount is required")
}

func TestCreateOrderRejectsMalformedPayload(t *testing.T) {
	router := newPaymentRouter("super_secret")

	req := httptest.NewRequest(http.MethodPost, "/v1/payment/orders", bytes.NewBufferString(`{"amount": 99.99, "currency": 42`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request")
	assert.NotContains(t, w.Body.String(), "Amount is required")
}

func TestVerifyRequiresAllParameters(t *testing.T) {
	router := newPaymentRouter("super_secret")

	w := postJSON(t, router, "/v1/payment/verify", map[string]interface{}{
		"razorpay_order_id": "order_123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	router := newPaymentRouter("super_secret")

	mac := hmac.New(sha256.New, []byte("super_secret"))
	mac.Write([]byte("order_123|pay_456"))
	signature := hex.EncodeToString(mac.Sum(nil))

	w := postJSON(t, router, "/v1/payment/verify", map[string]interface{}{
		"razorpay_order_id":   "order_123",
		"razorpay_payment_id": "pay_456",
		"razorpay_signature":  signature,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestVerifyRejectsInvalidSignature(t *testing.T) {
	router := newPaymentRouter("super_secret")

	w := postJSON(t, router, "/v1/payment/verify", map[string]interface{}{
		"razorpay_order_id":   "order_123",
		"razorpay_payment_id": "pay_456",
		"razorpay_signature":  "deadbeef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment signature")
}

func TestVerifyFailsWithoutConfiguredSecret(t *testing.T) {
	// No fallback secret: verification must be a configuration error.
	router := newPaymentRouter("")

	w := postJSON(t, router, "/v1/payment/verify", map[string]interface{}{
		"razorpay_order_id":   "order_123",
		"razorpay_payment_id": "pay_456",
		"razorpay_signature":  "deadbeef",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
