package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// ErrSecretNotConfigured is returned when signature verification is
// attempted without RAZORPAY_KEY_SECRET set. There is deliberately no
// fallback secret: verification without the real key is meaningless.
var ErrSecretNotConfigured = errors.New("razorpay key secret is not configured")

// PaymentService creates Razorpay orders and verifies payment signatures.
type PaymentService struct {
	Client    *razorpay.Client
	keySecret string
}

// NewPaymentService initializes PaymentService with the Razorpay key pair.
func NewPaymentService(keyID, keySecret string) *PaymentService {
	return &PaymentService{
		Client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder forwards an order to Razorpay. Amount is in rupees and is
// converted to paise; currency defaults to INR and receipt to a generated
// id. The provider response is returned verbatim.
func (s *PaymentService) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (map[string]interface{}, error) {
	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()
	}
	if notes == nil {
		notes = map[string]interface{}{}
	}

	data := map[string]interface{}{
		"amount":   toPaise(amount),
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	return s.Client.Order.Create(data, nil)
}

// toPaise converts a rupee amount to whole paise. Rounding, not truncation:
// float arithmetic leaves 99.99*100 a hair under 9999.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// VerifySignature recomputes the HMAC-SHA256 hex digest of
// "orderId|paymentId" and compares it to the client-supplied signature in
// constant time.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) (bool, error) {
	if s.keySecret == "" {
		return false, ErrSecretNotConfigured
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
