package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/shivaji43/mymuseum/services"
	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type PaymentController struct {
	PaymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentService: paymentService}
}

// CreateOrderRequest is the order-creation payload. Amount is in rupees.
type CreateOrderRequest struct {
	Amount   float64                `json:"amount" binding:"required,gt=0"`
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt"`
	Notes    map[string]interface{} `json:"notes"`
}

// VerifyRequest carries the signature fields posted back by the payment
// widget.
type VerifyRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// CreateOrder forwards the order to Razorpay and returns the provider
// response verbatim.
func (ctrl *PaymentController) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Amount carries the only validation tags; any other bind failure is
		// a malformed payload rather than a missing amount.
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Amount is required")
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request")
		}
		return
	}

	order, err := ctrl.PaymentService.CreateOrder(req.Amount, req.Currency, req.Receipt, req.Notes)
	if err != nil {
		log.Println("Error creating Razorpay order:", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// Verify checks the payment signature server side. Verification is
// mandatory: a missing secret is a configuration error, not a pass.
func (ctrl *PaymentController) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing payment verification parameters")
		return
	}

	authentic, err := ctrl.PaymentService.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, services.ErrSecretNotConfigured) {
			log.Println("RAZORPAY_KEY_SECRET environment variable is not set")
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Payment verification failed")
		return
	}
	if !authentic {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
	})
}
