package handlers

import (
	"github.com/shivaji43/mymuseum/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(router *gin.RouterGroup, paymentController *controllers.PaymentController) {
	paymentGroup := router.Group("/payment")
	{
		paymentGroup.POST("/orders", paymentController.CreateOrder)
		paymentGroup.POST("/verify", paymentController.Verify)
	}
}
