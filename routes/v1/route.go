package route

import (
	"github.com/shivaji43/mymuseum/config/environment"
	"github.com/shivaji43/mymuseum/controllers"
	"github.com/shivaji43/mymuseum/handlers"
	"github.com/shivaji43/mymuseum/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the services and controllers and mounts every route
// group under /v1. The catalog is constructed once here and shared.
func RegisterRoutes(router *gin.Engine) {
	catalogService := services.NewCatalogService()
	openAIService := services.NewOpenAIService(environment.GetOpenAIKey(), environment.GetOpenAIModel())
	chatService := services.NewChatService(catalogService, openAIService)
	paymentService := services.NewPaymentService(environment.GetRazorpayKeyID(), environment.GetRazorpayKeySecret())

	museumController := controllers.NewMuseumController(catalogService)
	cafeController := controllers.NewCafeController(catalogService)
	showController := controllers.NewShowController(catalogService)
	venueController := controllers.NewVenueController(catalogService)
	chatController := controllers.NewChatController(chatService)
	paymentController := controllers.NewPaymentController(paymentService)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterMuseumRoutes(v1Routes, museumController)
		handlers.RegisterCafeRoutes(v1Routes, cafeController)
		handlers.RegisterShowRoutes(v1Routes, showController)
		handlers.RegisterVenueRoutes(v1Routes, venueController)
		handlers.RegisterChatRoutes(v1Routes, chatController)
		handlers.RegisterPaymentRoutes(v1Routes, paymentController)
	}
}
