package handlers

import (
	"github.com/shivaji43/mymuseum/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.RouterGroup, chatController *controllers.ChatController) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("", chatController.Chat)
		chatGroup.GET("/debug", chatController.Debug)
	}
}
