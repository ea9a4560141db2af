package controllers

import (
	"net/http"
	"strings"

	"github.com/shivaji43/mymuseum/models"
	"github.com/shivaji43/mymuseum/services"
	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes ChatController with the service layer.
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ChatRequest represents the request payload: the full message history of
// the conversation so far.
type ChatRequest struct {
	Messages []models.ChatMessage `json:"messages" binding:"required,min=1"`
}

// Chat streams the assistant's answer over SSE. Events: "text" for token
// deltas, "tool" when a tool call runs, "error" on provider failure and a
// final "done" carrying the full answer.
func (ctrl *ChatController) Chat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Set SSE headers
	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")
	ctx.Writer.Flush()

	eventChan := make(chan models.ChatStreamEvent)
	doneChan := make(chan bool)

	go ctrl.ChatService.StreamChat(ctx.Request.Context(), eventChan, doneChan, req.Messages)

	var answer []string

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				eventChan = nil
				continue
			}
			switch event.Type {
			case "text":
				answer = append(answer, event.Data)
				ctx.SSEvent("text", event.Data)
			case "tool":
				ctx.SSEvent("tool", event.Data)
			case "error":
				ctx.SSEvent("error", gin.H{
					"statusCode": http.StatusInternalServerError,
					"message":    event.Data,
				})
				ctx.Writer.Flush()
				return
			}
			ctx.Writer.Flush()

		case <-doneChan:
			ctx.SSEvent("done", gin.H{
				"statusCode": http.StatusOK,
				"message":    "Chat completed",
				"data":       strings.Join(answer, ""),
			})
			ctx.Writer.Flush()
			return

		case <-ctx.Request.Context().Done():
			// Client aborted generation; the service stops on the same
			// context.
			return
		}
	}
}

// Debug exercises the catalog end to end: load, search and city filtering.
func (ctrl *ChatController) Debug(ctx *gin.Context) {
	catalog := ctrl.ChatService.CatalogService

	allCafes := catalog.GetCafes()
	delhiSearch := catalog.SearchCafes("Delhi")
	mumbaiCafes := catalog.GetCafesByCity("Mumbai")

	var sampleCafe gin.H
	if len(allCafes) > 0 {
		sampleCafe = gin.H{
			"name":     allCafes[0].Name,
			"city":     allCafes[0].City,
			"category": allCafes[0].Category,
		}
	}

	var sampleResult string
	if len(delhiSearch) > 0 {
		sampleResult = delhiSearch[0].Name
	}

	mumbaiNames := make([]string, 0, len(mumbaiCafes))
	for _, cafe := range mumbaiCafes {
		mumbaiNames = append(mumbaiNames, cafe.Name)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"totalCafes": len(allCafes),
		"sampleCafe": sampleCafe,
		"searchTest": gin.H{
			"query":        "Delhi",
			"results":      len(delhiSearch),
			"sampleResult": sampleResult,
		},
		"cityTest": gin.H{
			"city":    "Mumbai",
			"results": len(mumbaiCafes),
			"cafes":   mumbaiNames,
		},
	})
}
