package services

import (
	"context"
	"log"

	"github.com/shivaji43/mymuseum/models"

	openai "github.com/sashabaranov/go-openai"
)

// maxToolSteps bounds the dispatch loop so a chat turn always terminates
// even if the model keeps requesting tools.
const maxToolSteps = 5

const systemPrompt = `You are MuBuddy, an expert AI guide specializing in India's rich cultural heritage and a booking assistant for the BookEase platform. You help users discover and book:

1. **MUSEUMS** - Historical museums showcasing India's 5000-year heritage, archaeological treasures, art galleries, and cultural centers
2. **HERITAGE CAFES** - Traditional Irani cafés, historic restaurants, and culturally significant dining experiences
3. **CULTURAL SHOWS** - Classical performances, traditional theater, folk arts, and heritage entertainment

CRITICAL: You MUST use the available tools to search and retrieve data. NEVER make up information.

Tool Usage Guidelines:
- When users ask about cafes, museums, or shows, use the searchMuseums, searchCafes, or searchShows tools
- When users mention a specific city, use getMuseumsByCity, getCafesByCity, or getShowsByCity
- When users ask for recommendations, use getFeaturedMuseums, getFeaturedCafes, or getFeaturedShows
- When users mention budget or price, use getMuseumsByPriceRange, getCafesByPriceRange, or getShowsByPriceRange
- When users ask about categories, use getMuseumsByCategory, getCafesByCategory, or getShowsByCategory
- Users may type names in lowercase, e.g. farzi cafe or cafe mysore; in the catalog they may be labelled Café, treat them the same

IMPORTANT: Always call the appropriate tool BEFORE providing any venue information. If a tool returns no results, acknowledge this and suggest alternatives.

When users express interest in booking or making reservations:
- For museums, use the createMuseumBooking tool
- For cafes, use the createCafeBooking tool
- For shows, use the createShowBooking tool

After using a booking tool, provide the booking link and explain that clicking it will take them to complete their booking with payment.

When presenting results:
- List the actual venues returned by the tools
- Include key details: name, location, price, rating, highlights
- Add historical context and cultural significance
- Provide booking information (contact numbers, websites)

Format your responses with:
- Bold (**text**) for venue names and important details
- Bullet points for venue features
- Prices in rupees (₹)
- Ratings and special features

Your tone should be knowledgeable yet approachable, like a passionate history professor who makes the past come alive!`

// completionStreamer runs one streamed chat completion and returns the
// accumulated assistant message. OpenAIService is the production
// implementation.
type completionStreamer interface {
	StreamCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool, onToken func(string)) (openai.ChatCompletionMessage, error)
}

// ChatService bridges free-text user intent to the catalog and booking
// services through the model's tool calls.
type ChatService struct {
	CatalogService *CatalogService
	BookingService *BookingService
	Streamer       completionStreamer
}

// NewChatService initializes ChatService with the catalog, booking and
// completion layers.
func NewChatService(catalog *CatalogService, streamer completionStreamer) *ChatService {
	return &ChatService{
		CatalogService: catalog,
		BookingService: NewBookingService(catalog),
		Streamer:       streamer,
	}
}

// StreamChat runs the tool-dispatch loop for one conversation turn, pushing
// stream events into eventChan and signalling completion on doneChan. Tool
// calls requested by the model are executed sequentially between completion
// rounds; cancelling ctx stops the stream and skips pending tool calls.
func (s *ChatService) StreamChat(ctx context.Context, eventChan chan<- models.ChatStreamEvent, doneChan chan<- bool, history []models.ChatMessage) {
	defer close(eventChan)
	defer close(doneChan)

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	tools := ChatTools()

	for step := 0; step < maxToolSteps; step++ {
		assistant, err := s.Streamer.StreamCompletion(ctx, messages, tools, func(token string) {
			s.emit(ctx, eventChan, models.ChatStreamEvent{Type: "text", Data: token})
		})
		if err != nil {
			if ctx.Err() == nil {
				log.Println("Error streaming completion:", err)
				s.emit(ctx, eventChan, models.ChatStreamEvent{Type: "error", Data: "Failed to process request"})
			}
			s.signalDone(ctx, doneChan)
			return
		}

		messages = append(messages, assistant)

		// No tool calls means the model produced its final answer.
		if len(assistant.ToolCalls) == 0 {
			s.signalDone(ctx, doneChan)
			return
		}

		for _, call := range assistant.ToolCalls {
			if ctx.Err() != nil {
				s.signalDone(ctx, doneChan)
				return
			}
			s.emit(ctx, eventChan, models.ChatStreamEvent{Type: "tool", Data: call.Function.Name})
			result := s.executeTool(call.Function.Name, call.Function.Arguments)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	s.signalDone(ctx, doneChan)
}

func (s *ChatService) emit(ctx context.Context, eventChan chan<- models.ChatStreamEvent, event models.ChatStreamEvent) {
	select {
	case eventChan <- event:
	case <-ctx.Done():
	}
}

func (s *ChatService) signalDone(ctx context.Context, doneChan chan<- bool) {
	select {
	case doneChan <- true:
	case <-ctx.Done():
	}
}
