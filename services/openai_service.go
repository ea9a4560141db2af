package services

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService wraps the OpenAI chat-completions client.
type OpenAIService struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIService creates a new instance of OpenAIService.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		Client: openai.NewClient(apiKey),
		Model:  model,
	}
}

// StreamCompletion runs one streamed chat completion. Content deltas are
// forwarded to onToken as they arrive; tool-call deltas are accumulated by
// index into the returned assistant message. The returned message carries
// either final text, tool calls, or both.
func (s *OpenAIService) StreamCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool, onToken func(string)) (openai.ChatCompletionMessage, error) {
	stream, err := s.Client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       s.Model,
		Messages:    messages,
		Tools:       tools,
		Temperature: 0.7,
	})
	if err != nil {
		return openai.ChatCompletionMessage{}, err
	}
	defer stream.Close()

	assistant := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant}
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return openai.ChatCompletionMessage{}, err
		}
		if len(resp.Choices) == 0 {
			continue
		}

		delta := resp.Choices[0].Delta
		if delta.Content != "" {
			assistant.Content += delta.Content
			if onToken != nil {
				onToken(delta.Content)
			}
		}

		// Tool calls stream in fragments keyed by index: the first fragment
		// carries the id and name, later ones append argument chunks.
		for _, tc := range delta.ToolCalls {
			idx := 0
			if tc.Index != nil {
				idx = *tc.Index
			}
			for len(assistant.ToolCalls) <= idx {
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ToolCall{Type: openai.ToolTypeFunction})
			}
			acc := &assistant.ToolCalls[idx]
			if tc.ID != "" {
				acc.ID = tc.ID
			}
			if tc.Function.Name != "" {
				acc.Function.Name = tc.Function.Name
			}
			acc.Function.Arguments += tc.Function.Arguments
		}
	}

	return assistant, nil
}
