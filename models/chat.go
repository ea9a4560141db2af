package models

// ChatMessage is one turn of the conversation sent by the client.
// Role is "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatStreamEvent is pushed by the chat service while a completion streams.
// Type is "text" for a token delta, "tool" when a tool call is executed and
// "error" when the upstream provider fails.
type ChatStreamEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}
