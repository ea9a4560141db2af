package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shivaji43/mymuseum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService() *ChatService {
	return NewChatService(NewCatalogService(), nil)
}

func TestChatToolsRosterIsClosedAndUnique(t *testing.T) {
	tools := ChatTools()
	assert.Len(t, tools, 21)

	seen := map[string]bool{}
	for _, tool := range tools {
		require.NotNil(t, tool.Function)
		assert.False(t, seen[tool.Function.Name], "duplicate tool %q", tool.Function.Name)
		seen[tool.Function.Name] = true
	}
}

func TestEveryDeclaredToolIsDispatchable(t *testing.T) {
	chat := newTestChatService()

	// Arguments valid for every schema in the roster.
	args := `{"query":"delhi","category":"all","city":"Delhi","minPrice":0,"maxPrice":10000,"museumId":1,"cafeId":1,"showId":1}`
	for _, tool := range ChatTools() {
		result := chat.executeTool(tool.Function.Name, args)
		assert.NotContains(t, result, "unknown tool", "tool %q not handled", tool.Function.Name)
	}
}

func TestExecuteCafeBookingTool(t *testing.T) {
	chat := newTestChatService()

	raw := chat.executeTool("createCafeBooking", `{"cafeId":12}`)

	var session models.BookingSession
	require.NoError(t, json.Unmarshal([]byte(raw), &session))
	assert.True(t, session.Success)
	assert.True(t, strings.HasPrefix(session.BookingURL, "/cafes?bookingId=12"))
}

func TestExecuteBookingToolUnknownVenue(t *testing.T) {
	chat := newTestChatService()

	raw := chat.executeTool("createMuseumBooking", `{"museumId":99999}`)

	var session models.BookingSession
	require.NoError(t, json.Unmarshal([]byte(raw), &session))
	assert.False(t, session.Success)
	assert.Empty(t, session.BookingURL)
}

func TestExecuteSearchTool(t *testing.T) {
	chat := newTestChatService()

	raw := chat.executeTool("searchCafes", `{"query":"irani"}`)

	var result struct {
		Cafes []models.Cafe `json:"cafes"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &result))
	assert.Equal(t, len(result.Cafes), result.Count)
	assert.NotEmpty(t, result.Cafes)
}

func TestExecuteToolUnknownName(t *testing.T) {
	chat := newTestChatService()

	raw := chat.executeTool("dropTables", `{}`)
	assert.Contains(t, raw, "unknown tool")
}

func TestExecuteToolMalformedArguments(t *testing.T) {
	chat := newTestChatService()

	raw := chat.executeTool("searchMuseums", `{"query":`)
	assert.Contains(t, raw, "invalid arguments")
}
