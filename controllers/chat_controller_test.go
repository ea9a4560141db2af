package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivaji43/mymuseum/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	catalog := services.NewCatalogService()
	controller := NewChatController(services.NewChatService(catalog, services.NewOpenAIService("", "gpt-4o-mini")))
	router.POST("/v1/chat", controller.Chat)
	router.GET("/v1/chat/debug", controller.Debug)
	return router
}

func TestChatRejectsInvalidBody(t *testing.T) {
	router := newChatRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"messages":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatDebugReportsCatalogHealth(t *testing.T) {
	router := newChatRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/debug", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"totalCafes"`)
}
