package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teamraw-backend/internal/llm"
)

type ChatHandler struct {
	Client *llm.Client
}

func NewChatHandler(client *llm.Client) *ChatHandler {
	return &ChatHandler{Client: client}
}

type ChatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /chat. Upstream failures degrade to canned replies with
// a 200 so the chatbot UI never shows a raw error; only a missing message
// is a client error.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	if !h.Client.Configured() {
		c.JSON(http.StatusOK, gin.H{"response": llm.DemoModeResponse})
		return
	}

	reply, err := h.Client.Complete(c.Request.Context(), req.Message)
	if err != nil {
		if err == llm.ErrEmptyCompletion {
			c.JSON(http.StatusOK, gin.H{"response": llm.EmptyCompletionResponse})
			return
		}
		log.Printf("Chat upstream error: %v", err)
		c.JSON(http.StatusOK, gin.H{"response": llm.UpstreamErrorResponse})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
