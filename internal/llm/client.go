package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"teamraw-backend/internal/config"
)

// ErrEmptyCompletion means the upstream answered successfully but returned
// no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

// Client talks to an OpenRouter-style chat-completions API.
type Client struct {
	Config *config.Config
	HTTP   *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		Config: cfg,
		HTTP:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an upstream API key is present. Without one the
// chat endpoint runs in demo mode and never calls out.
func (c *Client) Configured() bool {
	return c.Config.OpenRouterAPIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one user utterance under the fixed persona prompt and
// returns the trimmed completion text.
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	body := chatCompletionRequest{
		Model: c.Config.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.OpenRouterAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.Config.OpenRouterAPIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://teamraw.com")
	req.Header.Set("X-Title", "TeamRAW Chatbot")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("upstream error: %s - %s", resp.Status, string(respBody))
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
