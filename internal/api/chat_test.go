package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamraw-backend/internal/llm"
)

func TestChatDemoMode(t *testing.T) {
	cfg := testConfig(t) // no OPENROUTER_API_KEY
	r := setupRouter(t, cfg)

	w := doJSON(r, http.MethodPost, "/chat", `{"message":"What robots do you build?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, llm.DemoModeResponse, decode(t, w)["response"])
}

func TestChatMissingMessage(t *testing.T) {
	r := setupRouter(t, testConfig(t))

	w := doJSON(r, http.MethodPost, "/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/chat", `{"message":123}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatProxiesUpstreamReply(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  We build ROBOCON bots!  "}}]}`))
	}))
	defer upstream.Close()

	cfg := testConfig(t)
	cfg.OpenRouterAPIKey = "test-key"
	cfg.OpenRouterAPIURL = upstream.URL
	r := setupRouter(t, cfg)

	w := doJSON(r, http.MethodPost, "/chat", `{"message":"What robots do you build?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "We build ROBOCON bots!", decode(t, w)["response"])
}

func TestChatUpstreamErrorFallsBack(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	cfg := testConfig(t)
	cfg.OpenRouterAPIKey = "test-key"
	cfg.OpenRouterAPIURL = upstream.URL
	r := setupRouter(t, cfg)

	w := doJSON(r, http.MethodPost, "/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, llm.UpstreamErrorResponse, decode(t, w)["response"])
}

func TestChatEmptyCompletionFallsBack(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	}))
	defer upstream.Close()

	cfg := testConfig(t)
	cfg.OpenRouterAPIKey = "test-key"
	cfg.OpenRouterAPIURL = upstream.URL
	r := setupRouter(t, cfg)

	w := doJSON(r, http.MethodPost, "/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, llm.EmptyCompletionResponse, decode(t, w)["response"])
}
