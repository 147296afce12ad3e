package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bluepixel/estatechat/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:      "sk-test",
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		MaxTokens:   100,
		Temperature: 0.2,
		Timeout:     5 * time.Second,
	}
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Complete(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionResponse("Here are today's rates."))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL + "/v1"))
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "Here are today's rates.", text)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestClient_CompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL + "/v1"))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestClient_CompleteTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionResponse("too late"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL + "/v1")
	cfg.Timeout = 50 * time.Millisecond

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.OpenAIConfig{})
	assert.Error(t, err)
}
