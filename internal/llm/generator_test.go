package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/aicommit/internal/core"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newCompletionServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if captured != nil {
			data, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.NoError(t, json.Unmarshal(data, captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	const reply = `{
		"id": "cmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "deepseek-chat",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "feat: add parser"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
	}`

	var captured capturedRequest
	srv := newCompletionServer(t, http.StatusOK, reply, &captured)

	gen := NewOpenAIGenerator(core.ProviderDeepseek, core.ProviderConfig{
		APIKey:   "sk-test",
		Endpoint: srv.URL + "/",
	}, discardLogger())

	got, err := gen.Generate(context.Background(), "be brief", "the diff")
	require.NoError(t, err)
	assert.Equal(t, "feat: add parser", got)

	assert.Equal(t, "deepseek-chat", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 0.0001)
	assert.Equal(t, 100, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "be brief", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "the diff", captured.Messages[1].Content)
}

func TestOpenAIGenerator_Options(t *testing.T) {
	const reply = `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`

	var captured capturedRequest
	srv := newCompletionServer(t, http.StatusOK, reply, &captured)

	gen := NewOpenAIGenerator(core.ProviderQwen, core.ProviderConfig{
		APIKey:   "sk-test",
		Endpoint: srv.URL,
		Model:    "qwen-max",
	}, discardLogger(), WithTemperature(0.2), WithMaxTokens(250), WithMaxTokens(0))

	_, err := gen.Generate(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "qwen-max", captured.Model)
	assert.InDelta(t, 0.2, captured.Temperature, 0.0001)
	assert.Equal(t, 250, captured.MaxTokens)
}

func TestOpenAIGenerator_Errors(t *testing.T) {
	t.Run("no choices", func(t *testing.T) {
		srv := newCompletionServer(t, http.StatusOK,
			`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`, nil)
		gen := NewOpenAIGenerator(core.ProviderDeepseek, core.ProviderConfig{APIKey: "sk-test", Endpoint: srv.URL}, discardLogger())

		_, err := gen.Generate(context.Background(), "s", "u")
		assert.ErrorIs(t, err, ErrNoChoices)
	})

	t.Run("api error", func(t *testing.T) {
		srv := newCompletionServer(t, http.StatusUnauthorized,
			`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`, nil)
		gen := NewOpenAIGenerator(core.ProviderDeepseek, core.ProviderConfig{APIKey: "sk-test", Endpoint: srv.URL}, discardLogger())

		_, err := gen.Generate(context.Background(), "s", "u")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api key")
	})
}

func TestNewOpenAIGenerator_Defaults(t *testing.T) {
	gen := NewOpenAIGenerator(core.ProviderQwen, core.ProviderConfig{APIKey: "k"}, discardLogger())
	assert.Equal(t, core.ProviderQwen.DefaultModel(), gen.model)
	assert.Equal(t, DefaultTemperature, gen.temperature)
	assert.Equal(t, DefaultMaxTokens, gen.maxTokens)
}
