package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicCompleter_Complete(t *testing.T) {
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [{"type": "text", "text": "numpy\npandas"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 4}
		}`))
	}))
	defer srv.Close()

	c := NewAnthropicCompleter(AnthropicConfig{APIKey: "ak-test", BaseURL: srv.URL})

	text, err := c.Complete(context.Background(), "You are a Python expert generating a dependency list.", "import numpy")

	require.NoError(t, err)
	assert.Equal(t, "numpy\npandas", text)
	assert.Equal(t, "claude-3-5-haiku-latest", c.Model())
	assert.Equal(t, "claude-3-5-haiku-latest", body["model"])
	assert.NotNil(t, body["system"])
}

func TestAnthropicCompleter_NoRetryOnServerError(t *testing.T) {
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	c := NewAnthropicCompleter(AnthropicConfig{APIKey: "ak-test", BaseURL: srv.URL})

	_, err := c.Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic completion failed")
	assert.Equal(t, 1, calls)
}
