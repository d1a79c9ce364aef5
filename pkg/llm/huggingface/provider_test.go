package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-textbook-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendsCompletionRequest(t *testing.T) {
	var got completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"bonjour"}}]}`))
	}))
	defer server.Close()

	p := NewHuggingFaceProvider("test-key", server.URL, "test-model")
	answer, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hello"}},
		llm.WithTemperature(0.3),
	)
	require.NoError(t, err)
	assert.Equal(t, "bonjour", answer)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	assert.InDelta(t, 0.3, got.Temperature, 1e-9)
}

func TestChatSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer server.Close()

	p := NewHuggingFaceProvider("", server.URL, "test-model")
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestChatRejectsEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	p := NewHuggingFaceProvider("", server.URL, "test-model")
	_, err := p.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}
