package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-textbook-be/pkg/llm"
)

const (
	defaultBaseURL   = "https://router.huggingface.co/v1"
	defaultMaxTokens = 500
	requestTimeout   = 60 * time.Second
)

// HuggingFaceProvider talks to the HuggingFace router, which speaks the
// OpenAI chat-completions dialect.
type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewHuggingFaceProvider(apiKey, baseURL, model string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *HuggingFaceProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Model:     p.model,
		MaxTokens: defaultMaxTokens,
	}
	for _, o := range options {
		o(opts)
	}

	payload, err := json.Marshal(completionRequest{
		Model:       opts.Model,
		Messages:    history,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("huggingface api returned error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty choices from huggingface api")
	}

	return completion.Choices[0].Message.Content, nil
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
