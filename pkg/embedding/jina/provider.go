package jina

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-textbook-be/pkg/rag"
)

// Provider generates embeddings via the Jina AI embeddings API. The API takes
// an array of inputs natively, so single and batch share one code path.
type Provider struct {
	apiKey    string
	baseURL   string
	model     string
	dimension int
	client    *http.Client
}

func NewProvider(apiKey string, dimension int) *Provider {
	if dimension <= 0 {
		dimension = 768 // jina-embeddings-v2-base-en
	}
	return &Provider{
		apiKey:    apiKey,
		baseURL:   "https://api.jina.ai/v1/embeddings",
		model:     "jina-embeddings-v2-base-en",
		dimension: dimension,
		client:    &http.Client{},
	}
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *Provider) Dimension() int {
	return p.dimension
}

func (p *Provider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (p *Provider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	return p.embed(ctx, texts)
}

func (p *Provider) embed(ctx context.Context, texts []string) ([][]float32, error) {
	reqBody := embeddingRequest{
		Model: p.model,
		Input: texts,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, rag.NewEmbeddingError("jina embeddings", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, rag.NewEmbeddingError("jina embeddings", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, rag.NewEmbeddingError("jina embeddings", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, rag.NewEmbeddingError("jina embeddings",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var jinaResp embeddingResponse
	if err := json.Unmarshal(bodyBytes, &jinaResp); err != nil {
		return nil, rag.NewEmbeddingError("jina embeddings", err)
	}
	if jinaResp.Error != nil {
		return nil, rag.NewEmbeddingError("jina embeddings", fmt.Errorf("%s", jinaResp.Error.Message))
	}
	if len(jinaResp.Data) != len(texts) {
		return nil, rag.NewEmbeddingError("jina embeddings",
			fmt.Errorf("got %d embeddings for %d inputs", len(jinaResp.Data), len(texts)))
	}

	vectors := make([][]float32, len(jinaResp.Data))
	for _, d := range jinaResp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, rag.NewEmbeddingError("jina embeddings", fmt.Errorf("out of range index %d", d.Index))
		}
		if len(d.Embedding) != p.dimension {
			return nil, rag.NewEmbeddingError("jina embeddings",
				fmt.Errorf("dimension mismatch: got %d, want %d", len(d.Embedding), p.dimension))
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
