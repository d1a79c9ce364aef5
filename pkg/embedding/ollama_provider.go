package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"ai-textbook-be/pkg/rag"
)

// OllamaProvider generates embeddings from a local Ollama instance
// (e.g. nomic-embed-text). Vectors are L2-normalized so cosine distance in
// the vector index behaves as expected.
type OllamaProvider struct {
	baseURL   string
	model     string
	dimension int
	client    *http.Client
}

func NewOllamaProvider(baseURL, model string, dimension int) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "nomic-embed-text"
	}
	if dimension <= 0 {
		dimension = 768 // nomic-embed-text default
	}
	return &OllamaProvider{
		baseURL:   baseURL,
		model:     model,
		dimension: dimension,
		client:    &http.Client{},
	}
}

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func (p *OllamaProvider) Dimension() int {
	return p.dimension
}

func (p *OllamaProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (p *OllamaProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	return p.embed(ctx, texts)
}

// embed sends all inputs in a single /api/embed call.
func (p *OllamaProvider) embed(ctx context.Context, texts []string) ([][]float32, error) {
	reqBody := ollamaEmbedRequest{
		Model: p.model,
		Input: texts,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, rag.NewEmbeddingError("ollama embed", err)
	}

	endpoint := fmt.Sprintf("%s/api/embed", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, rag.NewEmbeddingError("ollama embed", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, rag.NewEmbeddingError("ollama embed", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rag.NewEmbeddingError("ollama embed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, rag.NewEmbeddingError("ollama embed",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var ollamaResp ollamaEmbedResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return nil, rag.NewEmbeddingError("ollama embed", err)
	}

	if len(ollamaResp.Embeddings) != len(texts) {
		return nil, rag.NewEmbeddingError("ollama embed",
			fmt.Errorf("got %d embeddings for %d inputs", len(ollamaResp.Embeddings), len(texts)))
	}

	vectors := make([][]float32, len(ollamaResp.Embeddings))
	for i, v := range ollamaResp.Embeddings {
		if err := checkDimension("ollama embed", v, p.dimension); err != nil {
			return nil, err
		}
		vectors[i] = normalizeVector(v)
	}
	return vectors, nil
}

// normalizeVector scales a vector to unit length. Cosine distance over the
// index assumes normalized vectors.
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
