package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-textbook-be/pkg/rag"
)

// GeminiProvider generates embeddings via the Gemini text-embedding-004 API.
type GeminiProvider struct {
	apiKey    string
	model     string
	dimension int
	client    *http.Client
}

func NewGeminiProvider(apiKey string, dimension int) *GeminiProvider {
	if dimension <= 0 {
		dimension = 768 // text-embedding-004 default
	}
	return &GeminiProvider{
		apiKey:    apiKey,
		model:     "text-embedding-004",
		dimension: dimension,
		client:    &http.Client{},
	}
}

type geminiContentPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiContentPart `json:"parts"`
}

type geminiEmbedRequest struct {
	Model   string        `json:"model"`
	Content geminiContent `json:"content"`
}

type geminiEmbedding struct {
	Values []float32 `json:"values"`
}

type geminiEmbedResponse struct {
	Embedding geminiEmbedding `json:"embedding"`
}

type geminiBatchRequest struct {
	Requests []geminiEmbedRequest `json:"requests"`
}

type geminiBatchResponse struct {
	Embeddings []geminiEmbedding `json:"embeddings"`
}

func (p *GeminiProvider) Dimension() int {
	return p.dimension
}

func (p *GeminiProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	body := geminiEmbedRequest{
		Model:   "models/" + p.model,
		Content: geminiContent{Parts: []geminiContentPart{{Text: text}}},
	}

	var res geminiEmbedResponse
	if err := p.post(ctx, "embedContent", body, &res); err != nil {
		return nil, rag.NewEmbeddingError("gemini embedContent", err)
	}

	if err := checkDimension("gemini embedContent", res.Embedding.Values, p.dimension); err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}

func (p *GeminiProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batch := geminiBatchRequest{Requests: make([]geminiEmbedRequest, len(texts))}
	for i, text := range texts {
		batch.Requests[i] = geminiEmbedRequest{
			Model:   "models/" + p.model,
			Content: geminiContent{Parts: []geminiContentPart{{Text: text}}},
		}
	}

	var res geminiBatchResponse
	if err := p.post(ctx, "batchEmbedContents", batch, &res); err != nil {
		return nil, rag.NewEmbeddingError("gemini batchEmbedContents", err)
	}

	if len(res.Embeddings) != len(texts) {
		return nil, rag.NewEmbeddingError("gemini batchEmbedContents",
			fmt.Errorf("got %d embeddings for %d inputs", len(res.Embeddings), len(texts)))
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		if err := checkDimension("gemini batchEmbedContents", e.Values, p.dimension); err != nil {
			return nil, err
		}
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (p *GeminiProvider) post(ctx context.Context, method string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:%s",
		p.model, method,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("gemini response code %d, body %s", res.StatusCode, string(resBytes))
	}

	return json.Unmarshal(resBytes, out)
}
