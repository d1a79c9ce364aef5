package search

import (
	"context"
	"time"

	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/rag"
	"ai-textbook-be/pkg/rag/chunk"
)

// Result is one display-ready search hit.
type Result struct {
	Id         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	ChapterId  string  `json:"chapter_id"`
	TextbookId string  `json:"textbook_id"`
}

// QueryResult is the response of one semantic query.
type QueryResult struct {
	Results     []Result `json:"results"`
	Total       int      `json:"total"`
	QueryTimeMs float64  `json:"query_time_ms"`
}

// Orchestrator runs the query half of the retrieval pipeline: embed the
// query, search the vector index, format and highlight the hits.
type Orchestrator struct {
	provider embedding.Provider
	index    contract.VectorIndex
}

func NewOrchestrator(provider embedding.Provider, index contract.VectorIndex) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		index:    index,
	}
}

// Query performs a semantic search. The query text is normalized before
// embedding; the raw text is kept for highlighting. An empty chapterId
// searches the whole index. An error is distinct from zero matches: zero
// matches is a valid successful outcome.
func (o *Orchestrator) Query(ctx context.Context, queryText, chapterId string, limit, offset int) (*QueryResult, error) {
	start := time.Now()

	queryVector, err := o.provider.EmbedOne(ctx, chunk.PreprocessForSearch(queryText))
	if err != nil {
		return nil, rag.NewProcessingError("query embedding", chapterId, err)
	}

	hits, err := o.index.Search(ctx, queryVector, chapterId, limit, offset)
	if err != nil {
		return nil, rag.NewProcessingError("vector search", chapterId, err)
	}

	results := make([]Result, len(hits))
	for i, hit := range hits {
		title := hit.Payload.Title
		if title == "" {
			title = "Untitled"
		}
		results[i] = Result{
			Id:         hit.Id,
			Title:      title,
			Content:    Highlight(hit.Payload.Text, queryText),
			Score:      hit.Score,
			ChapterId:  hit.Payload.ChapterId,
			TextbookId: hit.Payload.TextbookId,
		}
	}

	return &QueryResult{
		Results:     results,
		Total:       len(results),
		QueryTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}

// Retrieve returns the raw scored hits without display formatting. The chat
// pipeline uses this to build prompt context and validation input.
func (o *Orchestrator) Retrieve(ctx context.Context, queryText, chapterId string, limit int) ([]contract.ScoredEmbedding, error) {
	queryVector, err := o.provider.EmbedOne(ctx, chunk.PreprocessForSearch(queryText))
	if err != nil {
		return nil, rag.NewProcessingError("query embedding", chapterId, err)
	}

	hits, err := o.index.Search(ctx, queryVector, chapterId, limit, 0)
	if err != nil {
		return nil, rag.NewProcessingError("vector search", chapterId, err)
	}
	return hits, nil
}
