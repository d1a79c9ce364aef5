package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"

	"ai-textbook-be/internal/repository/memory"
	"ai-textbook-be/pkg/rag"
	"ai-textbook-be/pkg/rag/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider is a deterministic bag-of-words embedder that records how
// many batch calls were issued.
type countingProvider struct {
	batchCalls int
}

func (f *countingProvider) Dimension() int { return 4 }

func (f *countingProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vec := []float32{0, 0, 0, 0}
	for _, token := range strings.Fields(strings.ToLower(text)) {
		word := strings.TrimFunc(token, func(r rune) bool { return !unicode.IsLetter(r) })
		switch word {
		case "physical":
			vec[0]++
		case "ai":
			vec[1]++
		case "sensors":
			vec[2]++
		default:
			vec[3]++
		}
	}
	return vec, nil
}

func (f *countingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.batchCalls++
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.EmbedOne(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

type failingBatchProvider struct {
	countingProvider
}

func (f *failingBatchProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, rag.NewEmbeddingError("fake", errors.New("backend down"))
}

const introText = "Physical AI combines AI with physical systems. It requires sensors and actuators."

func TestIngestChapter(t *testing.T) {
	ctx := context.Background()
	provider := &countingProvider{}
	idx := memory.NewVectorIndex(provider.Dimension())
	require.NoError(t, idx.Init(ctx))

	p := NewPipeline(provider, idx, 50)

	count, err := p.IngestChapter(ctx, "intro", introText, "Introduction", "physical-ai")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, idx.Count())
	assert.Equal(t, 1, provider.batchCalls, "ingestion must embed the whole chapter in one batch call")
}

func TestIngestChapterIsReplayable(t *testing.T) {
	ctx := context.Background()
	provider := &countingProvider{}
	idx := memory.NewVectorIndex(provider.Dimension())
	require.NoError(t, idx.Init(ctx))

	p := NewPipeline(provider, idx, 50)

	_, err := p.IngestChapter(ctx, "intro", introText, "Introduction", "physical-ai")
	require.NoError(t, err)
	_, err = p.IngestChapter(ctx, "intro", introText, "Introduction", "physical-ai")
	require.NoError(t, err)

	// Re-ingestion replaces records instead of accumulating duplicates.
	assert.Equal(t, 2, idx.Count())
}

func TestIngestEmptyChapter(t *testing.T) {
	ctx := context.Background()
	provider := &countingProvider{}
	idx := memory.NewVectorIndex(provider.Dimension())
	require.NoError(t, idx.Init(ctx))

	p := NewPipeline(provider, idx, 50)

	count, err := p.IngestChapter(ctx, "empty", "   ", "Empty", "tb")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, provider.batchCalls)
}

func TestIngestEmbeddingFailure(t *testing.T) {
	ctx := context.Background()
	provider := &failingBatchProvider{}
	idx := memory.NewVectorIndex(4)
	require.NoError(t, idx.Init(ctx))

	p := NewPipeline(provider, idx, 50)

	count, err := p.IngestChapter(ctx, "intro", introText, "Introduction", "tb")
	require.Error(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, idx.Count(), "no partial writes on embedding failure")

	var perr *rag.ProcessingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "ingest embed batch", perr.Op)
	assert.Equal(t, "intro", perr.Id)
}

func TestIngestThenQueryEndToEnd(t *testing.T) {
	ctx := context.Background()
	provider := &countingProvider{}
	idx := memory.NewVectorIndex(provider.Dimension())
	require.NoError(t, idx.Init(ctx))

	p := NewPipeline(provider, idx, 50)
	count, err := p.IngestChapter(ctx, "intro", introText, "Introduction", "physical-ai")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	o := search.NewOrchestrator(provider, idx)
	res, err := o.Query(ctx, "What is Physical AI?", "intro", 1, 0)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "intro", res.Results[0].ChapterId)
	assert.Equal(t, "physical-ai", res.Results[0].TextbookId)
}
