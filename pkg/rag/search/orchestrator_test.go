package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"

	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/internal/repository/memory"
	"ai-textbook-be/pkg/rag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider maps text onto a tiny hand-built vocabulary so that rankings
// in tests are predictable. Batch and single paths share one code path, which
// keeps them consistent by construction.
type fakeProvider struct{}

func (f *fakeProvider) Dimension() int { return 4 }

func (f *fakeProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
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

func (f *fakeProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
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

type failingProvider struct{}

func (f *failingProvider) Dimension() int { return 4 }

func (f *failingProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	return nil, rag.NewEmbeddingError("fake", errors.New("backend down"))
}

func (f *failingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, rag.NewEmbeddingError("fake", errors.New("backend down"))
}

func seededIndex(t *testing.T) *memory.VectorIndex {
	t.Helper()
	ctx := context.Background()
	provider := &fakeProvider{}
	idx := memory.NewVectorIndex(provider.Dimension())
	require.NoError(t, idx.Init(ctx))

	texts := map[string][2]string{
		"intro_chunk_0": {"intro", "Physical AI combines AI with physical systems"},
		"intro_chunk_1": {"intro", "It requires sensors and actuators."},
		"ch2_chunk_0":   {"ch2", "Control loops regulate actuator behaviour over time."},
	}
	for contentId, pair := range texts {
		vec, err := provider.EmbedOne(ctx, pair[1])
		require.NoError(t, err)
		require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{{
			ContentId: contentId,
			ChapterId: pair[0],
			Title:     "Chapter " + pair[0],
			Text:      pair[1],
			Vector:    vec,
		}}))
	}
	return idx
}

func TestQueryRanksRelevantChunkFirst(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(&fakeProvider{}, seededIndex(t))

	res, err := o.Query(ctx, "What is Physical AI?", "", 3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	assert.Equal(t, "intro", res.Results[0].ChapterId)
	assert.Contains(t, res.Results[0].Content, "[highlight]Physical[/highlight]")
	assert.GreaterOrEqual(t, res.QueryTimeMs, 0.0)
}

func TestQueryChapterFilterAndLimit(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(&fakeProvider{}, seededIndex(t))

	res, err := o.Query(ctx, "What is Physical AI?", "intro", 1, 0)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "intro", res.Results[0].ChapterId)
}

func TestQueryZeroLimit(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(&fakeProvider{}, seededIndex(t))

	res, err := o.Query(ctx, "anything", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Results)
}

func TestQueryEmptyIndexIsNotAnError(t *testing.T) {
	ctx := context.Background()
	idx := memory.NewVectorIndex(4)
	require.NoError(t, idx.Init(ctx))
	o := NewOrchestrator(&fakeProvider{}, idx)

	res, err := o.Query(ctx, "anything", "", 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestQueryEmbeddingFailureSurfacesError(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(&failingProvider{}, seededIndex(t))

	res, err := o.Query(ctx, "anything", "", 5, 0)
	require.Error(t, err)
	assert.Nil(t, res)

	var perr *rag.ProcessingError
	require.ErrorAs(t, err, &perr)
	var eerr *rag.EmbeddingError
	assert.ErrorAs(t, err, &eerr)
}

func TestUntitledFallback(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{}
	idx := memory.NewVectorIndex(provider.Dimension())
	require.NoError(t, idx.Init(ctx))

	vec, err := provider.EmbedOne(ctx, "some text")
	require.NoError(t, err)
	require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{{
		ContentId: "c1_chunk_0",
		ChapterId: "c1",
		Text:      "some text",
		Vector:    vec,
	}}))

	res, err := NewOrchestrator(provider, idx).Query(ctx, "some text", "", 1, 0)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Untitled", res.Results[0].Title)
}

// recordingProvider captures the exact text handed to EmbedOne.
type recordingProvider struct {
	fakeProvider
	lastQuery string
}

func (r *recordingProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	r.lastQuery = text
	return r.fakeProvider.EmbedOne(ctx, text)
}

func TestQueryNormalizesTextBeforeEmbedding(t *testing.T) {
	ctx := context.Background()
	provider := &recordingProvider{}
	o := NewOrchestrator(provider, seededIndex(t))

	res, err := o.Query(ctx, "  What   IS Physical\tAI? ", "", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, "what is physical ai?", provider.lastQuery)

	// Highlighting still works off the raw query text.
	require.NotEmpty(t, res.Results)
	assert.Contains(t, res.Results[0].Content, "[highlight]")
}

func TestRetrieveNormalizesTextBeforeEmbedding(t *testing.T) {
	ctx := context.Background()
	provider := &recordingProvider{}
	o := NewOrchestrator(provider, seededIndex(t))

	_, err := o.Retrieve(ctx, "SENSORS  and\nactuators", "", 3)
	require.NoError(t, err)
	assert.Equal(t, "sensors and actuators", provider.lastQuery)
}

func TestBatchSingleConsistency(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{}
	texts := []string{"Physical AI", "sensors everywhere", "plain words"}

	batch, err := provider.EmbedBatch(ctx, texts)
	require.NoError(t, err)
	require.Len(t, batch, len(texts))

	for i, text := range texts {
		single, err := provider.EmbedOne(ctx, text)
		require.NoError(t, err)
		assert.InDeltaSlice(t, single, batch[i], 1e-6)
	}
}
