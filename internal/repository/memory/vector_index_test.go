package memory

import (
	"context"
	"testing"

	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/pkg/rag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *VectorIndex {
	t.Helper()
	idx := NewVectorIndex(3)
	require.NoError(t, idx.Init(context.Background()))
	return idx
}

func record(contentId, chapterId string, vector []float32) contract.EmbeddingRecord {
	return contract.EmbeddingRecord{
		ContentId: contentId,
		ChapterId: chapterId,
		Title:     "t",
		Text:      "text of " + contentId,
		Vector:    vector,
	}
}

func TestUpsertAndSearchRoundTrip(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{
		record("c1_chunk_0", "c1", []float32{1, 0, 0}),
		record("c1_chunk_1", "c1", []float32{0, 1, 0}),
		record("c2_chunk_0", "c2", []float32{0, 0, 1}),
	}))

	// A query close to the first vector must rank it highest.
	results, err := idx.Search(ctx, []float32{0.9, 0.1, 0}, "", 3, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "c1_chunk_0", results[0].Payload.ContentId)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchChapterFilter(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{
		record("c1_chunk_0", "c1", []float32{1, 0, 0}),
		record("c2_chunk_0", "c2", []float32{1, 0, 0}),
	}))

	results, err := idx.Search(ctx, []float32{1, 0, 0}, "c2", 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c2", results[0].Payload.ChapterId)
}

func TestSearchLimitAndOffset(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{
		record("c1_chunk_0", "c1", []float32{1, 0, 0}),
		record("c1_chunk_1", "c1", []float32{0.9, 0.1, 0}),
		record("c1_chunk_2", "c1", []float32{0, 1, 0}),
	}))

	for _, limit := range []int{0, 1, 2, 5} {
		results, err := idx.Search(ctx, []float32{1, 0, 0}, "", limit, 0)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), limit)
	}

	// limit=0 is a valid request returning nothing.
	results, err := idx.Search(ctx, []float32{1, 0, 0}, "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	// Offset skips the best hit.
	all, err := idx.Search(ctx, []float32{1, 0, 0}, "", 10, 0)
	require.NoError(t, err)
	shifted, err := idx.Search(ctx, []float32{1, 0, 0}, "", 10, 1)
	require.NoError(t, err)
	require.Len(t, shifted, len(all)-1)
	assert.Equal(t, all[1].Payload.ContentId, shifted[0].Payload.ContentId)

	// Offset past the end is empty, not an error.
	past, err := idx.Search(ctx, []float32{1, 0, 0}, "", 10, 50)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestUpsertDimensionMismatch(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	err := idx.UpsertBatch(ctx, []contract.EmbeddingRecord{
		record("c1_chunk_0", "c1", []float32{1, 0}),
	})
	require.Error(t, err)

	var verr *rag.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, idx.Count())
}

func TestDeleteByContentId(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{
		record("c1_chunk_0", "c1", []float32{1, 0, 0}),
		record("c1_chunk_1", "c1", []float32{0, 1, 0}),
	}))

	require.NoError(t, idx.DeleteByContentId(ctx, "c1_chunk_0"))
	assert.Equal(t, 1, idx.Count())

	// Deleting something absent is a no-op.
	require.NoError(t, idx.DeleteByContentId(ctx, "nope"))
	assert.Equal(t, 1, idx.Count())
}

func TestDeleteByChapterIdAndListChapterIds(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	require.NoError(t, idx.UpsertBatch(ctx, []contract.EmbeddingRecord{
		record("c1_chunk_0", "c1", []float32{1, 0, 0}),
		record("c1_chunk_1", "c1", []float32{0, 1, 0}),
		record("c2_chunk_0", "c2", []float32{0, 0, 1}),
	}))

	ids, err := idx.ListChapterIds(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c1", "c2"}, ids)

	require.NoError(t, idx.DeleteByChapterId(ctx, "c1"))
	ids, err = idx.ListChapterIds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, ids)
}
