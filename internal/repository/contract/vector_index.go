package contract

import (
	"context"
)

// EmbeddingPayload is the metadata stored alongside each vector.
type EmbeddingPayload struct {
	ContentId  string
	ChapterId  string
	TextbookId string
	Title      string
	Text       string
}

// EmbeddingRecord is one vector plus payload, as handed to UpsertBatch.
// Every record's vector length must equal the index's configured dimension;
// a violation fails fast instead of being truncated or padded.
type EmbeddingRecord struct {
	ContentId  string
	ChapterId  string
	TextbookId string
	Title      string
	Text       string
	WordCount  int
	ChunkOrder int
	Vector     []float32
}

// ScoredEmbedding is a search hit with its cosine similarity (higher = more similar).
type ScoredEmbedding struct {
	Id      string
	Score   float64
	Payload EmbeddingPayload
}

// VectorIndex is the similarity-search store over chapter embeddings.
// Implementations must be safe for concurrent ingest and query use; the
// backing store is the authority for any locking.
type VectorIndex interface {
	// Init prepares the backing collection. Idempotent, called once at setup.
	Init(ctx context.Context) error

	// UpsertBatch writes all records in a single batch call, assigning each
	// a fresh unique key.
	UpsertBatch(ctx context.Context, records []EmbeddingRecord) error

	// Search returns up to limit results ordered by descending similarity.
	// A non-empty chapterId restricts results to that exact chapter.
	// limit <= 0 returns an empty result set without error.
	Search(ctx context.Context, vector []float32, chapterId string, limit, offset int) ([]ScoredEmbedding, error)

	// DeleteByContentId removes all records for a content id. Removing a
	// content id with no records is not an error.
	DeleteByContentId(ctx context.Context, contentId string) error

	// DeleteByChapterId removes every record of a chapter. Used before
	// re-ingestion so stale chunks never accumulate.
	DeleteByChapterId(ctx context.Context, chapterId string) error

	// ListChapterIds returns the distinct chapter ids present in the index.
	ListChapterIds(ctx context.Context) ([]string, error)
}
