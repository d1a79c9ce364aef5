package embedding

import (
	"context"
	"fmt"

	"ai-textbook-be/pkg/rag"
)

// Provider defines the interface for generating text embeddings.
// Implementations must be safe for concurrent use and must return vectors of
// a constant dimension; a backend handing back a different length is a fatal
// configuration error, never silently truncated or padded.
type Provider interface {
	// EmbedOne generates an embedding for a single text.
	EmbedOne(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for all texts in a single backend
	// call, preserving input order. Never issue one request per text when
	// the backend offers a batch API.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the configured embedding dimension.
	Dimension() int
}

// checkDimension enforces the fixed-dimension invariant shared by all providers.
func checkDimension(op string, vector []float32, want int) error {
	if len(vector) != want {
		return rag.NewEmbeddingError(op, fmt.Errorf("dimension mismatch: got %d, want %d", len(vector), want))
	}
	return nil
}
