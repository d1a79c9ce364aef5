package ingest

import (
	"context"

	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/rag"
	"ai-textbook-be/pkg/rag/chunk"
)

// Pipeline runs the ingestion half of the retrieval pipeline: chunk the
// chapter, embed all chunks in one batched call, and write the records to
// the vector index. Re-ingesting a chapter first clears its old records so
// stale chunks never accumulate.
type Pipeline struct {
	provider  embedding.Provider
	index     contract.VectorIndex
	maxLength int
}

func NewPipeline(provider embedding.Provider, index contract.VectorIndex, maxLength int) *Pipeline {
	if maxLength <= 0 {
		maxLength = 1000
	}
	return &Pipeline{
		provider:  provider,
		index:     index,
		maxLength: maxLength,
	}
}

// IngestChapter processes a chapter into the vector index and returns the
// number of chunks written. Any step failure fails the whole ingestion; the
// error names the step and chapter for diagnosis.
func (p *Pipeline) IngestChapter(ctx context.Context, chapterId, content, chapterTitle, textbookId string) (int, error) {
	chunks := chunk.ProcessChapter(chapterId, content, chapterTitle, textbookId, p.maxLength)
	if len(chunks) == 0 {
		// Nothing to embed; still clear any previous records for the chapter.
		if err := p.index.DeleteByChapterId(ctx, chapterId); err != nil {
			return 0, rag.NewProcessingError("ingest delete stale", chapterId, err)
		}
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	// One batched provider call for the whole chapter, never per chunk.
	vectors, err := p.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, rag.NewProcessingError("ingest embed batch", chapterId, err)
	}
	if len(vectors) != len(chunks) {
		return 0, rag.NewProcessingError("ingest embed batch", chapterId,
			rag.NewValidationError("got %d vectors for %d chunks", len(vectors), len(chunks)))
	}

	records := make([]contract.EmbeddingRecord, len(chunks))
	for i, c := range chunks {
		records[i] = contract.EmbeddingRecord{
			ContentId:  c.ContentId,
			ChapterId:  c.ChapterId,
			TextbookId: c.TextbookId,
			Title:      c.Title,
			Text:       c.Text,
			WordCount:  c.Metadata.WordCount,
			ChunkOrder: c.Metadata.ChunkNumber,
			Vector:     vectors[i],
		}
	}

	if err := p.index.DeleteByChapterId(ctx, chapterId); err != nil {
		return 0, rag.NewProcessingError("ingest delete stale", chapterId, err)
	}

	if err := p.index.UpsertBatch(ctx, records); err != nil {
		return 0, rag.NewProcessingError("ingest upsert", chapterId, err)
	}

	return len(records), nil
}
