package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-textbook-be/internal/model"
	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/pkg/rag"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ContentEmbeddingRepositoryImpl implements contract.VectorIndex on top of
// Postgres with the pgvector extension.
type ContentEmbeddingRepositoryImpl struct {
	db        *gorm.DB
	dimension int
}

func NewContentEmbeddingRepository(db *gorm.DB, dimension int) contract.VectorIndex {
	return &ContentEmbeddingRepositoryImpl{
		db:        db,
		dimension: dimension,
	}
}

// Init ensures the vector extension and the embeddings table exist. The
// embedding column is sized from the configured dimension, so the table is
// created with explicit DDL instead of AutoMigrate. Safe to call when the
// table already exists.
func (r *ContentEmbeddingRepositoryImpl) Init(ctx context.Context) error {
	statements := append([]string{"CREATE EXTENSION IF NOT EXISTS vector"}, embeddingsTableDDL(r.dimension)...)
	for _, stmt := range statements {
		if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return rag.NewProcessingError("vector index init", "", err)
		}
	}
	return nil
}

func embeddingsTableDDL(dimension int) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS content_embeddings (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			content_id varchar(255) NOT NULL,
			chapter_id varchar(255) NOT NULL,
			textbook_id varchar(255),
			title varchar(512),
			document text,
			embedding_value vector(%d),
			metadata jsonb,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`, dimension),
		"CREATE INDEX IF NOT EXISTS idx_content_embeddings_content_id ON content_embeddings (content_id)",
		"CREATE INDEX IF NOT EXISTS idx_content_embeddings_chapter_id ON content_embeddings (chapter_id)",
		"CREATE INDEX IF NOT EXISTS idx_content_embeddings_textbook_id ON content_embeddings (textbook_id)",
	}
}

func (r *ContentEmbeddingRepositoryImpl) UpsertBatch(ctx context.Context, records []contract.EmbeddingRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]*model.ContentEmbedding, len(records))
	for i, rec := range records {
		if len(rec.Vector) != r.dimension {
			return rag.NewValidationError(
				"record %s has vector dimension %d, index expects %d",
				rec.ContentId, len(rec.Vector), r.dimension,
			)
		}

		metadata, err := json.Marshal(map[string]interface{}{
			"chapter_order": rec.ChunkOrder,
			"chunk_number":  rec.ChunkOrder,
			"word_count":    rec.WordCount,
		})
		if err != nil {
			return rag.NewProcessingError("upsert batch", rec.ContentId, err)
		}

		models[i] = &model.ContentEmbedding{
			Id:             uuid.New(),
			ContentId:      rec.ContentId,
			ChapterId:      rec.ChapterId,
			TextbookId:     rec.TextbookId,
			Title:          rec.Title,
			Document:       rec.Text,
			EmbeddingValue: pgvector.NewVector(rec.Vector),
			Metadata:       metadata,
		}
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return rag.NewProcessingError("upsert batch", records[0].ChapterId, err)
	}
	return nil
}

func (r *ContentEmbeddingRepositoryImpl) Search(ctx context.Context, vector []float32, chapterId string, limit, offset int) ([]contract.ScoredEmbedding, error) {
	if limit <= 0 {
		return []contract.ScoredEmbedding{}, nil
	}
	if len(vector) != r.dimension {
		return nil, rag.NewValidationError(
			"query vector dimension %d, index expects %d", len(vector), r.dimension,
		)
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so we select
	// 1 - (embedding_value <=> query) as the similarity score.
	type row struct {
		model.ContentEmbedding
		Similarity float64
	}
	var rows []row

	queryVector := pgvector.NewVector(vector)

	query := r.db.WithContext(ctx).
		Table("content_embeddings").
		Select("content_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector)

	if chapterId != "" {
		query = query.Where("chapter_id = ?", chapterId)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, rag.NewProcessingError("vector search", chapterId, err)
	}

	results := make([]contract.ScoredEmbedding, len(rows))
	for i, rw := range rows {
		results[i] = contract.ScoredEmbedding{
			Id:    rw.Id.String(),
			Score: rw.Similarity,
			Payload: contract.EmbeddingPayload{
				ContentId:  rw.ContentId,
				ChapterId:  rw.ChapterId,
				TextbookId: rw.TextbookId,
				Title:      rw.Title,
				Text:       rw.Document,
			},
		}
	}
	return results, nil
}

func (r *ContentEmbeddingRepositoryImpl) DeleteByContentId(ctx context.Context, contentId string) error {
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentId).
		Delete(&model.ContentEmbedding{}).Error
	if err != nil {
		return rag.NewProcessingError("delete by content id", contentId, err)
	}
	return nil
}

func (r *ContentEmbeddingRepositoryImpl) DeleteByChapterId(ctx context.Context, chapterId string) error {
	err := r.db.WithContext(ctx).
		Where("chapter_id = ?", chapterId).
		Delete(&model.ContentEmbedding{}).Error
	if err != nil {
		return rag.NewProcessingError("delete by chapter id", chapterId, err)
	}
	return nil
}

func (r *ContentEmbeddingRepositoryImpl) ListChapterIds(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.ContentEmbedding{}).
		Distinct("chapter_id").
		Pluck("chapter_id", &ids).Error
	if err != nil {
		return nil, rag.NewProcessingError("list chapter ids", "", err)
	}
	return ids, nil
}
