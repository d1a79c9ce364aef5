package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/pkg/rag"

	"github.com/google/uuid"
)

type storedRecord struct {
	id      string
	vector  []float32
	payload contract.EmbeddingPayload
}

// VectorIndex is an in-memory brute-force cosine similarity index. Used by
// tests and local development in place of the pgvector-backed repository.
type VectorIndex struct {
	mu        sync.RWMutex
	dimension int
	records   []storedRecord
}

func NewVectorIndex(dimension int) *VectorIndex {
	return &VectorIndex{dimension: dimension}
}

func (s *VectorIndex) Init(ctx context.Context) error {
	if s.dimension <= 0 {
		return rag.NewValidationError("invalid index dimension %d", s.dimension)
	}
	return nil
}

func (s *VectorIndex) UpsertBatch(ctx context.Context, records []contract.EmbeddingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		if len(rec.Vector) != s.dimension {
			return rag.NewValidationError(
				"record %s has vector dimension %d, index expects %d",
				rec.ContentId, len(rec.Vector), s.dimension,
			)
		}
	}

	for _, rec := range records {
		vec := make([]float32, len(rec.Vector))
		copy(vec, rec.Vector)
		s.records = append(s.records, storedRecord{
			id:     uuid.NewString(),
			vector: vec,
			payload: contract.EmbeddingPayload{
				ContentId:  rec.ContentId,
				ChapterId:  rec.ChapterId,
				TextbookId: rec.TextbookId,
				Title:      rec.Title,
				Text:       rec.Text,
			},
		})
	}
	return nil
}

func (s *VectorIndex) Search(ctx context.Context, vector []float32, chapterId string, limit, offset int) ([]contract.ScoredEmbedding, error) {
	if limit <= 0 {
		return []contract.ScoredEmbedding{}, nil
	}
	if len(vector) != s.dimension {
		return nil, rag.NewValidationError(
			"query vector dimension %d, index expects %d", len(vector), s.dimension,
		)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []contract.ScoredEmbedding
	for _, rec := range s.records {
		if chapterId != "" && rec.payload.ChapterId != chapterId {
			continue
		}
		hits = append(hits, contract.ScoredEmbedding{
			Id:      rec.id,
			Score:   cosineSimilarity(vector, rec.vector),
			Payload: rec.payload,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if offset >= len(hits) {
		return []contract.ScoredEmbedding{}, nil
	}
	hits = hits[offset:]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *VectorIndex) DeleteByContentId(ctx context.Context, contentId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.payload.ContentId != contentId {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return nil
}

func (s *VectorIndex) DeleteByChapterId(ctx context.Context, chapterId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.payload.ChapterId != chapterId {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return nil
}

func (s *VectorIndex) ListChapterIds(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var ids []string
	for _, rec := range s.records {
		if _, ok := seen[rec.payload.ChapterId]; ok {
			continue
		}
		seen[rec.payload.ChapterId] = struct{}{}
		ids = append(ids, rec.payload.ChapterId)
	}
	return ids, nil
}

// Count reports the number of stored records. Handy for tests.
func (s *VectorIndex) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
