package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/logger"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/rag/search"

	"github.com/redis/go-redis/v9"
)

const (
	defaultSearchLimit = 5
	searchCacheTTL     = 5 * time.Minute
)

type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	rdb               *redis.Client
	log               logger.ILogger
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	rdb *redis.Client,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		rdb:               rdb,
		log:               log,
	}
}

func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	cacheKey := s.cacheKey(req.Query, req.ChapterId, limit, req.Offset)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		cached.Cached = true
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orchestrator := search.NewOrchestrator(s.embeddingProvider, uow.VectorIndex())

	result, err := orchestrator.Query(ctx, req.Query, req.ChapterId, limit, req.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SearchResultItem, len(result.Results))
	for i, r := range result.Results {
		items[i] = dto.SearchResultItem{
			Id:         r.Id,
			Title:      r.Title,
			Content:    r.Content,
			Score:      r.Score,
			ChapterId:  r.ChapterId,
			TextbookId: r.TextbookId,
		}
	}

	res := &dto.SearchResponse{
		Results:     items,
		Total:       result.Total,
		QueryTimeMs: result.QueryTimeMs,
	}

	s.toCache(ctx, cacheKey, res)
	return res, nil
}

func (s *searchService) cacheKey(query, chapterId string, limit, offset int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%d", query, chapterId, limit, offset)))
	return "search:" + hex.EncodeToString(sum[:])
}

// fromCache returns nil on any cache failure so search still works
// when Redis is down.
func (s *searchService) fromCache(ctx context.Context, key string) *dto.SearchResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("search", "cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
	var res dto.SearchResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil
	}
	return &res
}

func (s *searchService) toCache(ctx context.Context, key string, res *dto.SearchResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, searchCacheTTL).Err(); err != nil {
		s.log.Warn("search", "cache write failed", map[string]interface{}{"error": err.Error()})
	}
}
