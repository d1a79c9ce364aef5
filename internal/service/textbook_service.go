package service

import (
	"context"
	"fmt"
	"time"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/rag"

	gocache "github.com/patrickmn/go-cache"
)

type ITextbookService interface {
	List(ctx context.Context) ([]*dto.TextbookResponse, error)
	Show(ctx context.Context, id string) (*dto.TextbookDetailResponse, error)
	ShowChapter(ctx context.Context, id string) (*dto.ChapterResponse, error)
}

type textbookService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewTextbookService(uowFactory unitofwork.RepositoryFactory) ITextbookService {
	return &textbookService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *textbookService) List(ctx context.Context) ([]*dto.TextbookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	textbooks, err := uow.TextbookRepository().FindAll(ctx, specification.OrderBy{Field: "title"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TextbookResponse, len(textbooks))
	for i, t := range textbooks {
		res[i] = &dto.TextbookResponse{
			Id:          t.Id,
			Title:       t.Title,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
	}
	return res, nil
}

func (s *textbookService) Show(ctx context.Context, id string) (*dto.TextbookDetailResponse, error) {
	cacheKey := fmt.Sprintf("textbook:%s", id)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.TextbookDetailResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	textbook, err := uow.TextbookRepository().FindOne(ctx, specification.ByKey{Key: id})
	if err != nil {
		return nil, err
	}
	if textbook == nil {
		return nil, rag.NewNotFoundError("textbook", id)
	}

	chapters, err := uow.ChapterRepository().FindAll(ctx,
		specification.ByTextbookId{TextbookId: id},
		specification.OrderBy{Field: "chapter_order"},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ChapterSummary, len(chapters))
	for i, c := range chapters {
		summaries[i] = dto.ChapterSummary{
			Id:    c.Id,
			Title: c.Title,
			Order: c.Order,
		}
	}

	res := &dto.TextbookDetailResponse{
		Id:          textbook.Id,
		Title:       textbook.Title,
		Description: textbook.Description,
		Chapters:    summaries,
	}

	s.cache.Set(cacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *textbookService) ShowChapter(ctx context.Context, id string) (*dto.ChapterResponse, error) {
	cacheKey := fmt.Sprintf("chapter:%s", id)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ChapterResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: id})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, rag.NewNotFoundError("chapter", id)
	}

	res := &dto.ChapterResponse{
		Id:         chapter.Id,
		TextbookId: chapter.TextbookId,
		Title:      chapter.Title,
		Content:    chapter.Content,
		Order:      chapter.Order,
		CreatedAt:  chapter.CreatedAt,
		UpdatedAt:  chapter.UpdatedAt,
	}

	s.cache.Set(cacheKey, res, gocache.DefaultExpiration)
	return res, nil
}
