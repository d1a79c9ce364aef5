package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/events"
	pktNats "ai-textbook-be/pkg/nats"
	"ai-textbook-be/pkg/rag"
	"ai-textbook-be/pkg/rag/ingest"
)

type IContentService interface {
	CreateTextbook(ctx context.Context, req *dto.CreateTextbookRequest) (*dto.TextbookResponse, error)
	UpsertChapter(ctx context.Context, req *dto.UpsertChapterRequest) (*dto.UpsertChapterResponse, error)
	DeleteChapter(ctx context.Context, id string) error
	ReindexChapter(ctx context.Context, id string) (*dto.ReindexChapterResponse, error)
}

type contentService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	eventPublisher    *pktNats.Publisher
	embeddingProvider embedding.Provider
	maxChunkLength    int
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	embeddingProvider embedding.Provider,
	maxChunkLength int,
) IContentService {
	return &contentService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		eventPublisher:    eventPublisher,
		embeddingProvider: embeddingProvider,
		maxChunkLength:    maxChunkLength,
	}
}

func (s *contentService) CreateTextbook(ctx context.Context, req *dto.CreateTextbookRequest) (*dto.TextbookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TextbookRepository().FindOne(ctx, specification.ByKey{Key: req.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("textbook id already exists")
	}

	textbook := &entity.Textbook{
		Id:          req.Id,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := uow.TextbookRepository().Create(ctx, textbook); err != nil {
		return nil, err
	}

	return &dto.TextbookResponse{
		Id:          textbook.Id,
		Title:       textbook.Title,
		Description: textbook.Description,
		CreatedAt:   textbook.CreatedAt,
		UpdatedAt:   textbook.UpdatedAt,
	}, nil
}

func (s *contentService) UpsertChapter(ctx context.Context, req *dto.UpsertChapterRequest) (*dto.UpsertChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	textbook, err := uow.TextbookRepository().FindOne(ctx, specification.ByKey{Key: req.TextbookId})
	if err != nil {
		return nil, err
	}
	if textbook == nil {
		return nil, rag.NewNotFoundError("textbook", req.TextbookId)
	}

	existing, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: req.Id})
	if err != nil {
		return nil, err
	}

	eventType := "CHAPTER_CREATED"
	if existing != nil {
		now := time.Now()
		existing.TextbookId = req.TextbookId
		existing.Title = req.Title
		existing.Content = req.Content
		existing.Order = req.Order
		existing.UpdatedAt = &now
		if err := uow.ChapterRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		eventType = "CHAPTER_UPDATED"
	} else {
		chapter := &entity.Chapter{
			Id:         req.Id,
			TextbookId: req.TextbookId,
			Title:      req.Title,
			Content:    req.Content,
			Order:      req.Order,
			CreatedAt:  time.Now(),
		}
		if err := uow.ChapterRepository().Create(ctx, chapter); err != nil {
			return nil, err
		}
	}

	if err := s.queueEmbedding(ctx, req.Id); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"chapter_id":  req.Id,
				"textbook_id": req.TextbookId,
				"title":       req.Title,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
		}
	}

	return &dto.UpsertChapterResponse{Id: req.Id}, nil
}

func (s *contentService) DeleteChapter(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: id})
	if err != nil {
		return err
	}
	if chapter == nil {
		return rag.NewNotFoundError("chapter", id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChapterRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.VectorIndex().DeleteByChapterId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// ReindexChapter runs the ingest pipeline synchronously so the caller gets
// the chunk count back. Regular chapter writes use the async queue instead.
func (s *contentService) ReindexChapter(ctx context.Context, id string) (*dto.ReindexChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: id})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, rag.NewNotFoundError("chapter", id)
	}

	pipeline := ingest.NewPipeline(s.embeddingProvider, uow.VectorIndex(), s.maxChunkLength)
	stored, err := pipeline.IngestChapter(ctx, chapter.Id, chapter.Content, chapter.Title, chapter.TextbookId)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "CHAPTER_INGESTED",
			Data: map[string]interface{}{
				"chapter_id":  chapter.Id,
				"textbook_id": chapter.TextbookId,
				"chunks":      stored,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish CHAPTER_INGESTED event: %v\n", err)
		}
	}

	return &dto.ReindexChapterResponse{ChapterId: id, Chunks: stored}, nil
}

func (s *contentService) queueEmbedding(ctx context.Context, chapterId string) error {
	payload := dto.PublishEmbedChapterMessage{ChapterId: chapterId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}
