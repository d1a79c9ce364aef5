package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/pkg/logger"
	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/llm"
	"ai-textbook-be/pkg/rag/search"
	"ai-textbook-be/pkg/rag/validate"

	"github.com/google/uuid"
)

const chatContextLimit = 5

type IChatService interface {
	Ask(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatHistoryItem, error)
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	llmProvider       llm.LLMProvider
	log               logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		log:               log,
	}
}

func (s *chatService) Ask(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	orchestrator := search.NewOrchestrator(s.embeddingProvider, uow.VectorIndex())

	hits, err := orchestrator.Retrieve(ctx, req.Question, req.ChapterId, chatContextLimit)
	if err != nil {
		return nil, err
	}

	var answer string
	if len(hits) == 0 {
		answer = "I could not find anything about that in the textbook. Try rephrasing the question or asking about another chapter."
	} else {
		answer, err = s.llmProvider.Chat(ctx, s.buildPrompt(req.Question, hits), llm.WithTemperature(0.2))
		if err != nil {
			return nil, err
		}
	}

	report := validate.ResponseAccuracy(answer, req.Question, hits)

	sources := make([]dto.ChatSource, len(hits))
	sourceIds := make([]string, len(hits))
	for i, hit := range hits {
		sources[i] = dto.ChatSource{
			ContentId: hit.Payload.ContentId,
			Title:     hit.Payload.Title,
			Score:     hit.Score,
		}
		sourceIds[i] = hit.Payload.ContentId
	}

	interaction := &entity.ChatInteraction{
		Id:              uuid.New(),
		UserId:          userId,
		ChapterId:       req.ChapterId,
		Question:        req.Question,
		Answer:          answer,
		Sources:         sourceIds,
		ConfidenceScore: report.ConfidenceScore,
		IsAccurate:      report.IsAccurate,
		CreatedAt:       time.Now(),
	}

	// History is best effort, the answer is already computed.
	if err := uow.ChatInteractionRepository().Create(ctx, interaction); err != nil {
		s.log.Warn("chat", "failed to persist interaction", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	return &dto.ChatResponse{
		Id:              interaction.Id,
		Answer:          answer,
		Sources:         sources,
		ConfidenceScore: report.ConfidenceScore,
		IsAccurate:      report.IsAccurate,
		Issues:          report.Issues,
		Suggestions:     report.Suggestions,
	}, nil
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatHistoryItem, error) {
	if limit <= 0 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	interactions, err := uow.ChatInteractionRepository().FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ChatHistoryItem, len(interactions))
	for i, it := range interactions {
		items[i] = &dto.ChatHistoryItem{
			Id:              it.Id,
			ChapterId:       it.ChapterId,
			Question:        it.Question,
			Answer:          it.Answer,
			ConfidenceScore: it.ConfidenceScore,
			IsAccurate:      it.IsAccurate,
			CreatedAt:       it.CreatedAt,
		}
	}
	return items, nil
}

func (s *chatService) buildPrompt(question string, hits []contract.ScoredEmbedding) []llm.Message {
	var sb strings.Builder
	for i, hit := range hits {
		sb.WriteString(fmt.Sprintf("[%d] %s\n%s\n\n", i+1, hit.Payload.Title, hit.Payload.Text))
	}

	system := "You are a study assistant for a textbook. Answer using ONLY the excerpts below. " +
		"If the excerpts do not contain the answer, say you don't know. Do not invent facts.\n\n" +
		"Excerpts:\n" + sb.String()

	return []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: question},
	}
}
