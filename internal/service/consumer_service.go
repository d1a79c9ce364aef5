package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/rag/ingest"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	maxChunkLength    int
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	maxChunkLength int,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		maxChunkLength:    maxChunkLength,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChapterMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing chapter embedding for ChapterId: %s", payload.ChapterId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: payload.ChapterId})
	if err != nil {
		log.Printf("[ERROR] Failed to get chapter %s: %v", payload.ChapterId, err)
		msg.Nack()
		return
	}
	if chapter == nil {
		log.Printf("[ERROR] Chapter not found: %s", payload.ChapterId)
		msg.Ack() // Chapter deleted? Ack.
		return
	}

	pipeline := ingest.NewPipeline(cs.embeddingProvider, uow.VectorIndex(), cs.maxChunkLength)
	stored, err := pipeline.IngestChapter(ctx, chapter.Id, chapter.Content, chapter.Title, chapter.TextbookId)
	if err != nil {
		log.Printf("[ERROR] Failed to ingest chapter %s: %v", payload.ChapterId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Chapter processed: %d chunks for ChapterId: %s", stored, payload.ChapterId)
	msg.Ack()
}
