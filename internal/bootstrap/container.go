package bootstrap

import (
	"context"
	"log"

	"ai-textbook-be/internal/config"
	"ai-textbook-be/internal/controller"
	"ai-textbook-be/internal/pkg/logger"
	"ai-textbook-be/internal/pkg/mailer"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/internal/service"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/embedding/jina"
	"ai-textbook-be/pkg/llm/factory"
	pktNats "ai-textbook-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController            controller.IAuthController
	TextbookController        controller.ITextbookController
	SearchController          controller.ISearchController
	ChatController            controller.IChatController
	PersonalizationController controller.IPersonalizationController
	ContentController         controller.IContentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared Facades
	SysLogger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db, cfg.Ai.EmbeddingDimension)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
			cfg.Ai.EmbeddingDimension,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewProvider(cfg.Keys.Jina, cfg.Ai.EmbeddingDimension)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingDimension)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		cfg.Ai.MaxChunkLength,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	textbookService := service.NewTextbookService(uowFactory)
	contentService := service.NewContentService(uowFactory, publisherService, natsPub, embeddingProvider, cfg.Ai.MaxChunkLength)
	searchService := service.NewSearchService(uowFactory, embeddingProvider, rdb, sysLogger)
	chatService := service.NewChatService(uowFactory, embeddingProvider, llmProvider, sysLogger)
	personalizationService := service.NewPersonalizationService(uowFactory)
	translationService := service.NewTranslationService(llmProvider, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:            controller.NewAuthController(authService),
		TextbookController:        controller.NewTextbookController(textbookService),
		SearchController:          controller.NewSearchController(searchService),
		ChatController:            controller.NewChatController(chatService),
		PersonalizationController: controller.NewPersonalizationController(personalizationService, translationService),
		ContentController:         controller.NewContentController(contentService),

		ConsumerService: consumerService,
		SysLogger:       sysLogger,
	}
}
