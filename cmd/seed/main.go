package main

import (
	"context"
	"log"
	"time"

	"ai-textbook-be/internal/config"
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/database"
	"ai-textbook-be/pkg/embedding"
	"ai-textbook-be/pkg/embedding/jina"
	"ai-textbook-be/pkg/rag/ingest"

	"github.com/fatih/color"
)

type seedChapter struct {
	id      string
	title   string
	order   int
	content string
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db, cfg.Ai.EmbeddingDimension)
	uow := uowFactory.NewUnitOfWork(ctx)

	color.Cyan("Seeding demo textbook...")

	textbookId := "physical-ai"
	existing, err := uow.TextbookRepository().FindOne(ctx, specification.ByKey{Key: textbookId})
	if err != nil {
		log.Fatal("Error: Failed to check textbook:", err)
	}
	if existing == nil {
		textbook := &entity.Textbook{
			Id:          textbookId,
			Title:       "Physical AI",
			Description: "An introduction to AI systems that operate in the physical world.",
			CreatedAt:   time.Now(),
		}
		if err := uow.TextbookRepository().Create(ctx, textbook); err != nil {
			log.Fatal("Error: Failed to create textbook:", err)
		}
		color.Green("Created textbook %q", textbookId)
	} else {
		color.Yellow("Textbook %q already exists, updating chapters", textbookId)
	}

	chapters := []seedChapter{
		{
			id:    "intro",
			title: "Introduction to Physical AI",
			order: 1,
			content: "Physical AI is the study of intelligent systems that sense and act in the " +
				"physical world. Unlike purely digital AI, these systems use sensors to perceive " +
				"their environment and actuators to change it. Robots are the most familiar " +
				"example, but the field also covers autonomous vehicles, smart factories, and " +
				"adaptive prosthetics.",
		},
		{
			id:    "sensors",
			title: "Sensing the World",
			order: 2,
			content: "Sensors convert physical quantities into signals a machine can process. " +
				"Cameras capture light, microphones capture sound, and inertial measurement units " +
				"capture motion. Sensor fusion combines several imperfect readings into one more " +
				"reliable estimate of the world state.",
		},
		{
			id:    "actuators",
			title: "Acting on the World",
			order: 3,
			content: "Actuators turn decisions into motion. Electric motors drive wheels and " +
				"joints, while pneumatic and hydraulic systems deliver large forces. Control " +
				"loops close the gap between intended and actual movement, correcting for " +
				"friction, load, and wear.",
		},
	}

	for _, c := range chapters {
		existing, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: c.id})
		if err != nil {
			log.Fatal("Error: Failed to check chapter:", err)
		}
		if existing != nil {
			now := time.Now()
			existing.Title = c.title
			existing.Content = c.content
			existing.Order = c.order
			existing.UpdatedAt = &now
			if err := uow.ChapterRepository().Update(ctx, existing); err != nil {
				log.Fatal("Error: Failed to update chapter:", err)
			}
		} else {
			chapter := &entity.Chapter{
				Id:         c.id,
				TextbookId: textbookId,
				Title:      c.title,
				Content:    c.content,
				Order:      c.order,
				CreatedAt:  time.Now(),
			}
			if err := uow.ChapterRepository().Create(ctx, chapter); err != nil {
				log.Fatal("Error: Failed to create chapter:", err)
			}
		}
		color.Green("Upserted chapter %q", c.id)
	}

	color.Cyan("Embedding seeded chapters...")

	var provider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, cfg.Ai.EmbeddingDimension)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		provider = jina.NewProvider(cfg.Keys.Jina, cfg.Ai.EmbeddingDimension)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingDimension)
	}

	pipeline := ingest.NewPipeline(provider, uow.VectorIndex(), cfg.Ai.MaxChunkLength)
	for _, c := range chapters {
		stored, err := pipeline.IngestChapter(ctx, c.id, c.content, c.title, textbookId)
		if err != nil {
			color.Red("Failed to embed chapter %q: %v", c.id, err)
			continue
		}
		color.Green("Embedded chapter %q (%d chunks)", c.id, stored)
	}

	color.Cyan("Seed complete.")
}
