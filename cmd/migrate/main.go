package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"ai-textbook-be/internal/model"
	"ai-textbook-be/internal/repository/implementation"
	"ai-textbook-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	dimension := 768
	if v, err := strconv.Atoi(os.Getenv("EMBEDDING_DIMENSION")); err == nil && v > 0 {
		dimension = v
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Textbook{},
		&model.Chapter{},
		&model.Bookmark{},
		&model.ChapterPreference{},
		&model.ReadingProgress{},
		&model.ChatInteraction{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Vector Index (owns the content_embeddings table)
	log.Println("Step 3: Initializing vector index...")

	index := implementation.NewContentEmbeddingRepository(db, dimension)
	if err := index.Init(context.Background()); err != nil {
		log.Fatalf("Error: Vector index init failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
