package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini string
	Jina         string
	HuggingFace  string
	EmbedTopic   string // Chapter embedding topic
}

type AIConfig struct {
	EmbeddingProvider  string // "gemini", "ollama" or "jina"
	EmbeddingDimension int
	MaxChunkLength     int
	OllamaBaseURL      string
	OllamaModel        string
	LLMProvider        string // "ollama" or "huggingface"
	LLMModel           string // e.g. "llama3", "qwen2.5"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "AI Textbook"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Jina:         getEnv("JINA_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
			EmbedTopic:   getEnv("EMBED_CHAPTER_CONTENT_TOPIC_NAME", "EMBED_CHAPTER_CONTENT"),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "gemini"),
			EmbeddingDimension: getEnvAsInt("EMBEDDING_DIMENSION", 768),
			MaxChunkLength:     getEnvAsInt("MAX_CHUNK_LENGTH", 1000),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:        getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:        getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:           getEnv("LLM_MODEL", "llama3"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
