package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Question  string `json:"question" validate:"required"`
	ChapterId string `json:"chapter_id"`
}

type ChatSource struct {
	ContentId string  `json:"content_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
}

type ChatResponse struct {
	Id              uuid.UUID    `json:"id"`
	Answer          string       `json:"answer"`
	Sources         []ChatSource `json:"sources"`
	ConfidenceScore float64      `json:"confidence_score"`
	IsAccurate      bool         `json:"is_accurate"`
	Issues          []string     `json:"issues,omitempty"`
	Suggestions     []string     `json:"suggestions,omitempty"`
}

type ChatHistoryItem struct {
	Id              uuid.UUID `json:"id"`
	ChapterId       string    `json:"chapter_id"`
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	ConfidenceScore float64   `json:"confidence_score"`
	IsAccurate      bool      `json:"is_accurate"`
	CreatedAt       time.Time `json:"created_at"`
}
