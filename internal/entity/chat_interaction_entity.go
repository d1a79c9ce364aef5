package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatInteraction is one question/answer exchange, stored for history and
// for auditing answer groundedness.
type ChatInteraction struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	ChapterId       string
	Question        string
	Answer          string
	Sources         []string
	ConfidenceScore float64
	IsAccurate      bool
	CreatedAt       time.Time
}
