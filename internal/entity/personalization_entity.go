package entity

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ChapterId string
	Note      string
	CreatedAt time.Time
}

// ChapterPreference stores per-user, per-chapter reading preferences as a
// free-form key/value document.
type ChapterPreference struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ChapterId   string
	Preferences map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReadingProgress tracks how far a user has read into a chapter.
// Position is a fraction in [0,1].
type ReadingProgress struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ChapterId string
	Position  float64
	Completed bool
	UpdatedAt time.Time
}
