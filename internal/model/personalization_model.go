package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Bookmark struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_bookmarks_user_chapter"`
	ChapterId string    `gorm:"type:varchar(255);not null;index:idx_bookmarks_user_chapter"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

type ChapterPreference struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_preferences_user_chapter"`
	ChapterId   string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_preferences_user_chapter"`
	Preferences datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (ChapterPreference) TableName() string {
	return "chapter_preferences"
}

type ReadingProgress struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_chapter"`
	ChapterId string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_progress_user_chapter"`
	Position  float64   `gorm:"default:0"`
	Completed bool      `gorm:"default:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}
