package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTextbookId filters chapters by their parent textbook
type ByTextbookId struct {
	TextbookId string
}

func (s ByTextbookId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("textbook_id = ?", s.TextbookId)
}

// ByChapterId filters bookmarks, progress and chat rows by chapter
type ByChapterId struct {
	ChapterId string
}

func (s ByChapterId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chapter_id = ?", s.ChapterId)
}

// ByUserId filters user-owned rows
type ByUserId struct {
	UserId uuid.UUID
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
