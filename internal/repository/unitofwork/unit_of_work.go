package unitofwork

import (
	"context"

	"ai-textbook-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TextbookRepository() contract.TextbookRepository
	ChapterRepository() contract.ChapterRepository
	BookmarkRepository() contract.BookmarkRepository
	ChapterPreferenceRepository() contract.ChapterPreferenceRepository
	ReadingProgressRepository() contract.ReadingProgressRepository
	ChatInteractionRepository() contract.ChatInteractionRepository
	VectorIndex() contract.VectorIndex
}
