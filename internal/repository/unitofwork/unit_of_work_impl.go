package unitofwork

import (
	"context"
	"fmt"

	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db        *gorm.DB
	tx        *gorm.DB
	dimension int
}

func NewUnitOfWork(db *gorm.DB, embeddingDimension int) UnitOfWork {
	return &UnitOfWorkImpl{
		db:        db,
		dimension: embeddingDimension,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TextbookRepository() contract.TextbookRepository {
	return implementation.NewTextbookRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChapterRepository() contract.ChapterRepository {
	return implementation.NewChapterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookmarkRepository() contract.BookmarkRepository {
	return implementation.NewBookmarkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChapterPreferenceRepository() contract.ChapterPreferenceRepository {
	return implementation.NewChapterPreferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReadingProgressRepository() contract.ReadingProgressRepository {
	return implementation.NewReadingProgressRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatInteractionRepository() contract.ChatInteractionRepository {
	return implementation.NewChatInteractionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VectorIndex() contract.VectorIndex {
	return implementation.NewContentEmbeddingRepository(u.getDB(), u.dimension)
}
