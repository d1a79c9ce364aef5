package contract

import (
	"context"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error)
}

type ChapterPreferenceRepository interface {
	// Upsert writes by (user, chapter), inserting or replacing the stored
	// preference document.
	Upsert(ctx context.Context, preference *entity.ChapterPreference) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChapterPreference, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChapterPreference, error)
}

type ReadingProgressRepository interface {
	// Upsert writes by (user, chapter), inserting or replacing the row.
	Upsert(ctx context.Context, progress *entity.ReadingProgress) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReadingProgress, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingProgress, error)
}
