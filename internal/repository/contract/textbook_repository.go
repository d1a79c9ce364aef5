package contract

import (
	"context"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/repository/specification"
)

type TextbookRepository interface {
	Create(ctx context.Context, textbook *entity.Textbook) error
	Update(ctx context.Context, textbook *entity.Textbook) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Textbook, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Textbook, error)
}

type ChapterRepository interface {
	Create(ctx context.Context, chapter *entity.Chapter) error
	Update(ctx context.Context, chapter *entity.Chapter) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chapter, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chapter, error)
}
