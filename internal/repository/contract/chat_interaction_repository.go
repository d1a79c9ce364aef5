package contract

import (
	"context"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/repository/specification"
)

type ChatInteractionRepository interface {
	Create(ctx context.Context, interaction *entity.ChatInteraction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatInteraction, error)
}
