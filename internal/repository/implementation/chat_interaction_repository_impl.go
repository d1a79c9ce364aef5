package implementation

import (
	"context"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/mapper"
	"ai-textbook-be/internal/model"
	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatInteractionRepository(db *gorm.DB) contract.ChatInteractionRepository {
	return &ChatInteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatInteractionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatInteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.ChatInteraction) error {
	modelInteraction, err := r.mapper.ToModel(interaction)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(modelInteraction).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.ToEntity(modelInteraction)
	return nil
}

func (r *ChatInteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatInteraction, error) {
	var modelInteractions []*model.ChatInteraction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelInteractions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelInteractions), nil
}
