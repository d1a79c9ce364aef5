package implementation

import (
	"context"
	"errors"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/mapper"
	"ai-textbook-be/internal/model"
	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TextbookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TextbookMapper
}

func NewTextbookRepository(db *gorm.DB) contract.TextbookRepository {
	return &TextbookRepositoryImpl{
		db:     db,
		mapper: mapper.NewTextbookMapper(),
	}
}

func (r *TextbookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TextbookRepositoryImpl) Create(ctx context.Context, textbook *entity.Textbook) error {
	modelTextbook := r.mapper.ToModel(textbook)
	if err := r.db.WithContext(ctx).Create(modelTextbook).Error; err != nil {
		return err
	}
	*textbook = *r.mapper.ToEntity(modelTextbook)
	return nil
}

func (r *TextbookRepositoryImpl) Update(ctx context.Context, textbook *entity.Textbook) error {
	modelTextbook := r.mapper.ToModel(textbook)
	if err := r.db.WithContext(ctx).Save(modelTextbook).Error; err != nil {
		return err
	}
	*textbook = *r.mapper.ToEntity(modelTextbook)
	return nil
}

func (r *TextbookRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Textbook{}).Error
}

func (r *TextbookRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Textbook, error) {
	var modelTextbook model.Textbook
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTextbook).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelTextbook), nil
}

func (r *TextbookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Textbook, error) {
	var modelTextbooks []*model.Textbook
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTextbooks).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelTextbooks), nil
}
