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

type ChapterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TextbookMapper
}

func NewChapterRepository(db *gorm.DB) contract.ChapterRepository {
	return &ChapterRepositoryImpl{
		db:     db,
		mapper: mapper.NewTextbookMapper(),
	}
}

func (r *ChapterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChapterRepositoryImpl) Create(ctx context.Context, chapter *entity.Chapter) error {
	modelChapter := r.mapper.ChapterToModel(chapter)
	if err := r.db.WithContext(ctx).Create(modelChapter).Error; err != nil {
		return err
	}
	*chapter = *r.mapper.ChapterToEntity(modelChapter)
	return nil
}

func (r *ChapterRepositoryImpl) Update(ctx context.Context, chapter *entity.Chapter) error {
	modelChapter := r.mapper.ChapterToModel(chapter)
	if err := r.db.WithContext(ctx).Save(modelChapter).Error; err != nil {
		return err
	}
	*chapter = *r.mapper.ChapterToEntity(modelChapter)
	return nil
}

func (r *ChapterRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Chapter{}).Error
}

func (r *ChapterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chapter, error) {
	var modelChapter model.Chapter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelChapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ChapterToEntity(&modelChapter), nil
}

func (r *ChapterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chapter, error) {
	var modelChapters []*model.Chapter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelChapters).Error; err != nil {
		return nil, err
	}

	return r.mapper.ChaptersToEntities(modelChapters), nil
}
