package implementation

import (
	"context"
	"errors"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/mapper"
	"ai-textbook-be/internal/model"
	"ai-textbook-be/internal/repository/contract"
	"ai-textbook-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PersonalizationMapper
}

func NewBookmarkRepository(db *gorm.DB) contract.BookmarkRepository {
	return &BookmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewPersonalizationMapper(),
	}
}

func (r *BookmarkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	modelBookmark := r.mapper.BookmarkToModel(bookmark)
	if err := r.db.WithContext(ctx).Create(modelBookmark).Error; err != nil {
		return err
	}
	*bookmark = *r.mapper.BookmarkToEntity(modelBookmark)
	return nil
}

func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Bookmark{}).Error
}

func (r *BookmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	var modelBookmark model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelBookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.BookmarkToEntity(&modelBookmark), nil
}

func (r *BookmarkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var modelBookmarks []*model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelBookmarks).Error; err != nil {
		return nil, err
	}

	return r.mapper.BookmarksToEntities(modelBookmarks), nil
}

type ChapterPreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PersonalizationMapper
}

func NewChapterPreferenceRepository(db *gorm.DB) contract.ChapterPreferenceRepository {
	return &ChapterPreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewPersonalizationMapper(),
	}
}

func (r *ChapterPreferenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChapterPreferenceRepositoryImpl) Upsert(ctx context.Context, preference *entity.ChapterPreference) error {
	modelPreference, err := r.mapper.PreferenceToModel(preference)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"preferences", "updated_at"}),
	}).Create(modelPreference).Error
	if err != nil {
		return err
	}
	*preference = *r.mapper.PreferenceToEntity(modelPreference)
	return nil
}

func (r *ChapterPreferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChapterPreference, error) {
	var modelPreference model.ChapterPreference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPreference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.PreferenceToEntity(&modelPreference), nil
}

func (r *ChapterPreferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChapterPreference, error) {
	var modelPreferences []*model.ChapterPreference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPreferences).Error; err != nil {
		return nil, err
	}

	preferences := make([]*entity.ChapterPreference, len(modelPreferences))
	for i, p := range modelPreferences {
		preferences[i] = r.mapper.PreferenceToEntity(p)
	}
	return preferences, nil
}

type ReadingProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PersonalizationMapper
}

func NewReadingProgressRepository(db *gorm.DB) contract.ReadingProgressRepository {
	return &ReadingProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewPersonalizationMapper(),
	}
}

func (r *ReadingProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReadingProgressRepositoryImpl) Upsert(ctx context.Context, progress *entity.ReadingProgress) error {
	modelProgress := r.mapper.ProgressToModel(progress)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "completed", "updated_at"}),
	}).Create(modelProgress).Error
	if err != nil {
		return err
	}
	*progress = *r.mapper.ProgressToEntity(modelProgress)
	return nil
}

func (r *ReadingProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReadingProgress, error) {
	var modelProgress model.ReadingProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProgress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ProgressToEntity(&modelProgress), nil
}

func (r *ReadingProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingProgress, error) {
	var modelProgress []*model.ReadingProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProgress).Error; err != nil {
		return nil, err
	}

	return r.mapper.ProgressToEntities(modelProgress), nil
}
