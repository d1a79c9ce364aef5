package mapper

import (
	"encoding/json"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/model"

	"gorm.io/datatypes"
)

type PersonalizationMapper struct{}

func NewPersonalizationMapper() *PersonalizationMapper {
	return &PersonalizationMapper{}
}

func (m *PersonalizationMapper) BookmarkToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}
	return &entity.Bookmark{
		Id:        b.Id,
		UserId:    b.UserId,
		ChapterId: b.ChapterId,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}

func (m *PersonalizationMapper) BookmarkToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}
	return &model.Bookmark{
		Id:        b.Id,
		UserId:    b.UserId,
		ChapterId: b.ChapterId,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}

func (m *PersonalizationMapper) BookmarksToEntities(bookmarks []*model.Bookmark) []*entity.Bookmark {
	entities := make([]*entity.Bookmark, len(bookmarks))
	for i, b := range bookmarks {
		entities[i] = m.BookmarkToEntity(b)
	}
	return entities
}

func (m *PersonalizationMapper) PreferenceToEntity(p *model.ChapterPreference) *entity.ChapterPreference {
	if p == nil {
		return nil
	}

	preferences := map[string]interface{}{}
	if len(p.Preferences) > 0 {
		_ = json.Unmarshal(p.Preferences, &preferences)
	}

	return &entity.ChapterPreference{
		Id:          p.Id,
		UserId:      p.UserId,
		ChapterId:   p.ChapterId,
		Preferences: preferences,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PersonalizationMapper) PreferenceToModel(p *entity.ChapterPreference) (*model.ChapterPreference, error) {
	if p == nil {
		return nil, nil
	}

	preferences := p.Preferences
	if preferences == nil {
		preferences = map[string]interface{}{}
	}
	raw, err := json.Marshal(preferences)
	if err != nil {
		return nil, err
	}

	return &model.ChapterPreference{
		Id:          p.Id,
		UserId:      p.UserId,
		ChapterId:   p.ChapterId,
		Preferences: datatypes.JSON(raw),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (m *PersonalizationMapper) ProgressToEntity(p *model.ReadingProgress) *entity.ReadingProgress {
	if p == nil {
		return nil
	}
	return &entity.ReadingProgress{
		Id:        p.Id,
		UserId:    p.UserId,
		ChapterId: p.ChapterId,
		Position:  p.Position,
		Completed: p.Completed,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PersonalizationMapper) ProgressToModel(p *entity.ReadingProgress) *model.ReadingProgress {
	if p == nil {
		return nil
	}
	return &model.ReadingProgress{
		Id:        p.Id,
		UserId:    p.UserId,
		ChapterId: p.ChapterId,
		Position:  p.Position,
		Completed: p.Completed,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PersonalizationMapper) ProgressToEntities(progress []*model.ReadingProgress) []*entity.ReadingProgress {
	entities := make([]*entity.ReadingProgress, len(progress))
	for i, p := range progress {
		entities[i] = m.ProgressToEntity(p)
	}
	return entities
}
