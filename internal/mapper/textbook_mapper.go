package mapper

import (
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/model"
)

type TextbookMapper struct{}

func NewTextbookMapper() *TextbookMapper {
	return &TextbookMapper{}
}

func (m *TextbookMapper) ToEntity(t *model.Textbook) *entity.Textbook {
	if t == nil {
		return nil
	}
	return &entity.Textbook{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TextbookMapper) ToModel(t *entity.Textbook) *model.Textbook {
	if t == nil {
		return nil
	}
	return &model.Textbook{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TextbookMapper) ToEntities(textbooks []*model.Textbook) []*entity.Textbook {
	entities := make([]*entity.Textbook, len(textbooks))
	for i, t := range textbooks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TextbookMapper) ChapterToEntity(c *model.Chapter) *entity.Chapter {
	if c == nil {
		return nil
	}
	return &entity.Chapter{
		Id:         c.Id,
		TextbookId: c.TextbookId,
		Title:      c.Title,
		Content:    c.Content,
		Order:      c.Order,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *TextbookMapper) ChapterToModel(c *entity.Chapter) *model.Chapter {
	if c == nil {
		return nil
	}
	return &model.Chapter{
		Id:         c.Id,
		TextbookId: c.TextbookId,
		Title:      c.Title,
		Content:    c.Content,
		Order:      c.Order,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *TextbookMapper) ChaptersToEntities(chapters []*model.Chapter) []*entity.Chapter {
	entities := make([]*entity.Chapter, len(chapters))
	for i, c := range chapters {
		entities[i] = m.ChapterToEntity(c)
	}
	return entities
}
