package mapper

import (
	"encoding/json"

	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.ChatInteraction) *entity.ChatInteraction {
	if c == nil {
		return nil
	}

	var sources []string
	if len(c.Sources) > 0 {
		_ = json.Unmarshal(c.Sources, &sources)
	}

	return &entity.ChatInteraction{
		Id:              c.Id,
		UserId:          c.UserId,
		ChapterId:       c.ChapterId,
		Question:        c.Question,
		Answer:          c.Answer,
		Sources:         sources,
		ConfidenceScore: c.ConfidenceScore,
		IsAccurate:      c.IsAccurate,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.ChatInteraction) (*model.ChatInteraction, error) {
	if c == nil {
		return nil, nil
	}

	sources := c.Sources
	if sources == nil {
		sources = []string{}
	}
	raw, err := json.Marshal(sources)
	if err != nil {
		return nil, err
	}

	return &model.ChatInteraction{
		Id:              c.Id,
		UserId:          c.UserId,
		ChapterId:       c.ChapterId,
		Question:        c.Question,
		Answer:          c.Answer,
		Sources:         datatypes.JSON(raw),
		ConfidenceScore: c.ConfidenceScore,
		IsAccurate:      c.IsAccurate,
		CreatedAt:       c.CreatedAt,
	}, nil
}

func (m *ChatMapper) ToEntities(interactions []*model.ChatInteraction) []*entity.ChatInteraction {
	entities := make([]*entity.ChatInteraction, len(interactions))
	for i, c := range interactions {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
