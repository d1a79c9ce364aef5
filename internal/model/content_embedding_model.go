package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ContentEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContentId      string          `gorm:"type:varchar(255);not null;index"`
	ChapterId      string          `gorm:"type:varchar(255);not null;index"`
	TextbookId     string          `gorm:"type:varchar(255);index"`
	Title          string          `gorm:"type:varchar(512)"`
	Document       string          `gorm:"type:text"`
	// The column type is vector(n) where n is the configured embedding
	// dimension; the table DDL lives in the repository's Init.
	EmbeddingValue pgvector.Vector `gorm:"column:embedding_value"`
	Metadata       datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (ContentEmbedding) TableName() string {
	return "content_embeddings"
}
