package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatInteraction struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	ChapterId       string         `gorm:"type:varchar(255);index"`
	Question        string         `gorm:"type:text;not null"`
	Answer          string         `gorm:"type:text"`
	Sources         datatypes.JSON `gorm:"type:jsonb"`
	ConfidenceScore float64        `gorm:"default:0"`
	IsAccurate      bool           `gorm:"default:true"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (ChatInteraction) TableName() string {
	return "chat_interactions"
}
