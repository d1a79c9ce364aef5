package model

import (
	"time"
)

type Textbook struct {
	Id          string    `gorm:"type:varchar(255);primaryKey"`
	Title       string    `gorm:"type:varchar(512);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time
}

func (Textbook) TableName() string {
	return "textbooks"
}

type Chapter struct {
	Id         string    `gorm:"type:varchar(255);primaryKey"`
	TextbookId string    `gorm:"type:varchar(255);not null;index"`
	Title      string    `gorm:"type:varchar(512);not null"`
	Content    string    `gorm:"type:text"`
	Order      int       `gorm:"column:chapter_order;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  *time.Time
}

func (Chapter) TableName() string {
	return "chapters"
}
