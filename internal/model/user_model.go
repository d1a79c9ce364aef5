package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	SoftwareBackground string    `gorm:"type:varchar(255)"`
	HardwareBackground string    `gorm:"type:varchar(255)"`
	ExperienceLevel    string    `gorm:"type:varchar(64)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          *time.Time
}

func (User) TableName() string {
	return "users"
}
