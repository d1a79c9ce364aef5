package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string

	// Learning background, used to personalize content.
	SoftwareBackground string
	HardwareBackground string
	ExperienceLevel    string

	CreatedAt time.Time
	UpdatedAt *time.Time
}
