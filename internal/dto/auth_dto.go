package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	SoftwareBackground string `json:"software_background"`
	HardwareBackground string `json:"hardware_background"`
	ExperienceLevel    string `json:"experience_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type RegisterResponse struct {
	Id uuid.UUID `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UserProfileResponse struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	SoftwareBackground string    `json:"software_background"`
	HardwareBackground string    `json:"hardware_background"`
	ExperienceLevel    string    `json:"experience_level"`
	CreatedAt          time.Time `json:"created_at"`
}
