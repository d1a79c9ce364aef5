package mapper

import (
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                 u.Id,
		Name:               u.Name,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		SoftwareBackground: u.SoftwareBackground,
		HardwareBackground: u.HardwareBackground,
		ExperienceLevel:    u.ExperienceLevel,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                 u.Id,
		Name:               u.Name,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		SoftwareBackground: u.SoftwareBackground,
		HardwareBackground: u.HardwareBackground,
		ExperienceLevel:    u.ExperienceLevel,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
