package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/pkg/mailer"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/events"
	pktNats "ai-textbook-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:                 uuid.New(),
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		SoftwareBackground: req.SoftwareBackground,
		HardwareBackground: req.HardwareBackground,
		ExperienceLevel:    req.ExperienceLevel,
		CreatedAt:          time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "USER_REGISTERED",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
		}
	}

	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, user.Name); emailErr != nil {
			fmt.Printf("Error sending welcome email: %v\n", emailErr)
		}
	}()

	return &dto.RegisterResponse{Id: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed}, nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return &dto.UserProfileResponse{
		Id:                 user.Id,
		Name:               user.Name,
		Email:              user.Email,
		SoftwareBackground: user.SoftwareBackground,
		HardwareBackground: user.HardwareBackground,
		ExperienceLevel:    user.ExperienceLevel,
		CreatedAt:          user.CreatedAt,
	}, nil
}
