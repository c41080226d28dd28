package services

import (
	"CarePulse/models"
	"CarePulse/repositories"
	"CarePulse/utils"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type UserService struct {
	repository repositories.UserRepository
}

func NewUserService(repository repositories.UserRepository) *UserService {
	return &UserService{repository: repository}
}

// CreateUser onboards a user. An existing user with the same email is
// returned as is, so a returning patient lands on the same account.
func (s *UserService) CreateUser(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))
	if err := utils.ValidateCreateUser(params); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetByEmail(ctx, params.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := &models.User{
		ID:    uuid.New().String(),
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
	}
	if err := s.repository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns ErrNotFound for an unknown id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
