package service

import (
	"context"
	"fmt"
	"strings"

	"joiefull/internal/model"
	"joiefull/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// GetByID retrieves a single user by id.
func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", id).Msg("failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// Create creates a new user.
func (s *userService) Create(ctx context.Context, name, picture string) (*model.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name is required")
	}

	user := &model.User{Name: name, Picture: picture}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
