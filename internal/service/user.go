package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports"
	"github.com/google/uuid"
)

// UserService keeps the profiles that bookings and notifications are
// addressed to.
type UserService struct {
	repo ports.UserRepo
	now  func() time.Time
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{
		repo: repo,
		now:  utcNow,
	}
}

// Create registers a profile. Usernames are stored lowercased, so "Ola" and
// "ola" collide; the display name falls back to the username.
func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if err := negotiation.Validate(input); err != nil {
		return nil, err
	}
	if input.DisplayName == "" {
		input.DisplayName = input.Username
	}

	user := &domain.User{
		ID:             uuid.NewString(),
		Username:       input.Username,
		DisplayName:    input.DisplayName,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
