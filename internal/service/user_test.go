package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestUserService_Create_Success(t *testing.T) {
	svc, repo := newUserService(t)

	chatID := int64(12345)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "ola.nordmann" && u.ID != ""
	})).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:       "  Ola.Nordmann ",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "ola.nordmann", user.Username)
	assert.Equal(t, "ola.nordmann", user.DisplayName)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.Equal(t, svc.now(), user.CreatedAt)
	assert.True(t, user.Notifiable())
}

func TestUserService_Create_DisplayName(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:    "bluebar",
		DisplayName: "  Blue Bar ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Blue Bar", user.DisplayName)
	assert.False(t, user.Notifiable())
}

func TestUserService_Create_Invalid(t *testing.T) {
	zero := int64(0)
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{name: "empty username", input: domain.CreateUserInput{Username: "  "}},
		{name: "too short", input: domain.CreateUserInput{Username: "a"}},
		{name: "spaces inside", input: domain.CreateUserInput{Username: "ola nordmann"}},
		{name: "leading dot", input: domain.CreateUserInput{Username: ".ola"}},
		{name: "zero chat id", input: domain.CreateUserInput{Username: "ola", TelegramChatID: &zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(t)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "Taken"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Contains(t, err.Error(), `"taken"`)
}

func TestUserService_GetByID(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	user, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil).Once()
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	dbErr := errors.New("db error")
	repo.EXPECT().List(mock.Anything).Return(nil, dbErr).Once()
	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
