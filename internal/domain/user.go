package domain

import "time"

// User is the addressable profile behind an opaque user id. Identity itself is
// established outside this service.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Notifiable reports whether u can receive Telegram notifications.
func (u *User) Notifiable() bool {
	return u != nil && u.TelegramChatID != nil
}

type CreateUserInput struct {
	Username       string `validate:"required,min=2,max=64,username"`
	DisplayName    string `validate:"max=200"`
	TelegramChatID *int64 `validate:"omitempty,ne=0"`
}
