package ports

import (
	"context"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

// BookingNotifier is a fire-and-forget sink. Implementations log their own
// failures; callers never wait on them.
type BookingNotifier interface {
	Notify(ctx context.Context, recipient *domain.User, n domain.Notification)
}

// EventPublisher fans booking changes out to live subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.BookingEvent)
}
