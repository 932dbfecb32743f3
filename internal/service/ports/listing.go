package ports

import (
	"context"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

type ListingRepo interface {
	// Create is idempotent per booking: a second listing for the same
	// booking is ignored.
	Create(ctx context.Context, l *domain.Listing) error
	DeleteByBooking(ctx context.Context, bookingID string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Listing, error)
}
