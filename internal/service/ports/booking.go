package ports

import (
	"context"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

// BookingRepo is the booking record store. Every method is atomic per row.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Update writes only the set slots of patch. It returns
	// domain.ErrStaleBooking when the guards of patch no longer match.
	Update(ctx context.Context, id string, patch domain.BookingPatch) error
	// Delete removes the booking together with its attachments and change
	// history. It returns domain.ErrStaleBooking when the stored status is no
	// longer expect.
	Delete(ctx context.Context, id string, expect domain.BookingStatus) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListPublishedWithoutListing(ctx context.Context, limit int) ([]*domain.Booking, error)
	CountPublishedByConcept(ctx context.Context, conceptID string) (int, error)
	AddAttachment(ctx context.Context, a *domain.Attachment, patch domain.BookingPatch) error
	ListAttachments(ctx context.Context, bookingID string) ([]*domain.Attachment, error)
	ListChanges(ctx context.Context, bookingID string) ([]*domain.BookingChange, error)
}
