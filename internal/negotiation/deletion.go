package negotiation

import (
	"fmt"
	"strings"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

// RemovalKind names the user gesture that asks for a booking to go away.
type RemovalKind string

const (
	// RemovalReject is the receiver declining a pending request.
	RemovalReject RemovalKind = "reject"
	// RemovalCancel is either party withdrawing from a booking.
	RemovalCancel RemovalKind = "cancel"
)

// Confirmation carries the user's confirmation gesture.
type Confirmation struct {
	// Acknowledged is the simple "are you sure" confirmation.
	Acknowledged bool
	// Title must repeat the booking title to remove a booking that is
	// already public.
	Title string
}

// Removal is the decision of the deletion policy. Every path deletes the row
// permanently; the cancelled status is never written.
type Removal struct {
	Kind RemovalKind
	// WasPublic is set when third parties may have seen the booking and its
	// public listing must be withdrawn as well.
	WasPublic bool
}

// DecideRemoval applies the deletion policy for a removal requested by actor.
func DecideRemoval(b *domain.Booking, actor domain.Party, kind RemovalKind, c Confirmation) (Removal, error) {
	r := Removal{Kind: kind}

	switch kind {
	case RemovalReject:
		if b.Status != domain.BookingStatusPending {
			return r, invalid("reject", b.Status)
		}
		if actor != domain.PartyReceiver {
			return r, fmt.Errorf("%w: only the receiver can reject a request", domain.ErrNotAuthorized)
		}
		return r, nil

	case RemovalCancel:
		switch {
		case b.Status == domain.BookingStatusPending,
			IsNegotiating(b.Status),
			b.Status == domain.BookingStatusCancelled:
			if !c.Acknowledged {
				return r, fmt.Errorf("%w: cancelling must be acknowledged", domain.ErrConfirmationRequired)
			}
			return r, nil
		case IsPublished(b.Status):
			if !c.Acknowledged || !titleMatches(b.Title, c.Title) {
				return r, fmt.Errorf("%w: repeat the booking title to delete a published booking", domain.ErrConfirmationRequired)
			}
			r.WasPublic = true
			return r, nil
		default:
			return r, invalid("cancel", b.Status)
		}

	default:
		return r, fmt.Errorf("%w: unknown removal %q", domain.ErrValidation, kind)
	}
}

func titleMatches(want, got string) bool {
	want = strings.TrimSpace(want)
	return want != "" && strings.EqualFold(want, strings.TrimSpace(got))
}
