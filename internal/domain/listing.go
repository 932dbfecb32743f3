package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is the public marketplace projection of a published booking. It is
// a snapshot taken at publish time, not a live view of the booking.
type Listing struct {
	ID               string              `json:"id"`
	BookingID        string              `json:"booking_id"`
	ReceiverID       string              `json:"receiver_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	EventDate        *time.Time          `json:"event_date"`
	StartTime        string              `json:"start_time"`
	EndTime          string              `json:"end_time"`
	Venue            string              `json:"venue"`
	Address          string              `json:"address"`
	TicketPrice      decimal.NullDecimal `json:"ticket_price"`
	AudienceEstimate *int                `json:"audience_estimate"`
	PublishedAt      time.Time           `json:"published_at"`
	CreatedAt        time.Time           `json:"created_at"`
}

// NewListingSnapshot copies the public fields of b into a listing.
func NewListingSnapshot(id string, b *Booking, now time.Time) *Listing {
	l := &Listing{
		ID:          id,
		BookingID:   b.ID,
		ReceiverID:  b.ReceiverID,
		Title:       b.Title,
		Description: b.Description,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Venue:       b.Venue,
		Address:     b.Address,
		TicketPrice: b.Pricing.TicketPrice,
		PublishedAt: now,
		CreatedAt:   now,
	}
	if b.EventDate != nil {
		d := *b.EventDate
		l.EventDate = &d
	}
	if b.AudienceEstimate != nil {
		a := *b.AudienceEstimate
		l.AudienceEstimate = &a
	}
	if b.PublishedAt != nil {
		l.PublishedAt = *b.PublishedAt
	}
	return l
}
