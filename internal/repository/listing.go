package repository

import (
	"context"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the listing unless the booking already has one.
func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, booking_id, receiver_id, title, description, event_date,
			                      start_time, end_time, venue, address, ticket_price, audience_estimate,
			                      published_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  ON CONFLICT (booking_id) DO NOTHING`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		l.ID, l.BookingID, l.ReceiverID, l.Title, l.Description, l.EventDate,
		l.StartTime, l.EndTime, l.Venue, l.Address, l.TicketPrice, l.AudienceEstimate,
		l.PublishedAt, l.CreatedAt,
	)
	if err != nil {
		return persistence("insert listing", err)
	}

	return nil
}

func (r *ListingRepository) DeleteByBooking(ctx context.Context, bookingID string) error {
	query := `DELETE FROM listings WHERE booking_id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID); err != nil {
		return persistence("delete listing", err)
	}
	return nil
}

func (r *ListingRepository) List(ctx context.Context, limit, offset int) ([]*domain.Listing, error) {
	query := `SELECT id, booking_id, receiver_id, title, description, event_date,
			         start_time, end_time, venue, address, ticket_price, audience_estimate,
			         published_at, created_at
			  FROM listings
			  ORDER BY published_at DESC, id
			  LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit, offset)
	if err != nil {
		return nil, persistence("list listings", err)
	}
	defer rows.Close()

	res := make([]*domain.Listing, 0, limit)
	for rows.Next() {
		var l domain.Listing
		if err = rows.Scan(
			&l.ID, &l.BookingID, &l.ReceiverID, &l.Title, &l.Description, &l.EventDate,
			&l.StartTime, &l.EndTime, &l.Venue, &l.Address, &l.TicketPrice, &l.AudienceEstimate,
			&l.PublishedAt, &l.CreatedAt,
		); err != nil {
			return nil, persistence("scan listing", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}
