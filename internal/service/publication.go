package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const retryBatchSize = 50

// PublicationPipeline moves an approved booking to its public status and
// projects it into the marketplace. Every step is idempotent: the status
// write is guarded by the expected status and the listing insert is unique
// per booking, so a failed run can simply be repeated.
type PublicationPipeline struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	flow        negotiation.Flow
	logger      logger.Logger

	now func() time.Time
}

type PublishOutcome struct {
	Booking   *domain.Booking
	Actor     domain.Party
	Completed bool
	Noop      bool
}

func NewPublicationPipeline(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	flow negotiation.Flow,
	logger logger.Logger,
) *PublicationPipeline {
	return &PublicationPipeline{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		flow:        flow,
		logger:      logger,
		now:         utcNow,
	}
}

// Publish records userID's publish request. If the status write succeeded
// but the listing could not be created, the outcome is returned together
// with domain.ErrListingDeferred.
func (p *PublicationPipeline) Publish(ctx context.Context, id, userID string) (*PublishOutcome, error) {
	var (
		out *PublishOutcome
		err error
	)
	for attempt := 1; attempt <= 2; attempt++ {
		out, err = p.advance(ctx, id, userID)
		if err == nil || !domain.IsRetryable(err) {
			break
		}
		p.logger.Warn("publish attempt failed",
			logger.String("booking_id", id),
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("publish booking: %w", err)
	}

	// The counterpart may have published between our read and our write.
	if !out.Completed && !out.Noop {
		if again, err := p.advance(ctx, id, userID); err == nil && again.Completed {
			out.Booking, out.Completed = again.Booking, true
		}
	}

	if !out.Completed || !out.Booking.IsPublicAfterApproval {
		return out, nil
	}
	if _, err = p.project(ctx, out.Booking); err != nil {
		p.logger.Error("listing creation deferred",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
		return out, fmt.Errorf("%w: %w", domain.ErrListingDeferred, err)
	}
	return out, nil
}

func (p *PublicationPipeline) advance(ctx context.Context, id, userID string) (*PublishOutcome, error) {
	b, err := p.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	actor, err := b.PartyOf(userID)
	if err != nil {
		return nil, err
	}

	res, err := negotiation.Publish(b, actor, p.flow, p.now())
	if err != nil {
		return nil, err
	}
	out := &PublishOutcome{Booking: b, Actor: actor, Noop: res.Noop}
	if res.Noop {
		return out, nil
	}

	if err = p.bookingRepo.Update(ctx, id, res.Patch); err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	out.Booking = b.Clone()
	res.Patch.Apply(out.Booking)
	out.Completed = res.Completed
	return out, nil
}

// project inserts the listing snapshot, retrying a store failure once.
func (p *PublicationPipeline) project(ctx context.Context, b *domain.Booking) (*domain.Listing, error) {
	listing := domain.NewListingSnapshot(uuid.New().String(), b, p.now())

	err := p.listingRepo.Create(ctx, listing)
	if err != nil && domain.IsRetryable(err) {
		err = p.listingRepo.Create(ctx, listing)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info("listing created",
		logger.String("booking_id", b.ID),
		logger.String("listing_id", listing.ID),
	)
	return listing, nil
}

// RetryPendingListings creates the missing listings of public bookings
// whose projection failed earlier.
func (p *PublicationPipeline) RetryPendingListings(ctx context.Context) ([]*domain.Listing, error) {
	bookings, err := p.bookingRepo.ListPublishedWithoutListing(ctx, retryBatchSize)
	if err != nil {
		return nil, fmt.Errorf("list bookings without listing: %w", err)
	}

	var (
		created []*domain.Listing
		errs    []error
	)
	for _, b := range bookings {
		l, err := p.project(ctx, b)
		if err != nil {
			p.logger.Error("failed to create listing",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			errs = append(errs, err)
			continue
		}
		created = append(created, l)
	}

	if len(created) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return created, nil
}

// Withdraw removes the listing of a deleted booking. Failures are only
// logged since the booking row is already gone.
func (p *PublicationPipeline) Withdraw(ctx context.Context, bookingID string) {
	if err := p.listingRepo.DeleteByBooking(ctx, bookingID); err != nil {
		p.logger.Error("failed to delete listing",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
	}
}
