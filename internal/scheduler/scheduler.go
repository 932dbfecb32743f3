package scheduler

import (
	"context"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type listingRetrier interface {
	RetryPendingListings(ctx context.Context) ([]*domain.Listing, error)
}

// Scheduler periodically completes publications whose marketplace listing
// could not be created at publish time.
type Scheduler struct {
	pipeline listingRetrier
	interval time.Duration
	logger   logger.Logger
}

func New(
	pipeline listingRetrier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		pipeline: pipeline,
		interval: interval,
		logger:   logger,
	}
}

// Start runs until ctx is done. The first pass runs immediately so that
// listings deferred before a restart are not left waiting a full interval.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("listing scheduler started",
		logger.Duration("interval", s.interval),
	)
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("listing scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick makes one retry pass. A pass may not outlive the interval, so a hung
// store cannot stack passes on top of each other.
func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	created, err := s.pipeline.RetryPendingListings(ctx)
	if err != nil {
		s.logger.Error("failed to retry pending listings",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(created) == 0 {
		return
	}

	for _, l := range created {
		s.logger.Info("deferred listing created",
			logger.String("listing_id", l.ID),
			logger.String("booking_id", l.BookingID),
		)
	}
	s.logger.Info("listing retry pass finished", logger.Int("created", len(created)))
}
