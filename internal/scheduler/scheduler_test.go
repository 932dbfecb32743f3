package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_FirstPassRunsImmediately(t *testing.T) {
	retrier := mocks.NewMockListingRetrier(t)
	s := New(retrier, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	retrier.EXPECT().RetryPendingListings(mock.Anything).
		Return([]*domain.Listing{{ID: "l1", BookingID: "b1"}}, nil).
		Run(func(context.Context) { cancel() }).
		Once()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after the first pass")
	}
}

func TestScheduler_PassIsBoundedByInterval(t *testing.T) {
	retrier := mocks.NewMockListingRetrier(t)
	s := New(retrier, 30*time.Millisecond, newTestLogger(t))

	retrier.EXPECT().RetryPendingListings(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*domain.Listing, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(30*time.Millisecond), deadline, 30*time.Millisecond)
			return nil, nil
		}).Once()

	s.tick(context.Background())
}

func TestScheduler_TickHandlesError(t *testing.T) {
	retrier := mocks.NewMockListingRetrier(t)
	s := New(retrier, 50*time.Millisecond, newTestLogger(t))

	retrier.EXPECT().RetryPendingListings(mock.Anything).Return(nil, errors.New("db error")).Once()

	s.tick(context.Background())
}

func TestScheduler_SkipsPassAfterCancel(t *testing.T) {
	retrier := mocks.NewMockListingRetrier(t)
	s := New(retrier, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	retrier.AssertNotCalled(t, "RetryPendingListings", mock.Anything)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	retrier := mocks.NewMockListingRetrier(t)
	s := New(retrier, 20*time.Millisecond, newTestLogger(t))

	retrier.EXPECT().RetryPendingListings(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(retrier.Calls), 3)
}
