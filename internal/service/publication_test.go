package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T) (*PublicationPipeline, *mocks.MockBookingRepo, *mocks.MockListingRepo) {
	t.Helper()
	bookings := mocks.NewMockBookingRepo(t)
	listings := mocks.NewMockListingRepo(t)
	p := NewPublicationPipeline(bookings, listings, negotiation.FlowDual, newTestLogger(t))
	p.now = func() time.Time { return testNow }
	return p, bookings, listings
}

func TestPublicationPipeline_RetryPendingListings_Success(t *testing.T) {
	p, bookings, listings := newTestPipeline(t)

	b1 := newBooking(domain.BookingStatusUpcoming)
	b2 := newBooking(domain.BookingStatusUpcoming)
	b2.ID = "b2"
	bookings.EXPECT().ListPublishedWithoutListing(mock.Anything, retryBatchSize).Return([]*domain.Booking{b1, b2}, nil)
	listings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)

	created, err := p.RetryPendingListings(context.Background())

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "b1", created[0].BookingID)
	assert.Equal(t, "b2", created[1].BookingID)
	assert.Equal(t, *b1.PublishedAt, created[0].PublishedAt)
}

func TestPublicationPipeline_RetryPendingListings_PartialFailure(t *testing.T) {
	p, bookings, listings := newTestPipeline(t)

	b1 := newBooking(domain.BookingStatusUpcoming)
	b2 := newBooking(domain.BookingStatusUpcoming)
	b2.ID = "b2"
	bookings.EXPECT().ListPublishedWithoutListing(mock.Anything, retryBatchSize).Return([]*domain.Booking{b1, b2}, nil)
	listings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.BookingID == "b1"
	})).Return(errors.New("constraint violated"))
	listings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.BookingID == "b2"
	})).Return(nil)

	created, err := p.RetryPendingListings(context.Background())

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "b2", created[0].BookingID)
}

func TestPublicationPipeline_RetryPendingListings_AllFail(t *testing.T) {
	p, bookings, listings := newTestPipeline(t)

	bookings.EXPECT().ListPublishedWithoutListing(mock.Anything, retryBatchSize).
		Return([]*domain.Booking{newBooking(domain.BookingStatusUpcoming)}, nil)
	listings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPersistence).Times(2)

	created, err := p.RetryPendingListings(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, created)
}

func TestPublicationPipeline_RetryPendingListings_ListError(t *testing.T) {
	p, bookings, _ := newTestPipeline(t)

	bookings.EXPECT().ListPublishedWithoutListing(mock.Anything, retryBatchSize).Return(nil, errors.New("db error"))

	_, err := p.RetryPendingListings(context.Background())

	require.Error(t, err)
}

func TestPublicationPipeline_Publish_ConcurrentCounterpartCompletes(t *testing.T) {
	p, bookings, listings := newTestPipeline(t)

	before := newBooking(domain.BookingStatusApprovedByBoth)
	both := before.Clone()
	both.PublishedBySender, both.PublishedByReceiver = true, true

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(before, nil).Once()
	bookings.EXPECT().Update(mock.Anything, "b1", mock.MatchedBy(func(p domain.BookingPatch) bool {
		return !p.Status.IsSet()
	})).Return(nil).Once()
	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(both, nil).Once()
	bookings.EXPECT().Update(mock.Anything, "b1", statusIs(domain.BookingStatusUpcoming)).Return(nil).Once()
	listings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	out, err := p.Publish(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, domain.BookingStatusUpcoming, out.Booking.Status)
}
