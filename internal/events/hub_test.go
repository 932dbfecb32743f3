package events

import (
	"context"
	"testing"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversToBookingSubscribers(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe("b1")
	defer cancel1()
	ch2, cancel2 := h.Subscribe("b2")
	defer cancel2()

	e := domain.BookingEvent{Type: domain.BookingEventUpdated, BookingID: "b1", Status: domain.BookingStatusAllowed}
	h.Publish(context.Background(), e)

	select {
	case got := <-ch1:
		assert.Equal(t, e, got)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	select {
	case got := <-ch2:
		t.Fatalf("unexpected event for other booking: %+v", got)
	default:
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("b1")
	defer cancel()

	for i := 0; i < subscriberBuffer*3; i++ {
		h.Publish(context.Background(), domain.BookingEvent{BookingID: "b1"})
	}

	assert.Len(t, ch, subscriberBuffer)
}

func TestHub_CancelReleasesSubscriber(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("b1")
	require.Equal(t, 1, h.Subscribers("b1"))

	cancel()
	cancel()

	assert.Equal(t, 0, h.Subscribers("b1"))
	_, open := <-ch
	assert.False(t, open)

	h.Publish(context.Background(), domain.BookingEvent{BookingID: "b1"})
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("b1")
	h.Close()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers("b1"))
	assert.NotPanics(t, cancel)

	late, lateCancel := h.Subscribe("b1")
	_, open = <-late
	assert.False(t, open)
	lateCancel()
}

type recorder struct {
	got []domain.BookingEvent
}

func (r *recorder) Publish(_ context.Context, e domain.BookingEvent) {
	r.got = append(r.got, e)
}

func TestFanout_PublishesToAll(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	pub := Fanout(a, nil, b)

	pub.Publish(context.Background(), domain.BookingEvent{BookingID: "b1", Type: domain.BookingEventCreated})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "booking.published", RoutingKey(domain.BookingEventPublished))
}
