// Package events fans booking changes out to live subscribers: in-process
// SSE streams and, when configured, a RabbitMQ exchange.
package events

import (
	"context"
	"sync"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

const subscriberBuffer = 16

// Hub delivers booking events to the subscribers of that booking. A slow
// subscriber misses events instead of blocking the publisher.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan domain.BookingEvent]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan domain.BookingEvent]struct{})}
}

// Subscribe registers a listener for bookingID. The returned cancel func
// must be called to release it; it closes the channel.
func (h *Hub) Subscribe(bookingID string) (<-chan domain.BookingEvent, func()) {
	ch := make(chan domain.BookingEvent, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	set, ok := h.subs[bookingID]
	if !ok {
		set = make(map[chan domain.BookingEvent]struct{})
		h.subs[bookingID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			set, ok := h.subs[bookingID]
			if !ok {
				return
			}
			if _, ok = set[ch]; !ok {
				return
			}
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, bookingID)
			}
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Publish(_ context.Context, e domain.BookingEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[e.BookingID] {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribers returns the number of listeners of bookingID.
func (h *Hub) Subscribers(bookingID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[bookingID])
}

// Close ends every subscription. Streams see their channel closed and return,
// which lets the HTTP server finish its graceful shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, set := range h.subs {
		for ch := range set {
			close(ch)
		}
		delete(h.subs, id)
	}
}
