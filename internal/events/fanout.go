package events

import (
	"context"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, e domain.BookingEvent)
}

type fanout []Publisher

// Fanout publishes every event to each of pubs in order. Nil publishers are
// skipped.
func Fanout(pubs ...Publisher) Publisher {
	out := make(fanout, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (f fanout) Publish(ctx context.Context, e domain.BookingEvent) {
	for _, p := range f {
		p.Publish(ctx, e)
	}
}
