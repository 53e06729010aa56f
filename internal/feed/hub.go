// Package feed is the server-side change feed: services publish
// insert/update/delete events after each successful mutation and the
// SSE handler fans them out to subscribed clients.
package feed

import (
	"log/slog"
	"sync"

	"arsipku/internal/model"
)

// subscriberBuffer bounds how far a slow client may lag before events
// are dropped for it.
const subscriberBuffer = 16

// Hub fans change events out to subscribers. Publishing never blocks.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan model.Event]struct{}
	logger *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs:   make(map[chan model.Event]struct{}),
		logger: slog.Default(),
	}
}

// Subscribe registers a new subscriber. The returned cancel func must
// be called on teardown; afterwards the channel is closed.
func (h *Hub) Subscribe() (<-chan model.Event, func()) {
	ch := make(chan model.Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber. Events to a
// subscriber whose buffer is full are dropped, not queued.
func (h *Hub) Publish(ev model.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("dropping change event for slow subscriber",
				"type", ev.Type, "table", ev.Table)
		}
	}
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
