// Package event provides an in-process publish/subscribe hub for domain
// events. Services publish after commit; subscribers (webhook dispatch,
// notification fan-out) run outside the engine and attach at startup.
package event

import (
	"sync"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/rs/zerolog"
)

// Subscriber receives every published event. Implementations must be fast or
// hand off to their own queue; they run on the hub's dispatch goroutine.
type Subscriber func(event domain.Event)

// Hub is a fan-out event publisher. Publish never blocks the caller and a
// panicking subscriber cannot take down the process.
type Hub struct {
	log zerolog.Logger

	mu   sync.RWMutex
	subs []Subscriber
}

// NewHub creates an event hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{log: log}
}

// Subscribe registers a subscriber. Late subscribers miss earlier events.
func (h *Hub) Subscribe(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, s)
}

// Publish delivers the event to all subscribers asynchronously.
func (h *Hub) Publish(event domain.Event) {
	h.mu.RLock()
	subs := make([]Subscriber, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	go func() {
		for _, s := range subs {
			h.deliver(s, event)
		}
	}()
}

func (h *Hub) deliver(s Subscriber, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().
				Interface("panic", r).
				Str("event_type", string(event.Type)).
				Msg("Event subscriber panicked")
		}
	}()
	s(event)
}
