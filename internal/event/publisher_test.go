package event

import (
	"sync"
	"testing"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishFanOut(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	var mu sync.Mutex
	var got []domain.EventType
	done := make(chan struct{}, 2)

	for i := 0; i < 2; i++ {
		hub.Subscribe(func(e domain.Event) {
			mu.Lock()
			got = append(got, e.Type)
			mu.Unlock()
			done <- struct{}{}
		})
	}

	hub.Publish(domain.Event{
		Type:       domain.EventWalletCreated,
		MerchantID: uuid.New(),
		OccurredAt: time.Now(),
	})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("subscriber not invoked")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, domain.EventWalletCreated, got[0])
}

func TestHub_PanickingSubscriberDoesNotStopOthers(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	done := make(chan struct{}, 1)
	hub.Subscribe(func(domain.Event) { panic("boom") })
	hub.Subscribe(func(domain.Event) { done <- struct{}{} })

	hub.Publish(domain.Event{Type: domain.EventTopUpCompleted, OccurredAt: time.Now()})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second subscriber not invoked after panic in first")
	}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// Must not panic or block.
	hub.Publish(domain.Event{Type: domain.EventTransferCompleted, OccurredAt: time.Now()})
}
