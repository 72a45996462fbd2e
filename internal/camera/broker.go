package camera

import (
	"context"
	"sync"

	"campus-map-api/internal/models"

	"github.com/rs/zerolog"
)

const subscriberBuffer = 16

// Broker fans camera moves out to every connected map client.
type Broker struct {
	mu     sync.RWMutex
	subs   map[chan models.CameraMove]struct{}
	closed bool
	logger zerolog.Logger
}

// NewBroker creates a broker with no subscribers.
func NewBroker(logger zerolog.Logger) *Broker {
	return &Broker{
		subs:   make(map[chan models.CameraMove]struct{}),
		logger: logger.With().Str("component", "camera_broker").Logger(),
	}
}

// Subscribe returns a channel of camera moves and a func that unsubscribes and closes it.
// After Close the returned channel is already closed.
func (b *Broker) Subscribe() (<-chan models.CameraMove, func()) {
	ch := make(chan models.CameraMove, subscriberBuffer)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[ch] = struct{}{}
	}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}
}

// Close closes every subscriber channel so open streams end.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		close(ch)
	}
	b.subs = make(map[chan models.CameraMove]struct{})
	b.closed = true
}

// Subscribers returns the number of connected subscribers.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// MoveCamera publishes move to all subscribers without blocking.
func (b *Broker) MoveCamera(_ context.Context, move models.CameraMove) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- move:
		default:
			// Slow subscriber, drop.
			b.logger.Warn().Str("session_id", move.SessionID).Int("index", move.Index).Msg("dropped camera move")
		}
	}
}
