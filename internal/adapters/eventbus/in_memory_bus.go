package eventbus

import (
	"DisplayEvents/internal/core/domain"
	"DisplayEvents/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

type listener struct {
	sub     ports.Subscription
	handler ports.EventHandler
}

// inMemoryEventBus implements the ports.EventBus interface
type inMemoryEventBus struct {
	log       zerolog.Logger
	async     bool
	listeners map[domain.EventKind][]listener
	mu        sync.RWMutex
	closed    bool
	inflight  conc.WaitGroup
}

var _ ports.EventBus = (*inMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new, empty event bus.
// With async set, every handler runs on its own goroutine and its
// errors are logged instead of returned to the publisher.
func NewInMemoryEventBus(baseLogger *zerolog.Logger, async bool) ports.EventBus {
	return &inMemoryEventBus{
		log:       baseLogger.With().Str("component", "in_memory_bus").Logger(),
		async:     async,
		listeners: make(map[domain.EventKind][]listener),
	}
}

// Publish sends an event to all matching subscribers of its kind
func (b *inMemoryEventBus) Publish(ctx context.Context, event domain.Event) error {
	if event == nil {
		return ports.ErrNilEvent
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ports.ErrBusClosed
	}

	matched := b.match(event)
	if len(matched) == 0 {
		b.mu.RUnlock()
		// No subscribers for this event, which is fine
		b.log.Warn().Str("kind", string(event.Kind())).Msg("Published event with no subscribers")
		return nil
	}

	if b.async {
		// Launch while still holding the read lock so Close cannot
		// start waiting before these goroutines are counted.
		for _, l := range matched {
			b.inflight.Go(func() {
				// A fresh context so the handler isn't cancelled
				// if the *publisher's* context is.
				if err := b.invoke(context.Background(), l, event); err != nil {
					b.log.Error().Err(err).Str("kind", string(event.Kind())).Msg("Event handler failed")
				}
			})
		}
		b.mu.RUnlock()
		b.log.Debug().Str("kind", string(event.Kind())).Int("handlers", len(matched)).Msg("Event published")
		return nil
	}

	// Handlers run without the lock so they may subscribe,
	// unsubscribe or publish themselves.
	b.mu.RUnlock()

	var errs []error
	for _, l := range matched {
		if err := b.invoke(ctx, l, event); err != nil {
			b.log.Error().Err(err).Str("kind", string(event.Kind())).Msg("Event handler failed")
			errs = append(errs, err)
		}
	}

	b.log.Debug().Str("kind", string(event.Kind())).Int("handlers", len(matched)).Msg("Event published")
	return errors.Join(errs...)
}

// match returns the listeners for the event's kind that are bound to no
// context or to the event's own context. Callers hold b.mu.
func (b *inMemoryEventBus) match(event domain.Event) []listener {
	var matched []listener
	for _, l := range b.listeners[event.Kind()] {
		if l.sub.EventContext == nil || l.sub.EventContext.Is(event.EventContext()) {
			matched = append(matched, l)
		}
	}
	return matched
}

func (b *inMemoryEventBus) invoke(ctx context.Context, l listener, event domain.Event) (err error) {
	var pc panics.Catcher
	pc.Try(func() {
		err = l.handler(ctx, event)
	})
	if r := pc.Recovered(); r != nil {
		return fmt.Errorf("handler %s panicked: %w", l.sub.ID, r.AsError())
	}
	if err != nil {
		return fmt.Errorf("handler %s: %w", l.sub.ID, err)
	}
	return nil
}

// Subscribe registers a handler for a kind within a context
func (b *inMemoryEventBus) Subscribe(kind domain.EventKind, eventContext *domain.EventContext, handler ports.EventHandler) ports.Subscription {
	sub := ports.Subscription{
		ID:           uuid.New(),
		Kind:         kind,
		EventContext: eventContext,
	}

	b.mu.Lock() // Lock for writing to the map
	defer b.mu.Unlock()

	b.listeners[kind] = append(b.listeners[kind], listener{sub: sub, handler: handler})
	b.log.Info().
		Str("kind", string(kind)).
		Stringer("event_context", eventContext).
		Str("subscription_id", sub.ID.String()).
		Msg("New handler subscribed")
	return sub
}

// Unsubscribe removes a previously registered handler
func (b *inMemoryEventBus) Unsubscribe(sub ports.Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.listeners[sub.Kind]
	remaining := slices.DeleteFunc(slices.Clone(current), func(l listener) bool {
		return l.sub.ID == sub.ID
	})
	if len(remaining) == len(current) {
		return false
	}

	if len(remaining) == 0 {
		delete(b.listeners, sub.Kind)
	} else {
		b.listeners[sub.Kind] = remaining
	}
	b.log.Info().Str("subscription_id", sub.ID.String()).Msg("Handler unsubscribed")
	return true
}

// Close rejects new events and waits for asynchronous deliveries to finish
func (b *inMemoryEventBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	b.inflight.Wait()
	b.log.Info().Msg("Event bus closed")
	return nil
}
