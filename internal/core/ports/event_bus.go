package ports

import (
	"DisplayEvents/internal/core/domain"
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrBusClosed = errors.New("event bus is closed")
	ErrNilEvent  = errors.New("cannot publish a nil event")
)

// EventHandler is a function that can handle a published event
type EventHandler func(ctx context.Context, event domain.Event) error

// Subscription identifies one registered handler.
// A nil EventContext means the handler receives events from every context.
type Subscription struct {
	ID           uuid.UUID
	Kind         domain.EventKind
	EventContext *domain.EventContext
}

// EventBus defines the interface for our in-process pub/sub system
type EventBus interface {
	// Publish delivers an event to every handler subscribed to its kind
	// whose context is nil or is the event's context.
	Publish(ctx context.Context, event domain.Event) error

	// Subscribe registers a handler for a kind within a context.
	Subscribe(kind domain.EventKind, eventContext *domain.EventContext, handler EventHandler) Subscription

	// Unsubscribe removes a handler. It returns false if it was not registered.
	Unsubscribe(sub Subscription) bool

	// Close waits for in-flight deliveries and rejects further publishing.
	Close() error
}
