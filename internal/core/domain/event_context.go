package domain

import (
	"github.com/google/uuid"
)

// EventContext is an opaque token correlating an event with the control
// or channel that raised it. Events hold a borrowed pointer to it.
type EventContext struct {
	ID   uuid.UUID
	Name string
}

// NewEventContext creates a context with a fresh random ID.
func NewEventContext(name string) *EventContext {
	return &EventContext{
		ID:   uuid.New(),
		Name: name,
	}
}

// Is reports whether c and other identify the same context.
// Identity is the ID; a nil context only matches nil.
func (c *EventContext) Is(other *EventContext) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID
}

func (c *EventContext) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name + "#" + c.ID.String()
}
