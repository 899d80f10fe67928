package windowing

import (
	"DisplayEvents/internal/core/domain"
	"DisplayEvents/internal/core/ports"
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccelerationTracker listens for acceleration changes and remembers the
// latest value seen for each context.
type AccelerationTracker struct {
	log zerolog.Logger

	mu     sync.RWMutex
	latest map[uuid.UUID]float64
	seen   int
}

func NewAccelerationTracker(baseLogger *zerolog.Logger) *AccelerationTracker {
	return &AccelerationTracker{
		log:    baseLogger.With().Str("component", "acceleration_tracker").Logger(),
		latest: make(map[uuid.UUID]float64),
	}
}

// Attach subscribes the tracker to bus. A nil eventContext tracks every context.
func (t *AccelerationTracker) Attach(bus ports.EventBus, eventContext *domain.EventContext) ports.Subscription {
	return bus.Subscribe(domain.KindWindowingAccelerationValueChange, eventContext, t.Handle)
}

// Handle is the ports.EventHandler the tracker registers.
func (t *AccelerationTracker) Handle(ctx context.Context, event domain.Event) error {
	if event == nil {
		t.log.Warn().Msg("Ignoring nil event")
		return nil
	}
	change, ok := event.(domain.WindowingAccelerationValueChangeEvent)
	if !ok {
		t.log.Warn().Str("kind", string(event.Kind())).Msg("Ignoring unexpected event")
		return nil
	}
	if change.EventContext() == nil {
		t.log.Warn().Msg("Ignoring acceleration change without a context")
		return nil
	}

	t.mu.Lock()
	t.latest[change.EventContext().ID] = change.Value()
	t.seen++
	t.mu.Unlock()

	t.log.Info().Object("event", change).Msg("Acceleration recorded")
	return nil
}

// Latest returns the last acceleration recorded for eventContext.
func (t *AccelerationTracker) Latest(eventContext *domain.EventContext) (float64, bool) {
	if eventContext == nil {
		return 0, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.latest[eventContext.ID]
	return v, ok
}

// Seen is the number of events recorded so far.
func (t *AccelerationTracker) Seen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.seen
}
