package windowing

import (
	"DisplayEvents/internal/core/domain"
	"DisplayEvents/internal/core/ports"
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
)

// accelerationControl implements ports.AccelerationControl
type accelerationControl struct {
	bus          ports.EventBus
	eventContext *domain.EventContext
	log          zerolog.Logger

	// publishMu orders announcements the same way as the saves.
	publishMu sync.Mutex

	mu    sync.Mutex
	value float64
}

var _ ports.AccelerationControl = (*accelerationControl)(nil)

// NewAccelerationControl creates a control that announces changes on bus
// under eventContext.
func NewAccelerationControl(
	bus ports.EventBus,
	eventContext *domain.EventContext,
	initial float64,
	baseLogger *zerolog.Logger,
) ports.AccelerationControl {
	return &accelerationControl{
		bus:          bus,
		eventContext: eventContext,
		value:        initial,
		log: baseLogger.With().
			Str("component", "acceleration_control").
			Stringer("event_context", eventContext).
			Logger(),
	}
}

// SetAcceleration stores value and publishes a
// WindowingAccelerationValueChangeEvent. Re-setting the same value
// (bit for bit) publishes nothing. If publishing fails the previous value
// is restored, so the stored value is always the last one announced.
// Handlers must not call SetAcceleration on the same control.
func (c *accelerationControl) SetAcceleration(ctx context.Context, value float64) error {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	previous := c.value
	if math.Float64bits(previous) == math.Float64bits(value) {
		c.mu.Unlock()
		return nil
	}
	c.value = value
	c.mu.Unlock()

	event := domain.NewWindowingAccelerationValueChangeEvent(c.eventContext, value)
	c.log.Debug().Object("event", event).Msg("Acceleration changed")

	if err := c.bus.Publish(ctx, event); err != nil {
		c.mu.Lock()
		c.value = previous
		c.mu.Unlock()
		c.log.Warn().Err(err).Str("value", domain.FormatDouble(value)).Msg("Acceleration change not announced, reverted")
		return fmt.Errorf("publish acceleration change: %w", err)
	}
	return nil
}

func (c *accelerationControl) Acceleration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *accelerationControl) EventContext() *domain.EventContext {
	return c.eventContext
}
