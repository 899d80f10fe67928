package ports

import (
	"DisplayEvents/internal/core/domain"
	"context"
)

// AccelerationControl is the control that owns a windowing acceleration
// setting and announces changes to it on the bus.
type AccelerationControl interface {
	SetAcceleration(ctx context.Context, value float64) error
	Acceleration() float64
	EventContext() *domain.EventContext
}
