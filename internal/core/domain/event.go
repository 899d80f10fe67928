package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EventKind is the discriminator listeners subscribe to.
type EventKind string

const (
	KindWindowingAccelerationValueChange EventKind = "windowing.acceleration.changed"
)

// Event is implemented by every event the bus can carry.
type Event interface {
	Kind() EventKind
	EventContext() *EventContext
	String() string
}

// WindowingAccelerationValueChangeEvent tells listeners that the
// windowing acceleration factor of a control changed.
type WindowingAccelerationValueChangeEvent struct {
	eventContext *EventContext
	value        float64
}

var _ Event = WindowingAccelerationValueChangeEvent{}

// NewWindowingAccelerationValueChangeEvent stores both arguments verbatim.
// Any float64 is accepted, including NaN and the infinities.
func NewWindowingAccelerationValueChangeEvent(eventContext *EventContext, value float64) WindowingAccelerationValueChangeEvent {
	return WindowingAccelerationValueChangeEvent{
		eventContext: eventContext,
		value:        value,
	}
}

func (e WindowingAccelerationValueChangeEvent) Kind() EventKind {
	return KindWindowingAccelerationValueChange
}

func (e WindowingAccelerationValueChangeEvent) EventContext() *EventContext {
	return e.eventContext
}

// Value returns the acceleration exactly as it was given.
func (e WindowingAccelerationValueChangeEvent) Value() float64 {
	return e.value
}

func (e WindowingAccelerationValueChangeEvent) String() string {
	return "WindowingAccelerationValueChangeEvent: eventContext=" + e.eventContext.String() +
		" value=" + FormatDouble(e.value)
}

// MarshalZerologObject lets the event be passed to zerolog's Object().
func (e WindowingAccelerationValueChangeEvent) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", string(e.Kind())).
		Str("event_context", e.eventContext.String()).
		Str("value", FormatDouble(e.value))
}

// FormatDouble renders v the way the display application has always
// printed doubles: "1.0" rather than "1", scientific notation such as
// "1.0E10" outside [1e-3, 1e7), and "NaN", "Infinity", "-Infinity".
func FormatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// Go prints "1.5E-05"; we want "1.5E-5".
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}
