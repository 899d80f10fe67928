package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowingAccelerationValueChangeEvent_ValueIsVerbatim(t *testing.T) {
	ctx := NewEventContext("slider")

	testCases := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"negative zero", math.Copysign(0, -1)},
		{"fraction", 0.75},
		{"negative", -3.5},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"NaN", math.NaN()},
		{"smallest denormal", math.SmallestNonzeroFloat64},
		{"max", math.MaxFloat64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := NewWindowingAccelerationValueChangeEvent(ctx, tc.value)

			assert.Equal(t, math.Float64bits(tc.value), math.Float64bits(event.Value()))
			assert.Same(t, ctx, event.EventContext())
			assert.Equal(t, KindWindowingAccelerationValueChange, event.Kind())
		})
	}
}

func TestWindowingAccelerationValueChangeEvent_String(t *testing.T) {
	ctx := NewEventContext("ctx1")
	event := NewWindowingAccelerationValueChangeEvent(ctx, 0.75)

	want := "WindowingAccelerationValueChangeEvent: eventContext=" + ctx.String() + " value=0.75"
	assert.Equal(t, want, event.String())

	// Deterministic for the same inputs
	again := NewWindowingAccelerationValueChangeEvent(ctx, 0.75)
	assert.Equal(t, event.String(), again.String())
	assert.Contains(t, event.String(), ctx.ID.String())
}

func TestWindowingAccelerationValueChangeEvent_StringNilContext(t *testing.T) {
	event := NewWindowingAccelerationValueChangeEvent(nil, 2)
	assert.Equal(t, "WindowingAccelerationValueChangeEvent: eventContext=<nil> value=2.0", event.String())
}

func TestWindowingAccelerationValueChangeEvent_DistinctValues(t *testing.T) {
	ctx := NewEventContext("slider")
	a := NewWindowingAccelerationValueChangeEvent(ctx, 1.0)
	b := NewWindowingAccelerationValueChangeEvent(ctx, 1.0000000000000002)

	assert.NotEqual(t, a.Value(), b.Value())
	assert.NotEqual(t, a.String(), b.String())
}

func TestWindowingAccelerationValueChangeEvent_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := NewEventContext("slider")

	log.Info().Object("event", NewWindowingAccelerationValueChangeEvent(ctx, math.Inf(1))).Msg("")

	var line struct {
		Event map[string]string `json:"event"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, string(KindWindowingAccelerationValueChange), line.Event["kind"])
	assert.Equal(t, ctx.String(), line.Event["event_context"])
	assert.Equal(t, "Infinity", line.Event["value"])
}

func TestFormatDouble(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.75, "0.75"},
		{0.001, "0.001"},
		{1234567.5, "1234567.5"},
		{1e7, "1.0E7"},
		{1.5e10, "1.5E10"},
		{0.0001, "1.0E-4"},
		{-1.5e-5, "-1.5E-5"},
		{1e-300, "1.0E-300"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDouble(tc.in))
		})
	}
}
