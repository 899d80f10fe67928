package main

import (
	"DisplayEvents/internal/adapters/eventbus"
	"DisplayEvents/internal/core/domain"
	"DisplayEvents/internal/shared/config"
	"DisplayEvents/internal/shared/logger"
	"DisplayEvents/internal/windowing"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	isDevMode := cfg.AppEnv == "dev"
	baseLogger := logger.New(isDevMode)
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Bool("async_bus", cfg.EventBus.Async).
		Str("context", cfg.Windowing.ContextName).
		Int("steps", len(cfg.Windowing.AccelerationSteps)).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Event bus and listeners
	bus := eventbus.NewInMemoryEventBus(&baseLogger, cfg.EventBus.Async)
	eventContext := domain.NewEventContext(cfg.Windowing.ContextName)

	tracker := windowing.NewAccelerationTracker(&baseLogger)
	tracker.Attach(bus, eventContext)

	// 4. The control that raises the events
	control := windowing.NewAccelerationControl(bus, eventContext, cfg.Windowing.InitialAcceleration, &baseLogger)

	for _, step := range cfg.Windowing.AccelerationSteps {
		if err := control.SetAcceleration(ctx, step); err != nil {
			baseLogger.Error().Err(err).Float64("value", step).Msg("Failed to apply acceleration step")
			break
		}
	}

	if err := bus.Close(); err != nil {
		baseLogger.Error().Err(err).Msg("Failed to close event bus")
	}

	latest, ok := tracker.Latest(eventContext)
	baseLogger.Info().
		Int("events", tracker.Seen()).
		Bool("tracked", ok).
		Str("latest", domain.FormatDouble(latest)).
		Str("current", domain.FormatDouble(control.Acceleration())).
		Msg("Done")
}
