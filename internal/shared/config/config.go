package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv    string
	EventBus  EventBusConfig
	Windowing WindowingConfig
}

type EventBusConfig struct {
	Async bool
}

// WindowingConfig describes the acceleration control the demo drives.
type WindowingConfig struct {
	ContextName         string
	InitialAcceleration float64
	AccelerationSteps   []float64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {

	// 1. Load .env file into the process environment.
	// A missing file is fine; we then rely on OS-set env vars.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// 2. Explicitly bind viper keys to env var names
	bindings := map[string]string{
		"app.env":                        "APP_ENV",
		"eventbus.async":                 "EVENTBUS_ASYNC",
		"windowing.context":              "WINDOWING_CONTEXT",
		"windowing.initial_acceleration": "WINDOWING_INITIAL_ACCELERATION",
		"windowing.acceleration_steps":   "WINDOWING_ACCELERATION_STEPS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	// 3. Set defaults
	v.SetDefault("app.env", "dev")
	v.SetDefault("eventbus.async", "false")
	v.SetDefault("windowing.context", "default")
	v.SetDefault("windowing.initial_acceleration", "1.0")
	v.SetDefault("windowing.acceleration_steps", "")

	cfg := Config{
		AppEnv: v.GetString("app.env"),
	}

	// 4. Parse and validate
	async, err := strconv.ParseBool(v.GetString("eventbus.async"))
	if err != nil {
		return nil, fmt.Errorf("EVENTBUS_ASYNC must be a boolean: %w", err)
	}
	cfg.EventBus.Async = async

	cfg.Windowing.ContextName = strings.TrimSpace(v.GetString("windowing.context"))
	if cfg.Windowing.ContextName == "" {
		return nil, errors.New("WINDOWING_CONTEXT must not be empty")
	}

	initial, err := strconv.ParseFloat(strings.TrimSpace(v.GetString("windowing.initial_acceleration")), 64)
	if err != nil {
		return nil, fmt.Errorf("WINDOWING_INITIAL_ACCELERATION must be a number: %w", err)
	}
	cfg.Windowing.InitialAcceleration = initial

	steps, err := parseSteps(v.GetString("windowing.acceleration_steps"))
	if err != nil {
		return nil, fmt.Errorf("WINDOWING_ACCELERATION_STEPS: %w", err)
	}
	cfg.Windowing.AccelerationSteps = steps

	return &cfg, nil
}

// parseSteps reads a comma separated list of floats. Blank input is no steps.
func parseSteps(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]float64, 0, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("step %d (%q) is not a number: %w", i, p, err)
		}
		steps = append(steps, f)
	}
	return steps, nil
}
