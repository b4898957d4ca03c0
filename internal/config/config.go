// Package config loads toastfx settings from defaults, an optional YAML file,
// and TOASTFX_* environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"toastfx/internal/easing"

	"gopkg.in/yaml.v3"
)

const (
	// ShowDurationEnv overrides the show animation duration (Go duration string).
	ShowDurationEnv = "TOASTFX_SHOW_DURATION"
	// HideDurationEnv overrides the hide animation duration.
	HideDurationEnv = "TOASTFX_HIDE_DURATION"
	// LifetimeEnv overrides how long a toast stays before it is dismissed.
	LifetimeEnv = "TOASTFX_LIFETIME"
	// FPSEnv overrides the frame rate.
	FPSEnv = "TOASTFX_FPS"
	// MaxVisibleEnv overrides how many toasts are on screen at once.
	MaxVisibleEnv = "TOASTFX_MAX_VISIBLE"
	// WidthEnv overrides the toast width in cells.
	WidthEnv = "TOASTFX_WIDTH"
	// ShowCurveEnv overrides the easing of the show geometry tracks ("cubic-out").
	ShowCurveEnv = "TOASTFX_SHOW_CURVE"
	// HideCurveEnv overrides the easing of the hide geometry tracks.
	HideCurveEnv = "TOASTFX_HIDE_CURVE"
)

// Config holds toast animation and host settings.
type Config struct {
	ShowDuration time.Duration `yaml:"show_duration"`
	HideDuration time.Duration `yaml:"hide_duration"`
	Lifetime     time.Duration `yaml:"lifetime"`
	FPS          int           `yaml:"fps"`
	MaxVisible   int           `yaml:"max_visible"`
	Width        int           `yaml:"width"`
	// Empty curves keep the animator's quartic defaults.
	ShowCurve string `yaml:"show_curve"`
	HideCurve string `yaml:"hide_curve"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ShowDuration: 300 * time.Millisecond,
		HideDuration: 200 * time.Millisecond,
		Lifetime:     4 * time.Second,
		FPS:          60,
		MaxVisible:   4,
		Width:        40,
	}
}

// Load reads path (if non-empty) over the defaults, applies env overrides, and validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	durations := []struct {
		env string
		dst *time.Duration
	}{
		{ShowDurationEnv, &c.ShowDuration},
		{HideDurationEnv, &c.HideDuration},
		{LifetimeEnv, &c.Lifetime},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.env, err)
		}
		*d.dst = parsed
	}

	for env, dst := range map[string]*string{ShowCurveEnv: &c.ShowCurve, HideCurveEnv: &c.HideCurve} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}

	ints := []struct {
		env string
		dst *int
	}{
		{FPSEnv, &c.FPS},
		{MaxVisibleEnv, &c.MaxVisible},
		{WidthEnv, &c.Width},
	}
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", i.env, err)
		}
		*i.dst = parsed
	}
	return nil
}

// Validate rejects settings the animator and host cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.ShowDuration < 0 {
		errs = append(errs, fmt.Errorf("show_duration must not be negative, got %v", c.ShowDuration))
	}
	if c.HideDuration < 0 {
		errs = append(errs, fmt.Errorf("hide_duration must not be negative, got %v", c.HideDuration))
	}
	if c.Lifetime < 0 {
		errs = append(errs, fmt.Errorf("lifetime must not be negative, got %v", c.Lifetime))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.MaxVisible <= 0 {
		errs = append(errs, fmt.Errorf("max_visible must be positive, got %d", c.MaxVisible))
	}
	if c.Width < 8 {
		errs = append(errs, fmt.Errorf("width must be at least 8, got %d", c.Width))
	}
	if _, _, err := c.Curves(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Curves resolves the configured curve overrides. A nil curve means no override.
func (c Config) Curves() (show, hide easing.Curve, err error) {
	if c.ShowCurve != "" {
		if show, err = easing.Parse(c.ShowCurve); err != nil {
			return nil, nil, fmt.Errorf("show_curve: %w", err)
		}
	}
	if c.HideCurve != "" {
		if hide, err = easing.Parse(c.HideCurve); err != nil {
			return nil, nil, fmt.Errorf("hide_curve: %w", err)
		}
	}
	return show, hide, nil
}
