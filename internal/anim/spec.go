// Package anim drives groups of property interpolations against display elements.
//
// A Spec describes one interpolation; a group is a set of specs started at the same
// instant and sampled together every frame until the longest member completes.
package anim

import (
	"errors"
	"fmt"
	"time"

	"toastfx/internal/easing"
	"toastfx/internal/element"
)

// Spec is one interpolation task.
type Spec struct {
	Target   element.Target
	From     float64
	To       float64
	Duration time.Duration
	Curve    easing.Curve
}

// Value returns the interpolated value after elapsed time.
func (s Spec) Value(elapsed time.Duration) float64 {
	return lerp(s.From, s.To, s.progress(elapsed))
}

func (s Spec) progress(elapsed time.Duration) float64 {
	if s.Duration <= 0 || elapsed >= s.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(s.Duration)
	if s.Curve == nil {
		return t
	}
	return s.Curve(t)
}

func (s Spec) validate() error {
	if s.Target.El == nil {
		return errors.New("spec has no target element")
	}
	if s.Duration < 0 {
		return fmt.Errorf("spec %s: negative duration %v", s.Target, s.Duration)
	}
	return nil
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
