// Package easing provides the transfer curves used to shape animation progress.
//
// A Curve maps normalized elapsed time in [0,1] to normalized progress in [0,1].
// Every curve satisfies f(0) = 0 and f(1) = 1.
package easing

import (
	"fmt"
	"strings"
)

// Curve is a pure easing function of normalized time.
type Curve func(t float64) float64

// Family identifies the polynomial degree of a curve.
type Family string

const (
	Linear    Family = "linear"
	Quadratic Family = "quadratic"
	Cubic     Family = "cubic"
	Quartic   Family = "quartic"
)

// Mode identifies which end of the curve is slow.
type Mode string

const (
	EaseIn    Mode = "in"
	EaseOut   Mode = "out"
	EaseInOut Mode = "inout"
)

var table = map[Family]map[Mode]Curve{
	Linear: {
		EaseIn:    linear,
		EaseOut:   linear,
		EaseInOut: linear,
	},
	Quadratic: {
		EaseIn:    QuadIn,
		EaseOut:   QuadOut,
		EaseInOut: QuadInOut,
	},
	Cubic: {
		EaseIn:    CubicIn,
		EaseOut:   CubicOut,
		EaseInOut: CubicInOut,
	},
	Quartic: {
		EaseIn:    QuartIn,
		EaseOut:   QuartOut,
		EaseInOut: QuartInOut,
	},
}

// Lookup returns the curve for family and mode.
func Lookup(f Family, m Mode) (Curve, error) {
	modes, ok := table[f]
	if !ok {
		return nil, fmt.Errorf("unknown easing family %q", f)
	}
	c, ok := modes[m]
	if !ok {
		return nil, fmt.Errorf("unknown easing mode %q", m)
	}
	return c, nil
}

// Parse resolves names like "quartic-out", "quad-in" or "linear".
func Parse(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == string(Linear) {
		return linear, nil
	}
	fam, mode, ok := strings.Cut(name, "-")
	if !ok {
		return nil, fmt.Errorf("easing %q: expected <family>-<mode>", name)
	}
	switch fam {
	case "quad":
		fam = string(Quadratic)
	case "quart":
		fam = string(Quartic)
	}
	if mode == "in-out" {
		mode = string(EaseInOut)
	}
	c, err := Lookup(Family(fam), Mode(mode))
	if err != nil {
		return nil, fmt.Errorf("easing %q: %w", name, err)
	}
	return c, nil
}

func clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func linear(t float64) float64 { return clamp(t) }

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}

func in(n int) Curve {
	return func(t float64) float64 { return pow(clamp(t), n) }
}

func out(n int) Curve {
	return func(t float64) float64 { return 1 - pow(1-clamp(t), n) }
}

func inOut(n int) Curve {
	return func(t float64) float64 {
		t = clamp(t)
		if t < 0.5 {
			return pow(2, n-1) * pow(t, n)
		}
		return 1 - pow(-2*t+2, n)/2
	}
}

var (
	QuadIn     = in(2)
	QuadOut    = out(2)
	QuadInOut  = inOut(2)
	CubicIn    = in(3)
	CubicOut   = out(3)
	CubicInOut = inOut(3)
	QuartIn    = in(4)
	QuartOut   = out(4)
	QuartInOut = inOut(4)
)
