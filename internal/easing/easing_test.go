package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurves_Endpoints(t *testing.T) {
	for fam, modes := range table {
		for mode, c := range modes {
			assert.InDelta(t, 0, c(0), 1e-12, "%s-%s at 0", fam, mode)
			assert.InDelta(t, 1, c(1), 1e-12, "%s-%s at 1", fam, mode)
		}
	}
}

func TestCurves_ClosedForms(t *testing.T) {
	tests := []struct {
		name string
		c    Curve
		t    float64
		want float64
	}{
		{"quad-in", QuadIn, 0.5, 0.25},
		{"quad-out", QuadOut, 0.5, 0.75},
		{"quart-in", QuartIn, 0.5, 0.0625},
		{"quart-out", QuartOut, 0.5, 0.9375},
		{"quart-inout", QuartInOut, 0.25, 8 * 0.25 * 0.25 * 0.25 * 0.25},
		{"cubic-inout", CubicInOut, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.c(tt.t), 1e-12)
		})
	}
}

func TestCurves_ClampInput(t *testing.T) {
	assert.Equal(t, 0.0, QuartOut(-1))
	assert.Equal(t, 1.0, QuadIn(2))
}

func TestCurves_Monotonic(t *testing.T) {
	for _, c := range []Curve{QuadIn, QuadOut, QuartIn, QuartOut, QuartInOut} {
		prev := c(0)
		for i := 1; i <= 100; i++ {
			v := c(float64(i) / 100)
			require.GreaterOrEqual(t, v, prev)
			prev = v
		}
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("quartic-out")
	require.NoError(t, err)
	assert.InDelta(t, QuartOut(0.3), c(0.3), 1e-12)

	c, err = Parse("Quad-In")
	require.NoError(t, err)
	assert.InDelta(t, 0.09, c(0.3), 1e-12)

	c, err = Parse("cubic-in-out")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c(0.5), 1e-12)

	_, err = Parse("linear")
	require.NoError(t, err)

	_, err = Parse("bounce-out")
	assert.Error(t, err)
	_, err = Parse("quartic")
	assert.Error(t, err)
	_, err = Parse("quartic-sideways")
	assert.Error(t, err)
}
