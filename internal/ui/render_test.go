package ui

import (
	"strings"
	"testing"

	"toastfx/internal/element"
	"toastfx/internal/notify"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid draws a w x h block of x's and records the requested size.
func solid(gotW, gotH *int) drawFunc {
	return func(w, h int, _ float64) string {
		*gotW, *gotH = w, h
		return strings.TrimSuffix(strings.Repeat(strings.Repeat("x", w)+"\n", h), "\n")
	}
}

func sizedElement(t *testing.T, w, h float64) *element.Element {
	t.Helper()
	el := element.New()
	el.Measure(w, h)
	return el
}

func TestRenderElement_NoTransformDrawsFullSize(t *testing.T) {
	el := sizedElement(t, 10, 4)
	var w, h int
	out := renderElement(el.Snapshot(), solid(&w, &h))
	assert.Equal(t, 10, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 4, lipgloss.Height(out))
}

func TestRenderElement_CollapsedAfterSetup(t *testing.T) {
	el := sizedElement(t, 10, 4)
	el.InstallTransform(1, 0)

	var w, h int
	out := renderElement(el.Snapshot(), solid(&w, &h))
	assert.NotContains(t, out, "x")
	// The footprint is still reserved.
	assert.Equal(t, 4, lipgloss.Height(out))
	assert.Equal(t, 10, lipgloss.Width(out))
}

func TestRenderElement_ScalesTowardBottomRightPivot(t *testing.T) {
	el := sizedElement(t, 10, 4)
	el.InstallTransform(0.5, 0.5)
	require.NoError(t, el.SetPivot(10, 4))

	var w, h int
	out := renderElement(el.Snapshot(), solid(&w, &h))
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat(" ", 10), lines[0])
	assert.Equal(t, strings.Repeat(" ", 5)+"xxxxx", lines[3])
}

func TestRenderElement_TopLeftPivot(t *testing.T) {
	el := sizedElement(t, 10, 4)
	el.InstallTransform(0.5, 0.5)
	require.NoError(t, el.SetPivot(0, 0))

	var w, h int
	lines := strings.Split(renderElement(el.Snapshot(), solid(&w, &h)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "xxxxx"+strings.Repeat(" ", 5), lines[0])
}

func TestRenderElement_ZeroHeightRendersNothing(t *testing.T) {
	el := sizedElement(t, 10, 4)
	el.InstallTransform(1, 1)
	require.NoError(t, el.Set(element.Height, 0))
	var w, h int
	assert.Equal(t, "", renderElement(el.Snapshot(), solid(&w, &h)))
}

func TestFade(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff0000"), fade("#ff0000", "#000000", 1))
	assert.Equal(t, lipgloss.Color("#000000"), fade("#ff0000", "#000000", 0))
	assert.Equal(t, lipgloss.Color("#000000"), fade("#ff0000", "#000000", -1))
	// Non-hex colors pass through untouched.
	assert.Equal(t, lipgloss.Color("205"), fade("205", "#000000", 0.5))
}

func TestToastBox(t *testing.T) {
	msg := notify.Message{Kind: notify.KindSuccess, Title: "Saved", Body: "Your changes were written."}
	bar := progress.New(progress.WithoutPercentage())

	w, h := measureToast(msg, bar, 40)
	assert.Equal(t, 40.0, w)
	assert.GreaterOrEqual(t, h, 5.0)

	full := toastBox(msg, bar, 1)(40, int(h), 1)
	assert.Contains(t, full, "Saved")
	assert.Equal(t, 40, lipgloss.Width(full))
	assert.Equal(t, int(h), lipgloss.Height(full))

	// Shrunk boxes keep their exact size.
	small := toastBox(msg, bar, 0.5)(20, 3, 0.5)
	assert.Equal(t, 20, lipgloss.Width(small))
	assert.Equal(t, 3, lipgloss.Height(small))

	rule := toastBox(msg, bar, 1)(3, 2, 1)
	assert.Equal(t, 2, lipgloss.Height(rule))
	assert.NotContains(t, rule, "Saved")
}
