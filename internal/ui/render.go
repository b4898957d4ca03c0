package ui

import (
	"math"
	"strings"

	"toastfx/internal/element"
	"toastfx/internal/notify"
	"toastfx/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// drawFunc draws a toast box of exactly w x h cells at the given opacity.
type drawFunc func(w, h int, opacity float64) string

// renderElement draws an element's current frame inside its layout footprint.
// The footprint is the rendered size; the scaled box is positioned so the pivot
// stays fixed, which for a bottom-right pivot pins the box to that corner.
func renderElement(s element.Snapshot, draw drawFunc) string {
	fullW := cells(s.ActualWidth)
	fullH := cells(s.ActualHeight)
	if fullW == 0 || fullH == 0 {
		return ""
	}

	sx, sy := 1.0, 1.0
	px, py := 0.0, 0.0
	if s.HasTransform {
		tr := s.Transform
		sx, sy = clamp01(tr.ScaleX), clamp01(tr.ScaleY)
		px = fraction(tr.PivotX, s.ActualWidth)
		py = fraction(tr.PivotY, s.ActualHeight)
	}

	w := cells(float64(fullW) * sx)
	h := cells(float64(fullH) * sy)
	box := ""
	if w > 0 && h > 0 {
		box = draw(w, h, s.Opacity)
	}
	return lipgloss.Place(fullW, fullH, lipgloss.Position(px), lipgloss.Position(py), box)
}

// toastBox returns a drawFunc for msg. remaining is the lifetime fraction left,
// shown on the countdown bar.
func toastBox(msg notify.Message, bar progress.Model, remaining float64) drawFunc {
	return func(w, h int, opacity float64) string {
		accent := fade(KindColor(msg.Kind), ColorBackground, opacity)
		if w < 4 || h < 3 {
			rule := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("─", w))
			return strings.TrimSuffix(strings.Repeat(rule+"\n", h), "\n")
		}

		innerW, innerH := w-2, h-2
		lines := contentLines(msg, bar, innerW-2, remaining, opacity)
		footer := ""
		if innerH > 1 {
			footer = lines[len(lines)-1]
		}
		lines = textutil.ClipLines(lines, innerH, footer)
		return Styles.Toast.
			BorderForeground(accent).
			Width(innerW).
			Height(innerH).
			Render(strings.Join(lines, "\n"))
	}
}

// contentLines lays out the title, wrapped body, and countdown bar at width.
func contentLines(msg notify.Message, bar progress.Model, width int, remaining, opacity float64) []string {
	if width < 1 {
		width = 1
	}
	accent := fade(KindColor(msg.Kind), ColorBackground, opacity)
	text := fade(ColorText, ColorBackground, opacity)

	title := textutil.Truncate(kindIcons[msg.Kind]+" "+msg.Title, width)
	parts := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accent).Width(width).Render(title),
	}
	if msg.Body != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(text).Width(width).Render(msg.Body))
	}

	bar.Width = width
	bar.FullColor = string(accent)
	bar.EmptyColor = string(fade(ColorMuted, ColorBackground, opacity))
	parts = append(parts, bar.ViewAs(clamp01(remaining)))

	return strings.Split(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}

// measureToast returns the natural size of msg's box at width w.
func measureToast(msg notify.Message, bar progress.Model, w int) (float64, float64) {
	lines := contentLines(msg, bar, w-4, 1, 1)
	return float64(w), float64(len(lines) + 2)
}

// fade blends color toward bg; opacity 1 keeps color, 0 yields bg.
func fade(color, bg string, opacity float64) lipgloss.Color {
	from, err := colorful.Hex(color)
	if err != nil {
		return lipgloss.Color(color)
	}
	to, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(to.BlendRgb(from, clamp01(opacity)).Clamped().Hex())
}

func cells(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int(math.Round(v))
}

func fraction(v, of float64) float64 {
	if of <= 0 {
		return 1
	}
	return clamp01(v / of)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
