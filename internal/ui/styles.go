package ui

import (
	"toastfx/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI. Toasts blend these toward the background
// as they fade, so they are hex rather than ANSI palette indices.
const (
	ColorBackground = "#1c1c1c"
	ColorAccent     = "#5fd7af" // Cyan/green - titles, info toasts
	ColorHighlight  = "#ff5faf" // Magenta - key hints
	ColorSuccess    = "#87d75f"
	ColorWarning    = "#ff8700"
	ColorDanger     = "#ff0000"
	ColorMuted      = "#626262" // Gray - dimmed text, hints
	ColorText       = "#d0d0d0" // Light gray - toast body text
)

// kindColors maps a notification kind to its border/title color.
var kindColors = map[notify.Kind]string{
	notify.KindInfo:    ColorAccent,
	notify.KindSuccess: ColorSuccess,
	notify.KindWarning: ColorWarning,
	notify.KindError:   ColorDanger,
}

// KindColor returns the accent color for k, falling back to info.
func KindColor(k notify.Kind) string {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return ColorAccent
}

// kindIcons prefixes the toast title.
var kindIcons = map[notify.Kind]string{
	notify.KindInfo:    "●",
	notify.KindSuccess: "✓",
	notify.KindWarning: "!",
	notify.KindError:   "✗",
}

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - for the screen title
	Muted lipgloss.Style // Dimmed text (muted color)
	Hint  lipgloss.Style // Help/hint text
	Toast lipgloss.Style // Toast frame; border color is set per kind and opacity
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Toast: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1),
}
