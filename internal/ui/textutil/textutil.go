// Package textutil provides unicode-aware text fitting for toast boxes that
// shrink and grow a cell at a time.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut to fit.
const Ellipsis = "…"

// Truncate cuts s to at most maxWidth terminal columns, ending in an ellipsis
// when anything was dropped. Wide runes are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}

	out := make([]rune, 0, len(s))
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + Ellipsis
}

// ClipLines keeps the first n lines. When lines are dropped and n > 0 the last
// kept line is replaced by keep, so a footer such as a progress bar stays visible.
func ClipLines(lines []string, n int, keep string) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	if keep != "" {
		out[n-1] = keep
	}
	return out
}
