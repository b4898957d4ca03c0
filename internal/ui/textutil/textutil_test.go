package textutil

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Saved", 10, "Saved"},
		{"exact", "Saved", 5, "Saved"},
		{"cut", "Upload failed", 7, "Upload…"},
		{"zero", "Saved", 0, ""},
		{"only ellipsis", "Saved", 1, "…"},
		{"wide runes", "保存しました", 5, "保存…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestClipLines(t *testing.T) {
	lines := []string{"title", "body 1", "body 2", "bar"}
	assert.Equal(t, lines, ClipLines(lines, 4, "bar"))
	assert.Equal(t, []string{"title", "bar"}, ClipLines(lines, 2, "bar"))
	assert.Equal(t, []string{"title", "body 1"}, ClipLines(lines, 2, ""))
	assert.Nil(t, ClipLines(lines, 0, "bar"))

	// The input is not modified.
	assert.Equal(t, "body 1", lines[1])
}
