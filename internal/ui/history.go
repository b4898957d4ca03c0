package ui

import (
	"fmt"
	"strings"

	"toastfx/internal/notify"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryView lists every notification received, newest at the bottom.
// It is the screen the toasts float over.
type HistoryView struct {
	entries  []notify.Message
	viewport viewport.Model
}

// Ensure HistoryView implements View.
var _ View = (*HistoryView)(nil)

const defaultHistoryWidth = 70
const defaultHistoryHeight = 18

// NewHistoryView creates an empty history.
func NewHistoryView() *HistoryView {
	vp := viewport.New(defaultHistoryWidth, defaultHistoryHeight)
	h := &HistoryView{viewport: vp}
	h.refreshContent()
	return h
}

// Init implements View.
func (h *HistoryView) Init() tea.Cmd {
	return h.viewport.Init()
}

// Update implements View.
func (h *HistoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case notify.Message:
		h.entries = append(h.entries, msg)
		h.refreshContent()
		return h, nil
	case tea.WindowSizeMsg:
		w := msg.Width - 2
		ht := msg.Height - 4 // title + help bar
		if w < 20 {
			w = 20
		}
		if ht < 4 {
			ht = 4
		}
		h.viewport.Width = w
		h.viewport.Height = ht
		h.refreshContent()
		return h, nil
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HistoryView) View() string {
	header := Styles.Title.Render("Notifications") + Styles.Muted.Render(fmt.Sprintf("  %d received", len(h.entries)))
	return header + "\n" + h.viewport.View()
}

// Len returns the number of recorded notifications.
func (h *HistoryView) Len() int {
	return len(h.entries)
}

// refreshContent rebuilds the viewport content from recorded messages.
func (h *HistoryView) refreshContent() {
	var lines []string
	for _, m := range h.entries {
		ts := m.Timestamp.Format("15:04:05")
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(KindColor(m.Kind))).Render(kindIcons[m.Kind])
		line := fmt.Sprintf("[%s] %s %s", ts, icon, m.Title)
		if m.Body != "" {
			line += Styles.Muted.Render(" - " + m.Body)
		}
		lines = append(lines, line)
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Muted.Render("No notifications yet.")
	}
	h.viewport.SetContent(content)
	h.viewport.GotoBottom()
}
