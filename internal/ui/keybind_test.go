package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("ctrl+c") == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("j") != nil {
		t.Error("expected j to have a nil command")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_HintsKeepOrder(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("s", tea.Quit, "success")
	reg.BindWithDesc("i", tea.Quit, "info")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDesc("s", tea.Quit, "saved")

	hints := reg.Hints()
	if len(hints) != 2 {
		t.Fatalf("Hints: expected 2, got %d (%v)", len(hints), hints)
	}
	if hints[0] != (Hint{Key: "s", Desc: "saved"}) {
		t.Errorf("Hints[0]: expected s/saved, got %v", hints[0])
	}
	if hints[1] != (Hint{Key: "i", Desc: "info"}) {
		t.Errorf("Hints[1]: expected i/info, got %v", hints[1])
	}

	keys := reg.Keys()
	if strings.Join(keys, ",") != "ctrl+c,i,s" {
		t.Errorf("Keys: expected ctrl+c,i,s, got %v", keys)
	}
}

func TestKeyHandler_Handle(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("x"))
	if !consumed || cmd == nil {
		t.Fatalf("x: consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}

	consumed, cmd = h.Handle(keyMsg("j"))
	if consumed || cmd != nil {
		t.Errorf("j: expected pass-through, got consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	if got := RenderKeybindHelp(nil); got != "" {
		t.Errorf("nil registry: expected empty, got %q", got)
	}

	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	if got := RenderKeybindHelp(reg); got != "" {
		t.Errorf("no descriptions: expected empty, got %q", got)
	}

	reg.BindWithDesc("d", tea.Quit, "dismiss")
	got := RenderKeybindHelp(reg)
	if !strings.Contains(got, "dismiss") {
		t.Errorf("expected help to mention dismiss, got %q", got)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
