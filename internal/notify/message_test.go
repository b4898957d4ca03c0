package notify

import (
	"testing"
	"time"
)

func TestKind_Constants(t *testing.T) {
	if KindInfo != "info" {
		t.Errorf("KindInfo: expected 'info', got %q", KindInfo)
	}
	if KindError != "error" {
		t.Errorf("KindError: expected 'error', got %q", KindError)
	}
}

func TestChanEmitter_Emit_SetsDefaults(t *testing.T) {
	ch := make(chan Message, 1)
	emitter := &ChanEmitter{Ch: ch}

	if !emitter.Emit(Message{Title: "saved"}) {
		t.Fatal("Emit: expected message to be queued")
	}

	got := <-ch
	if got.Timestamp.IsZero() {
		t.Error("Emit: expected timestamp to be set when zero")
	}
	if got.Kind != KindInfo {
		t.Errorf("Emit: expected default kind %q, got %q", KindInfo, got.Kind)
	}
}

func TestChanEmitter_Emit_PreservesFields(t *testing.T) {
	ch := make(chan Message, 1)
	emitter := &ChanEmitter{Ch: ch}

	ts := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	emitter.Emit(Message{Title: "x", Kind: KindWarning, Timestamp: ts})

	got := <-ch
	if !got.Timestamp.Equal(ts) {
		t.Errorf("Emit: expected preserved timestamp %v, got %v", ts, got.Timestamp)
	}
	if got.Kind != KindWarning {
		t.Errorf("Emit: expected kind %q, got %q", KindWarning, got.Kind)
	}
}

func TestChanEmitter_Emit_DropsWhenFull(t *testing.T) {
	ch := make(chan Message, 1)
	emitter := &ChanEmitter{Ch: ch}

	emitter.Emit(Message{Title: "first"})
	if emitter.Emit(Message{Title: "dropped"}) {
		t.Error("Emit: expected second message to be dropped")
	}

	got := <-ch
	if got.Title != "first" {
		t.Errorf("Emit: expected 'first', got %q", got.Title)
	}
}
