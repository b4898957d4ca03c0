package ui

import "time"

// FrameMsg drives one animation frame.
type FrameMsg struct {
	Time time.Time
}

// ToastExpiredMsg is sent when a toast's lifetime runs out.
type ToastExpiredMsg struct {
	ID int
}

// ToastHiddenMsg is sent when a toast's hide animation finishes (or fails).
// The toast is removed from the screen on receipt.
type ToastHiddenMsg struct {
	ID  int
	Err error
}

// DismissToastMsg hides the newest visible toast early (d).
type DismissToastMsg struct{}

// ToastErrorMsg reports an animation failure; the toast is dropped.
type ToastErrorMsg struct {
	ID  int
	Err error
}
