// Package ui hosts toast notifications in a Bubble Tea program.
//
// Core pieces:
//   - AppModel: root model; receives notify.Message values and owns the toasts
//   - Toast: one notification, its Display Element, and the animator driving it
//   - ToastStack: visible toasts plus the messages waiting for a free slot
//   - HistoryView: scrollback of every notification received
//
// Animation frames come from tea.Tick; each FrameMsg advances the shared
// anim.FrameScheduler, and the next View call renders the sampled values.
package ui
