// Package notify defines the notification messages shown as toasts and a
// non-blocking emitter producers use to hand them to the host.
package notify
