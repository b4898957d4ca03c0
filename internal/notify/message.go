package notify

import "time"

// Kind is the severity of a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Message is one notification to show as a toast.
type Message struct {
	Title     string
	Body      string
	Kind      Kind
	Timestamp time.Time
	Lifetime  time.Duration // zero uses the host default
}

// ChanEmitter emits messages to a channel for the toast host to consume.
type ChanEmitter struct {
	Ch chan<- Message
}

// Emit sends the message to the channel (non-blocking; drops if full).
// It reports whether the message was queued.
func (e *ChanEmitter) Emit(m Message) bool {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	if m.Kind == "" {
		m.Kind = KindInfo
	}
	select {
	case e.Ch <- m:
		return true
	default:
		// Channel full; drop rather than block the producer
		return false
	}
}
