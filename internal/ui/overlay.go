package ui

import "toastfx/internal/notify"

// ToastStack holds the visible toasts (oldest first) and the messages waiting
// for a free slot.
type ToastStack struct {
	Stack   []*Toast
	Pending []notify.Message
	Max     int
}

// Full reports whether another toast would exceed Max.
func (s *ToastStack) Full() bool {
	return s.Max > 0 && len(s.Stack) >= s.Max
}

// Push adds a toast to the top of the stack.
func (s *ToastStack) Push(t *Toast) {
	s.Stack = append(s.Stack, t)
}

// Enqueue parks a message until a slot frees up.
func (s *ToastStack) Enqueue(m notify.Message) {
	s.Pending = append(s.Pending, m)
}

// Dequeue returns the oldest pending message.
func (s *ToastStack) Dequeue() (notify.Message, bool) {
	if len(s.Pending) == 0 {
		return notify.Message{}, false
	}
	m := s.Pending[0]
	s.Pending = s.Pending[1:]
	return m, true
}

// Find returns the toast with id.
func (s *ToastStack) Find(id int) (*Toast, bool) {
	for _, t := range s.Stack {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Remove drops the toast with id and reports whether it was present.
func (s *ToastStack) Remove(id int) bool {
	for i, t := range s.Stack {
		if t.ID == id {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Newest returns the most recently pushed toast that is not already hiding.
func (s *ToastStack) Newest() (*Toast, bool) {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if !s.Stack[i].hiding {
			return s.Stack[i], true
		}
	}
	return nil, false
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.Stack)
}
