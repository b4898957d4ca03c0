package ui

import (
	"testing"

	"toastfx/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastStack_Full(t *testing.T) {
	var s ToastStack
	for i := 1; i <= 10; i++ {
		s.Push(&Toast{ID: i})
	}
	assert.False(t, s.Full(), "Max 0 means unlimited")

	s = ToastStack{Max: 2}
	s.Push(&Toast{ID: 1})
	assert.False(t, s.Full())
	s.Push(&Toast{ID: 2})
	assert.True(t, s.Full())
}

func TestToastStack_PendingIsFIFO(t *testing.T) {
	var s ToastStack
	_, ok := s.Dequeue()
	assert.False(t, ok)

	s.Enqueue(notify.Message{Title: "first"})
	s.Enqueue(notify.Message{Title: "second"})

	m, ok := s.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "first", m.Title)
	m, ok = s.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "second", m.Title)
	_, ok = s.Dequeue()
	assert.False(t, ok)
}

func TestToastStack_FindRemove(t *testing.T) {
	var s ToastStack
	s.Push(&Toast{ID: 1})
	s.Push(&Toast{ID: 2})
	s.Push(&Toast{ID: 3})

	got, ok := s.Find(2)
	require.True(t, ok)
	assert.Equal(t, 2, got.ID)

	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	_, ok = s.Find(2)
	assert.False(t, ok)

	ids := []int{}
	for _, toast := range s.Stack {
		ids = append(ids, toast.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)
	assert.Equal(t, 2, s.Len())
}

func TestToastStack_NewestSkipsHiding(t *testing.T) {
	var s ToastStack
	_, ok := s.Newest()
	assert.False(t, ok)

	s.Push(&Toast{ID: 1})
	s.Push(&Toast{ID: 2, hiding: true})

	got, ok := s.Newest()
	require.True(t, ok)
	assert.Equal(t, 1, got.ID)

	s.Stack[0].hiding = true
	_, ok = s.Newest()
	assert.False(t, ok)
}
