package anim

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCanceled is the result of a playback stopped before it completed.
var ErrCanceled = errors.New("animation canceled")

// Playback is the completion signal for a started group.
type Playback struct {
	name     string
	started  time.Time
	duration time.Duration

	done chan struct{}

	mu        sync.Mutex
	finished  bool
	err       error
	callbacks []func(error)
	cancel    func()
}

func newPlayback(name string, started time.Time, duration time.Duration) *Playback {
	return &Playback{
		name:     name,
		started:  started,
		duration: duration,
		done:     make(chan struct{}),
	}
}

// Name returns the group name given to Start.
func (p *Playback) Name() string { return p.name }

// Started returns the instant every member of the group began.
func (p *Playback) Started() time.Time { return p.started }

// Duration returns the longest member duration, i.e. the group's completion time.
func (p *Playback) Duration() time.Duration { return p.duration }

// Done is closed when the group completes or is canceled.
func (p *Playback) Done() <-chan struct{} { return p.done }

// Finished reports whether the group has completed or been canceled.
func (p *Playback) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished
}

// Err returns nil on success, ErrCanceled after Cancel, or the error that stopped the group.
// It returns nil while the group is still running.
func (p *Playback) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Wait blocks until the group finishes or ctx is done.
func (p *Playback) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnDone registers fn to run once the group finishes. If it already has, fn runs
// immediately on the caller's goroutine.
func (p *Playback) OnDone(fn func(error)) {
	p.mu.Lock()
	if p.finished {
		err := p.err
		p.mu.Unlock()
		fn(err)
		return
	}
	p.callbacks = append(p.callbacks, fn)
	p.mu.Unlock()
}

// Cancel stops the group where it is. Properties keep their last sampled values.
func (p *Playback) Cancel() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// finish records the result and runs callbacks. Only the first call has effect.
func (p *Playback) finish(err error) {
	p.mu.Lock()
	if p.finished {
		p.mu.Unlock()
		return
	}
	p.finished = true
	p.err = err
	cbs := p.callbacks
	p.callbacks = nil
	p.mu.Unlock()

	close(p.done)
	for _, fn := range cbs {
		fn(err)
	}
}
