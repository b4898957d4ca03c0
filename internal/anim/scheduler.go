package anim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Scheduler starts groups of specs and drives them concurrently to completion.
type Scheduler interface {
	Start(name string, specs []Spec) (*Playback, error)
}

// Clock supplies the current time; tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// group is a set of specs started together.
type group struct {
	specs    []Spec
	start    time.Time
	playback *Playback
}

// sample writes every member's value at now and reports whether the group is complete.
func (g *group) sample(now time.Time) (bool, error) {
	elapsed := now.Sub(g.start)
	for _, s := range g.specs {
		if err := s.Target.Set(s.Value(elapsed)); err != nil {
			return true, fmt.Errorf("group %s: %w", g.playback.name, err)
		}
	}
	return elapsed >= g.playback.duration, nil
}

// FrameScheduler samples all active groups once per frame. Frames come either
// from Run's ticker or from a host calling Tick directly.
type FrameScheduler struct {
	clock    Clock
	interval time.Duration

	mu     sync.Mutex
	groups []*group
	wake   chan struct{}
}

// Option configures a FrameScheduler.
type Option func(*FrameScheduler)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *FrameScheduler) { s.clock = c }
}

// WithFPS sets the frame rate used by Run.
func WithFPS(fps int) Option {
	return func(s *FrameScheduler) {
		if fps > 0 {
			s.interval = FrameInterval(fps)
		}
	}
}

// FrameInterval converts a frame rate to the time between frames.
func FrameInterval(fps int) time.Duration {
	return time.Duration(harmonica.FPS(fps) * float64(time.Second))
}

// NewFrameScheduler creates a scheduler with no active groups.
func NewFrameScheduler(opts ...Option) *FrameScheduler {
	s := &FrameScheduler{
		clock:    systemClock{},
		interval: FrameInterval(DefaultFPS),
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interval returns the time between frames.
func (s *FrameScheduler) Interval() time.Duration { return s.interval }

// Start validates specs, writes every start value, and registers the group.
// It returns without waiting for the group to finish.
func (s *FrameScheduler) Start(name string, specs []Spec) (*Playback, error) {
	if len(specs) == 0 {
		return nil, errors.New("start: empty animation group")
	}
	var longest time.Duration
	for _, sp := range specs {
		if err := sp.validate(); err != nil {
			return nil, fmt.Errorf("start %s: %w", name, err)
		}
		// Probe each target so a missing transform fails before anything is written.
		if _, err := sp.Target.Get(); err != nil {
			return nil, fmt.Errorf("start %s: %w", name, err)
		}
		longest = max(longest, sp.Duration)
	}

	now := s.clock.Now()
	g := &group{
		specs:    append([]Spec(nil), specs...),
		start:    now,
		playback: newPlayback(name, now, longest),
	}
	done, err := g.sample(now)
	if err != nil {
		return nil, err
	}
	if done {
		// Zero-length groups land on their end values immediately.
		g.playback.finish(nil)
		return g.playback, nil
	}

	g.playback.cancel = func() { s.cancel(g) }

	s.mu.Lock()
	s.groups = append(s.groups, g)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return g.playback, nil
}

// Tick samples every active group at now, retires finished ones, and returns the
// number still running.
func (s *FrameScheduler) Tick(now time.Time) int {
	type result struct {
		pb  *Playback
		err error
	}
	var finished []result

	s.mu.Lock()
	live := s.groups[:0]
	for _, g := range s.groups {
		done, err := g.sample(now)
		if done {
			finished = append(finished, result{g.playback, err})
			continue
		}
		live = append(live, g)
	}
	for i := len(live); i < len(s.groups); i++ {
		s.groups[i] = nil
	}
	s.groups = live
	n := len(s.groups)
	s.mu.Unlock()

	// Callbacks may start new groups, so they run without the lock held.
	for _, r := range finished {
		r.pb.finish(r.err)
	}
	return n
}

// Active returns the number of running groups.
func (s *FrameScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.groups)
}

// Run ticks at the configured frame rate until ctx is done. It sleeps while no
// group is active. Groups still running when ctx ends are canceled.
func (s *FrameScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.cancelAll()

	for {
		if s.Active() == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.wake:
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick(s.clock.Now())
		}
	}
}

func (s *FrameScheduler) cancel(target *group) {
	s.mu.Lock()
	found := false
	for i, g := range s.groups {
		if g == target {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		target.playback.finish(ErrCanceled)
	}
}

func (s *FrameScheduler) cancelAll() {
	s.mu.Lock()
	groups := s.groups
	s.groups = nil
	s.mu.Unlock()
	for _, g := range groups {
		g.playback.finish(ErrCanceled)
	}
}
