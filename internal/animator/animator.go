// Package animator plays the entry and exit transitions of a toast.
//
// An Animator is bound to one Display Element. Setup installs the initial
// transform; PlayShow grows and fades the element in; PlayHide shrinks and fades
// it out. Each Play call starts one animation group on the scheduler and returns
// its Playback immediately.
package animator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"toastfx/internal/anim"
	"toastfx/internal/easing"
	"toastfx/internal/element"
	"toastfx/internal/trace"

	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var (
	// ErrNotInitialized is returned by Play calls made before Setup.
	ErrNotInitialized = errors.New("animator not initialized: call Setup first")
	// ErrAnimationInProgress is returned when a group on the element is still running.
	ErrAnimationInProgress = errors.New("animation in progress")
)

// Config holds the per-direction durations. ShowCurve and HideCurve, when set,
// replace the quartic curves on the geometry tracks; opacity keeps its quadratic fade.
type Config struct {
	ShowDuration time.Duration
	HideDuration time.Duration
	ShowCurve    easing.Curve
	HideCurve    easing.Curve
}

// State is where the element is in its show/hide lifecycle.
type State int

const (
	Uninitialized State = iota
	Ready
	Showing
	Shown
	Hiding
	Hidden
	Interrupted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Showing:
		return "showing"
	case Shown:
		return "shown"
	case Hiding:
		return "hiding"
	case Hidden:
		return "hidden"
	case Interrupted:
		return "interrupted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Animator orchestrates the show and hide groups for one element.
type Animator struct {
	el    *element.Element
	cfg   Config
	sched anim.Scheduler

	name   string
	logger *log.Logger
	tracer oteltrace.Tracer

	mu      sync.Mutex
	state   State
	current *anim.Playback
}

// Option configures an Animator.
type Option func(*Animator)

// WithName labels log lines and spans.
func WithName(name string) Option {
	return func(a *Animator) { a.name = name }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(l *log.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTracer sets the tracer used for one span per animation group.
func WithTracer(t oteltrace.Tracer) Option {
	return func(a *Animator) {
		if t != nil {
			a.tracer = t
		}
	}
}

// New binds an animator to el. The element is not touched until Setup.
func New(el *element.Element, cfg Config, sched anim.Scheduler, opts ...Option) *Animator {
	a := &Animator{
		el:     el,
		cfg:    cfg,
		sched:  sched,
		name:   "toast",
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tracer == nil {
		a.tracer = (*trace.OTLPExporter)(nil).Tracer()
	}
	return a
}

// Config returns the configured durations.
func (a *Animator) Config() Config { return a.cfg }

// State returns the current lifecycle state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Setup installs a fresh transform with scaleX = 1 and scaleY = 0: full width,
// collapsed to zero height. Calling it again with nothing running is a no-op in effect.
func (a *Animator) Setup() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inFlight() {
		return fmt.Errorf("setup %s: %w", a.name, ErrAnimationInProgress)
	}
	a.el.InstallTransform(1, 0)
	a.state = Ready
	a.current = nil
	return nil
}

// PlayShow anchors the pivot at the element's current bottom-right corner and starts
// the grow and fade-in group.
func (a *Animator) PlayShow() (*anim.Playback, error) {
	return a.play("show", Showing, Shown, showTracks, a.cfg.ShowDuration, a.cfg.ShowCurve, nil)
}

// PlayHide anchors the pivot, drops the height floor, and starts the shrink and
// fade-out group from the height rendered at call time.
func (a *Animator) PlayHide() (*anim.Playback, error) {
	return a.play("hide", Hiding, Hidden, hideTracks, a.cfg.HideDuration, a.cfg.HideCurve, func() {
		a.el.SetMinHeight(0)
	})
}

// Cancel stops the running group, if any. The element keeps its current values.
func (a *Animator) Cancel() {
	a.mu.Lock()
	pb := a.current
	a.mu.Unlock()
	if pb != nil {
		pb.Cancel()
	}
}

// inFlight must be called with a.mu held.
func (a *Animator) inFlight() bool {
	return a.current != nil && !a.current.Finished()
}

func (a *Animator) play(kind string, running, settled State, tracks []track, d time.Duration, curve easing.Curve, before func()) (*anim.Playback, error) {
	pb, span, err := a.start(kind, running, tracks, d, curve, before)
	if err != nil {
		return nil, err
	}
	// Registered without the lock: zero-length groups are already finished and
	// run the callback inline.
	pb.OnDone(func(err error) {
		span.SetAttributes(trace.Outcome(err))
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		a.settle(pb, settled, kind, err)
	})
	return pb, nil
}

func (a *Animator) start(kind string, running State, tracks []track, d time.Duration, curve easing.Curve, before func()) (*anim.Playback, oteltrace.Span, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Uninitialized {
		return nil, nil, fmt.Errorf("%s %s: %w", kind, a.name, ErrNotInitialized)
	}
	prev, err := a.el.Transform()
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w: %w", kind, a.name, ErrNotInitialized, err)
	}
	if a.inFlight() {
		return nil, nil, fmt.Errorf("%s %s (state %s): %w", kind, a.name, a.state, ErrAnimationInProgress)
	}
	if d < 0 {
		return nil, nil, fmt.Errorf("%s %s: negative duration %v", kind, a.name, d)
	}

	// Measured before the height floor is dropped: the group starts from what is
	// on screen now.
	p := a.measurePivot()
	prevMinHeight := a.el.MinHeight()
	if before != nil {
		before()
	}
	if err := a.el.SetPivot(p.x, p.y); err != nil {
		a.el.SetMinHeight(prevMinHeight)
		return nil, nil, fmt.Errorf("%s %s: %w", kind, a.name, err)
	}

	members := specs(a.el, tracks, p, d, curve)
	_, span := a.tracer.Start(context.Background(), "toast."+kind,
		oteltrace.WithAttributes(trace.GroupAttributes(a.name, d, len(members), p.x, p.y)...))

	pb, err := a.sched.Start(a.name+"/"+kind, members)
	if err != nil {
		a.el.SetMinHeight(prevMinHeight)
		_ = a.el.SetPivot(prev.PivotX, prev.PivotY)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, nil, fmt.Errorf("%s %s: %w", kind, a.name, err)
	}

	a.state = running
	a.current = pb
	a.logger.Printf("%s: %s started (duration=%v pivot=%.0f,%.0f)", a.name, kind, d, p.x, p.y)
	return pb, span, nil
}

// settle records the outcome of pb unless a newer group or Setup has replaced it.
func (a *Animator) settle(pb *anim.Playback, settled State, kind string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != pb {
		return
	}
	if err != nil {
		a.state = Interrupted
		a.logger.Printf("%s: %s stopped: %v", a.name, kind, err)
		return
	}
	a.state = settled
	a.logger.Printf("%s: %s finished", a.name, kind)
}
