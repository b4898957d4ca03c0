package ui

import (
	"errors"
	"fmt"
	"time"

	"toastfx/internal/anim"
	"toastfx/internal/animator"
	"toastfx/internal/element"
	"toastfx/internal/notify"

	"github.com/charmbracelet/bubbles/progress"
)

// Toast is one on-screen notification. It owns the element the animator drives.
type Toast struct {
	ID       int
	Msg      notify.Message
	El       *element.Element
	Anim     *animator.Animator
	Shown    time.Time // when the show animation started
	Lifetime time.Duration

	bar    progress.Model
	hiding bool
}

// newToast measures msg at width and binds an animator to a fresh element.
func newToast(id int, msg notify.Message, width int, lifetime time.Duration, cfg animator.Config, sched anim.Scheduler, opts ...animator.Option) *Toast {
	if msg.Lifetime > 0 {
		lifetime = msg.Lifetime
	}
	bar := progress.New(progress.WithSolidFill(KindColor(msg.Kind)), progress.WithoutPercentage())
	el := element.New()
	el.Measure(measureToast(msg, bar, width))

	opts = append([]animator.Option{animator.WithName(fmt.Sprintf("toast-%d", id))}, opts...)
	return &Toast{
		ID:       id,
		Msg:      msg,
		El:       el,
		Lifetime: lifetime,
		bar:      bar,
		Anim:     animator.New(el, cfg, sched, opts...),
	}
}

// show installs the initial transform and starts the entry animation.
func (t *Toast) show(now time.Time) (*anim.Playback, error) {
	if err := t.Anim.Setup(); err != nil {
		return nil, err
	}
	pb, err := t.Anim.PlayShow()
	if err != nil {
		return nil, err
	}
	t.Shown = now
	return pb, nil
}

// hide starts the exit animation, interrupting the entry animation if it is
// still running.
func (t *Toast) hide() (*anim.Playback, error) {
	pb, err := t.Anim.PlayHide()
	if errors.Is(err, animator.ErrAnimationInProgress) {
		t.Anim.Cancel()
		pb, err = t.Anim.PlayHide()
	}
	if err != nil {
		return nil, err
	}
	t.hiding = true
	return pb, nil
}

// remaining is the fraction of the lifetime left at now.
func (t *Toast) remaining(now time.Time) float64 {
	if t.Lifetime <= 0 || t.Shown.IsZero() {
		return 1
	}
	left := t.Lifetime - now.Sub(t.Shown)
	return clamp01(float64(left) / float64(t.Lifetime))
}

// View renders the toast's current animation frame.
func (t *Toast) View(now time.Time) string {
	return renderElement(t.El.Snapshot(), toastBox(t.Msg, t.bar, t.remaining(now)))
}
