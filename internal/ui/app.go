package ui

import (
	"context"
	"io"
	"log"
	"time"

	"toastfx/internal/anim"
	"toastfx/internal/animator"
	"toastfx/internal/config"
	"toastfx/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// incomingMsg wraps a message read from the Incoming channel so the listener
// can be re-armed after it is handled.
type incomingMsg struct {
	notify.Message
}

// AppModel is the root model: a notification history with a column of toasts
// to its right. It owns every toast element and decides when each one is set
// up, shown, and hidden.
type AppModel struct {
	Config     config.Config
	Sched      *anim.FrameScheduler
	Toasts     ToastStack
	History    *HistoryView
	KeyHandler *KeyHandler
	Incoming   <-chan notify.Message

	logger  *log.Logger
	tracer  oteltrace.Tracer
	clock   anim.Clock
	ctx     context.Context
	animCfg animator.Config

	nextID  int
	ticking bool
	width   int
}

// AppOption configures an AppModel.
type AppOption func(*AppModel)

// WithIncoming makes the model listen for messages on ch.
func WithIncoming(ch <-chan notify.Message) AppOption {
	return func(a *AppModel) { a.Incoming = ch }
}

// WithAppLogger sets the logger passed to every toast animator.
func WithAppLogger(l *log.Logger) AppOption {
	return func(a *AppModel) { a.logger = l }
}

// WithAppTracer sets the tracer passed to every toast animator.
func WithAppTracer(t oteltrace.Tracer) AppOption {
	return func(a *AppModel) { a.tracer = t }
}

// WithContext bounds the goroutines that wait on hide animations; they give up
// once ctx is done, e.g. after the program quits.
func WithContext(ctx context.Context) AppOption {
	return func(a *AppModel) { a.ctx = ctx }
}

// WithAppClock replaces the wall clock for animations and lifetimes.
func WithAppClock(c anim.Clock) AppOption {
	return func(a *AppModel) { a.clock = c }
}

// NewAppModel creates the root application model.
func NewAppModel(cfg config.Config, opts ...AppOption) *AppModel {
	a := &AppModel{
		Config:  cfg,
		History: NewHistoryView(),
		logger:  log.New(io.Discard, "", 0),
		clock:   wallClock{},
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.animCfg = animator.Config{ShowDuration: cfg.ShowDuration, HideDuration: cfg.HideDuration}
	if show, hide, err := cfg.Curves(); err != nil {
		a.logger.Printf("config: %v; keeping default curves", err)
	} else {
		a.animCfg.ShowCurve, a.animCfg.HideCurve = show, hide
	}
	a.Sched = anim.NewFrameScheduler(anim.WithClock(a.clock), anim.WithFPS(cfg.FPS))
	a.Toasts.Max = cfg.MaxVisible

	reg := NewKeybindRegistry()
	reg.BindWithDesc("i", pushCmd(notify.KindInfo, "Heads up", "Something happened in the background."), "info")
	reg.BindWithDesc("s", pushCmd(notify.KindSuccess, "Saved", "Your changes were written to disk."), "success")
	reg.BindWithDesc("w", pushCmd(notify.KindWarning, "Disk almost full", "Less than 5% free space remains."), "warning")
	reg.BindWithDesc("e", pushCmd(notify.KindError, "Upload failed", "The server closed the connection."), "error")
	reg.BindWithDesc("d", func() tea.Msg { return DismissToastMsg{} }, "dismiss")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	a.KeyHandler = NewKeyHandler(reg)
	return a
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

func pushCmd(kind notify.Kind, title, body string) tea.Cmd {
	return func() tea.Msg {
		return notify.Message{Kind: kind, Title: title, Body: body, Timestamp: time.Now()}
	}
}

// AsTeaModel returns a tea.Model backed by a.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.History.Init(), a.listen())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case incomingMsg:
		return a, tea.Batch(a.receive(msg.Message), a.listen())
	case notify.Message:
		return a, a.receive(msg)
	case FrameMsg:
		a.Sched.Tick(msg.Time)
		if a.Toasts.Len() == 0 && a.Sched.Active() == 0 {
			a.ticking = false
			return a, nil
		}
		return a, a.frame()
	case ToastExpiredMsg:
		return a, a.hide(msg.ID)
	case DismissToastMsg:
		if t, ok := a.Toasts.Newest(); ok {
			return a, a.hide(t.ID)
		}
		return a, nil
	case ToastHiddenMsg:
		if msg.Err != nil {
			a.logger.Printf("toast-%d: hide ended early: %v", msg.ID, msg.Err)
		}
		a.Toasts.Remove(msg.ID)
		return a, a.promote()
	case ToastErrorMsg:
		a.logger.Printf("toast-%d: %v", msg.ID, msg.Err)
		a.Toasts.Remove(msg.ID)
		return a, a.promote()
	case tea.WindowSizeMsg:
		a.width = msg.Width
		inner := tea.WindowSizeMsg{Width: msg.Width - a.Config.Width - 1, Height: msg.Height}
		v, cmd := a.History.Update(inner)
		a.History = v.(*HistoryView)
		return a, cmd
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.History.Update(msg)
	a.History = v.(*HistoryView)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	now := a.clock.Now()
	var toasts []string
	for _, t := range a.Toasts.Stack {
		if v := t.View(now); v != "" {
			toasts = append(toasts, v)
		}
	}
	column := lipgloss.NewStyle().Width(a.Config.Width).Render(lipgloss.JoinVertical(lipgloss.Right, toasts...))
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.History.View(), " ", column)
	return body + "\n" + RenderKeybindHelp(a.KeyHandler.Registry)
}

// listen waits for the next message on Incoming.
func (a *AppModel) listen() tea.Cmd {
	if a.Incoming == nil {
		return nil
	}
	ch := a.Incoming
	return func() tea.Msg {
		m, ok := <-ch
		if !ok {
			return nil
		}
		return incomingMsg{m}
	}
}

// receive records m and shows it, or queues it when the screen is full.
func (a *AppModel) receive(m notify.Message) tea.Cmd {
	v, _ := a.History.Update(m)
	a.History = v.(*HistoryView)
	if a.Toasts.Full() {
		a.Toasts.Enqueue(m)
		return nil
	}
	return a.show(m)
}

// show creates a toast for m and starts its entry animation and lifetime timer.
func (a *AppModel) show(m notify.Message) tea.Cmd {
	a.nextID++
	t := newToast(a.nextID, m, a.Config.Width, a.Config.Lifetime, a.animCfg, a.Sched,
		animator.WithLogger(a.logger),
		animator.WithTracer(a.tracer),
	)
	if _, err := t.show(a.clock.Now()); err != nil {
		a.logger.Printf("toast-%d: show: %v", t.ID, err)
		return nil
	}
	a.Toasts.Push(t)

	cmds := []tea.Cmd{a.ensureTicking()}
	if t.Lifetime > 0 {
		id := t.ID
		cmds = append(cmds, tea.Tick(t.Lifetime, func(time.Time) tea.Msg {
			return ToastExpiredMsg{ID: id}
		}))
	}
	return tea.Batch(cmds...)
}

// hide starts the exit animation for id; the toast is removed once it finishes.
func (a *AppModel) hide(id int) tea.Cmd {
	t, ok := a.Toasts.Find(id)
	if !ok || t.hiding {
		return nil
	}
	pb, err := t.hide()
	if err != nil {
		return func() tea.Msg { return ToastErrorMsg{ID: id, Err: err} }
	}
	return tea.Batch(a.ensureTicking(), waitHidden(a.ctx, id, pb))
}

// waitHidden turns the hide playback's completion into a ToastHiddenMsg. It
// returns nil if ctx ends first.
func waitHidden(ctx context.Context, id int, pb *anim.Playback) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-pb.Done():
			return ToastHiddenMsg{ID: id, Err: pb.Err()}
		case <-ctx.Done():
			return nil
		}
	}
}

// promote shows queued messages while there is room.
func (a *AppModel) promote() tea.Cmd {
	var cmds []tea.Cmd
	for !a.Toasts.Full() {
		m, ok := a.Toasts.Dequeue()
		if !ok {
			break
		}
		cmds = append(cmds, a.show(m))
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) ensureTicking() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return a.frame()
}

func (a *AppModel) frame() tea.Cmd {
	return tea.Tick(a.Sched.Interval(), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}
