// Package element models the visual surface a toast is drawn on and exposes its
// animatable properties as targets.
package element

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrNoTransform is returned when a scale property is read or written before a
// transform has been installed.
var ErrNoTransform = errors.New("element has no scale transform")

// Property identifies an animatable property of an Element.
type Property string

const (
	Opacity   Property = "opacity"
	ScaleX    Property = "scaleX"
	ScaleY    Property = "scaleY"
	Height    Property = "height"
	Width     Property = "width"
	MinHeight Property = "minHeight"
)

// Transform is a scale about a pivot point.
type Transform struct {
	ScaleX, ScaleY float64
	PivotX, PivotY float64
}

// Element is a Display Element. Width and Height are the layout box and are NaN
// when the element sizes to its content. All methods are safe for concurrent use.
type Element struct {
	mu sync.RWMutex

	width, height       float64
	minWidth, minHeight float64
	contentW, contentH  float64
	opacity             float64
	transform           *Transform
}

// New returns an auto-sized, fully opaque element with no transform.
func New() *Element {
	return &Element{
		width:   math.NaN(),
		height:  math.NaN(),
		opacity: 1,
	}
}

// NewSized returns an element with an explicit layout box.
func NewSized(w, h float64) *Element {
	e := New()
	e.width, e.height = w, h
	return e
}

// Measure records the intrinsic content size reported by the host.
func (e *Element) Measure(w, h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.contentW, e.contentH = w, h
}

// ActualWidth is the rendered width: the explicit width if set, else the
// measured content width, floored by the minimum width.
func (e *Element) ActualWidth() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return actual(e.width, e.contentW, e.minWidth)
}

// ActualHeight is the rendered height, resolved the same way as ActualWidth.
func (e *Element) ActualHeight() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return actual(e.height, e.contentH, e.minHeight)
}

func actual(explicit, content, floor float64) float64 {
	v := content
	if !math.IsNaN(explicit) {
		v = explicit
	}
	return math.Max(v, floor)
}

// Width returns the layout width (NaN when auto).
func (e *Element) Width() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width
}

// Height returns the layout height (NaN when auto).
func (e *Element) Height() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.height
}

// MinHeight returns the layout floor for the height.
func (e *Element) MinHeight() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.minHeight
}

// SetMinHeight sets the layout floor for the height.
func (e *Element) SetMinHeight(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.minHeight = math.Max(v, 0)
}

// SetMinWidth sets the layout floor for the width.
func (e *Element) SetMinWidth(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.minWidth = math.Max(v, 0)
}

// Opacity returns the current opacity in [0,1].
func (e *Element) Opacity() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opacity
}

// InstallTransform replaces the scale transform with a fresh one.
func (e *Element) InstallTransform(scaleX, scaleY float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = &Transform{ScaleX: scaleX, ScaleY: scaleY}
}

// Transform returns a copy of the scale transform.
func (e *Element) Transform() (Transform, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.transform == nil {
		return Transform{}, ErrNoTransform
	}
	return *e.transform, nil
}

// SetPivot moves the transform's pivot point.
func (e *Element) SetPivot(x, y float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transform == nil {
		return ErrNoTransform
	}
	e.transform.PivotX, e.transform.PivotY = x, y
	return nil
}

// Get reads an animatable property.
func (e *Element) Get(p Property) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	switch p {
	case Opacity:
		return e.opacity, nil
	case Width:
		return e.width, nil
	case Height:
		return e.height, nil
	case MinHeight:
		return e.minHeight, nil
	case ScaleX, ScaleY:
		if e.transform == nil {
			return 0, fmt.Errorf("get %s: %w", p, ErrNoTransform)
		}
		if p == ScaleX {
			return e.transform.ScaleX, nil
		}
		return e.transform.ScaleY, nil
	}
	return 0, fmt.Errorf("unknown property %q", p)
}

// Set writes an animatable property. Opacity is clamped to [0,1] and sizes to >= 0.
func (e *Element) Set(p Property, v float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch p {
	case Opacity:
		e.opacity = math.Min(math.Max(v, 0), 1)
	case Width:
		e.width = math.Max(v, 0)
	case Height:
		e.height = math.Max(v, 0)
	case MinHeight:
		e.minHeight = math.Max(v, 0)
	case ScaleX, ScaleY:
		if e.transform == nil {
			return fmt.Errorf("set %s: %w", p, ErrNoTransform)
		}
		if p == ScaleX {
			e.transform.ScaleX = v
		} else {
			e.transform.ScaleY = v
		}
	default:
		return fmt.Errorf("unknown property %q", p)
	}
	return nil
}

// Snapshot is a consistent copy of everything a renderer needs.
type Snapshot struct {
	ActualWidth, ActualHeight float64
	Height                    float64
	Opacity                   float64
	Transform                 Transform
	HasTransform              bool
}

// Snapshot reads all render state under one lock.
func (e *Element) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := Snapshot{
		ActualWidth:  actual(e.width, e.contentW, e.minWidth),
		ActualHeight: actual(e.height, e.contentH, e.minHeight),
		Height:       e.height,
		Opacity:      e.opacity,
	}
	if e.transform != nil {
		s.Transform = *e.transform
		s.HasTransform = true
	}
	return s
}
