package animator

// pivot is the point scale is applied about.
type pivot struct {
	x, y float64
}

// measurePivot reads the bottom-right corner of the element's rendered box.
// It is re-measured on every Play call.
// Must be called with a.mu held.
func (a *Animator) measurePivot() pivot {
	return pivot{x: a.el.ActualWidth(), y: a.el.ActualHeight()}
}
