package element

// Target is an animatable property bound to an element.
type Target struct {
	El       *Element
	Property Property
}

// TargetOf binds p on e.
func TargetOf(e *Element, p Property) Target {
	return Target{El: e, Property: p}
}

// Get reads the bound property.
func (t Target) Get() (float64, error) {
	return t.El.Get(t.Property)
}

// Set writes the bound property.
func (t Target) Set(v float64) error {
	return t.El.Set(t.Property, v)
}

func (t Target) String() string {
	return string(t.Property)
}
