package input

// Snapshot is everything the simulation sees of the input devices for one
// tick. Held covers actions whose key is down; Pressed only those that went
// down this tick.
type Snapshot struct {
	Held    ActionSet
	Pressed ActionSet

	PointerX, PointerY float64
	PointerMoved       bool
	Clicked            bool
}

// IsHeld reports whether the action's key is currently down.
func (s Snapshot) IsHeld(a Action) bool {
	return s.Held.Has(a)
}

// JustPressed reports whether the action was triggered this tick.
func (s Snapshot) JustPressed(a Action) bool {
	return s.Pressed.Has(a)
}

// FromCodes builds a snapshot by applying the current bindings to the raw
// codes that are down and the codes that went down this tick. A pressed code
// is also treated as held.
func FromCodes(held, pressed []string) Snapshot {
	var s Snapshot
	for _, code := range held {
		s.Held = s.Held.With(MapCode(code))
	}
	for _, code := range pressed {
		a := MapCode(code)
		s.Pressed = s.Pressed.With(a)
		s.Held = s.Held.With(a)
	}
	return s
}

// Pressing is a test and scripting helper: a snapshot where the given actions
// were just pressed (and are therefore held).
func Pressing(actions ...Action) Snapshot {
	set := NewActionSet(actions...)
	return Snapshot{Held: set, Pressed: set}
}

// Holding returns a snapshot where the given actions are held but none was
// pressed this tick.
func Holding(actions ...Action) Snapshot {
	return Snapshot{Held: NewActionSet(actions...)}
}
