package world

// NoTarget marks a door that leads nowhere.
const NoTarget = -1

// Door is one edge of the room graph: a rectangle on a room's side and the
// id of the room it leads to.
type Door struct {
	Side   Side
	Rect   Rect
	Target int
}

// NewDoor creates a door on the given side of a room laid out with m.
func NewDoor(m Metrics, side Side, target int) Door {
	return Door{
		Side:   side,
		Rect:   m.DoorRect(side),
		Target: target,
	}
}

// HasTarget reports whether crossing the door moves to another room.
func (d Door) HasTarget() bool {
	return d.Target != NoTarget
}

// CrossingRect returns the door rectangle widened by reach, which is the
// area the player has to touch to cross.
func (d Door) CrossingRect(reach float64) Rect {
	return d.Rect.Widen(reach)
}
