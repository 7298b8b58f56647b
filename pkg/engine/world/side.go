package world

// Side names one of the two doors every room carries.
type Side int

// Side constants
const (
	Front Side = iota // right screen edge
	Back              // left screen edge
)

// AllSides returns the door sides in resolution order.
func AllSides() []Side {
	return []Side{Front, Back}
}

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// IsValid returns true if the side is Front or Back
func (s Side) IsValid() bool {
	return s == Front || s == Back
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	switch s {
	case Front:
		return Back
	case Back:
		return Front
	default:
		return s
	}
}
