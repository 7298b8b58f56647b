package world

import "math"

// Reference height the fixed pixel offsets were tuned for.
const referenceHeight = 1080.0

// Animation tuning.
const (
	TotalFrames    = 11
	JumpFrame      = 0
	AnimationSpeed = 0.15
)

// Metrics holds every size derived from the logical screen resolution.
// Geometry is proportional to Width and Height so the world scales with
// the display.
type Metrics struct {
	Width, Height float64
	Scale         float64

	PlayerWidth  float64
	PlayerHeight float64
	PlayerSpeed  float64
	Gravity      float64
	JumpImpulse  float64
	FloorOffset  float64
	Margin       float64

	DoorWidth     float64
	DoorHeight    float64
	DoorBottomGap float64
	DoorReach     float64

	ItemBox   float64
	SwitchBox float64
}

// NewMetrics derives metrics for a width x height logical screen.
func NewMetrics(width, height int) Metrics {
	w, h := float64(width), float64(height)
	s := h / referenceHeight
	ph := math.Floor(h / 3)
	return Metrics{
		Width:         w,
		Height:        h,
		Scale:         s,
		PlayerHeight:  ph,
		PlayerWidth:   math.Floor(ph * 0.4),
		PlayerSpeed:   math.Floor(w / 140),
		Gravity:       0.5 * s,
		JumpImpulse:   -12 * s,
		FloorOffset:   math.Round(250 * s),
		Margin:        math.Floor(w / 4),
		DoorWidth:     math.Floor(w / 20),
		DoorHeight:    math.Floor(h / 4),
		DoorBottomGap: math.Round(50 * s),
		DoorReach:     math.Round(100 * s),
		ItemBox:       2 * math.Floor(w/80),
		SwitchBox:     2 * math.Floor(w/40),
	}
}

// FloorY is the lowest y the player's top edge may reach.
func (m Metrics) FloorY() float64 {
	return m.Height - m.PlayerHeight - m.FloorOffset
}

// Spawn is where a fresh player is placed.
func (m Metrics) Spawn() Vec {
	return Vec{X: math.Floor(m.Width / 2), Y: m.Height - m.PlayerHeight - 10}
}

// DoorRect returns the rectangle of the door on the given side. Doors sit
// just outside the visible area so the player walks off-screen to cross.
func (m Metrics) DoorRect(side Side) Rect {
	y := m.Height - m.DoorHeight - m.DoorBottomGap
	if side == Front {
		return Rect{X: m.Width, Y: y, W: m.DoorWidth, H: m.DoorHeight}
	}
	return Rect{X: -m.DoorWidth, Y: y, W: m.DoorWidth, H: m.DoorHeight}
}
