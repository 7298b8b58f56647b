// Package player implements the player's kinematics, animation state and
// inventory. It knows nothing about rooms: the room manager reads the
// player's bounding box after each Update and repositions it on door
// crossings.
package player

import (
	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/world"
)

// Facing is the horizontal direction the sprite looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of a facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the controllable character.
type Player struct {
	X, Y      float64
	VelocityY float64
	Width     float64
	Height    float64

	Facing   Facing
	Moving   bool
	Airborne bool

	frame     int
	animTimer float64

	Inventory         Inventory
	HasInversionPower bool

	m world.Metrics
}

// New creates a player at the spawn point of a screen laid out with m.
func New(m world.Metrics) *Player {
	spawn := m.Spawn()
	return &Player{
		X:      spawn.X,
		Y:      spawn.Y,
		Width:  m.PlayerWidth,
		Height: m.PlayerHeight,
		Facing: FacingRight,
		m:      m,
	}
}

// Metrics returns the screen metrics the player was created with.
func (p *Player) Metrics() world.Metrics {
	return p.m
}

// Rect returns the player's bounding box.
func (p *Player) Rect() world.Rect {
	return world.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Update advances the player by one tick.
func (p *Player) Update(in input.Snapshot) {
	left := in.IsHeld(input.ActionMoveLeft)
	right := in.IsHeld(input.ActionMoveRight)
	switch {
	case right:
		p.X += p.m.PlayerSpeed
		p.Facing = FacingRight
		p.Moving = true
	case left:
		p.X -= p.m.PlayerSpeed
		p.Facing = FacingLeft
		p.Moving = true
	default:
		p.Moving = false
	}

	if in.JustPressed(input.ActionJump) && !p.Airborne {
		p.VelocityY = p.m.JumpImpulse
		p.Airborne = true
		p.frame = world.JumpFrame
	}

	p.VelocityY += p.m.Gravity
	p.Y += p.VelocityY

	if floor := p.m.FloorY(); p.Y > floor {
		p.Y = floor
		p.VelocityY = 0
		p.Airborne = false
	}

	p.X = world.Clamp(p.X, -p.m.Margin, p.m.Width-p.Width+p.m.Margin)
	p.Y = world.Clamp(p.Y, 0, p.m.Height-p.Height)

	p.animate()
}

func (p *Player) animate() {
	if p.Airborne {
		return
	}
	if !p.Moving {
		p.frame = 0
		return
	}
	p.animTimer += world.AnimationSpeed
	if p.animTimer >= 1 {
		p.animTimer = 0
		p.frame = (p.frame + 1) % world.TotalFrames
	}
}

// Frame returns the animation frame to display.
func (p *Player) Frame() int {
	if p.Airborne {
		return world.JumpFrame
	}
	return p.frame
}

// Collect applies an item's effect and stores it.
func (p *Player) Collect(kind world.ItemKind) {
	if kind.GrantsInversion() {
		p.HasInversionPower = true
	}
	p.Inventory.Add(kind)
}

// Keys returns how many keys the player holds.
func (p *Player) Keys() int {
	return p.Inventory.Count(world.ItemKey)
}

// PlaceAt moves the player horizontally, as done when entering a room.
func (p *Player) PlaceAt(x float64) {
	p.X = x
}
