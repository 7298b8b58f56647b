package room

import (
	"fmt"
	"math"
	"time"

	"loopescape/pkg/engine/world"
)

// Checkpoint cinematics referenced by the layouts.
const (
	CheckpointFirstKey = "first_key"
	CheckpointPower    = "power"
)

// Layout sizes.
const (
	StandardRooms = 14
	CompactRooms  = 10
)

// Build returns the rooms of the layout with count rooms, connected in a
// loop: each front door leads to the next id and each back door to the
// previous one, wrapping at both ends.
func Build(m world.Metrics, count int) ([]*Room, error) {
	var rooms []*Room
	switch count {
	case StandardRooms:
		rooms = standard(m)
	case CompactRooms:
		rooms = compact(m)
	default:
		return nil, fmt.Errorf("no layout with %d rooms", count)
	}
	Cycle(rooms)
	if err := CheckSolvable(rooms, 0); err != nil {
		return nil, fmt.Errorf("layout with %d rooms: %w", count, err)
	}
	return rooms, nil
}

// NewDefaultManager builds the layout with count rooms and a manager starting
// in room 0.
func NewDefaultManager(m world.Metrics, count int, cooldown time.Duration) (*Manager, error) {
	rooms, err := Build(m, count)
	if err != nil {
		return nil, err
	}
	return NewManager(rooms, 0, m, cooldown)
}

// Cycle connects rooms in index order, closing the loop.
func Cycle(rooms []*Room) {
	n := len(rooms)
	for i, r := range rooms {
		r.Connect(world.Front, (i+1)%n)
		r.Connect(world.Back, (i-1+n)%n)
	}
}

type anchors struct {
	left, third, center, right float64
	keyY, switchY, powerY      float64
	decor                      world.Rect
}

func layoutAnchors(m world.Metrics) anchors {
	w, h := m.Width, m.Height
	return anchors{
		left:    math.Floor(w / 4),
		third:   math.Floor(w / 3),
		center:  math.Floor(w / 2),
		right:   math.Floor(3 * w / 4),
		keyY:    h * 0.75,
		switchY: h * 0.75,
		powerY:  h * 0.7,
		decor: world.NewRect(
			math.Floor(w/2)-math.Floor(w/10),
			math.Floor(h/2)-math.Floor(h/10),
			math.Floor(w/5),
			math.Floor(h/5),
		),
	}
}

func emptyRooms(m world.Metrics, n int) []*Room {
	rooms := make([]*Room, n)
	for i := range rooms {
		rooms[i] = New(i, m)
	}
	return rooms
}

// standard is the full loop: three keys (one hidden) for three switches
// (one hidden), with the inversion power in the middle of the loop.
func standard(m world.Metrics) []*Room {
	a := layoutAnchors(m)
	rooms := emptyRooms(m, StandardRooms)
	rooms[4].WithDecor(a.decor)
	rooms[5].WithHiddenSwitch(world.Vec{X: a.center, Y: a.switchY})
	rooms[6].WithItem(world.Vec{X: a.left, Y: a.keyY}, world.ItemKey).WithCheckpoint(CheckpointFirstKey)
	rooms[8].WithSwitch(world.Vec{X: a.center, Y: a.switchY})
	rooms[9].WithItem(world.Vec{X: a.center, Y: a.powerY}, world.ItemInversionPower).WithCheckpoint(CheckpointPower)
	rooms[10].WithItem(world.Vec{X: a.right, Y: a.keyY}, world.ItemKey)
	rooms[12].WithSwitch(world.Vec{X: a.third, Y: a.switchY})
	rooms[13].WithHiddenItem(world.Vec{X: a.right, Y: a.keyY}, world.ItemKey)
	return rooms
}

// compact is a shorter loop with two keys for two switches.
func compact(m world.Metrics) []*Room {
	a := layoutAnchors(m)
	rooms := emptyRooms(m, CompactRooms)
	rooms[2].WithItem(world.Vec{X: a.left, Y: a.keyY}, world.ItemKey).WithCheckpoint(CheckpointFirstKey)
	rooms[3].WithSwitch(world.Vec{X: a.center, Y: a.switchY})
	rooms[5].WithItem(world.Vec{X: a.center, Y: a.powerY}, world.ItemInversionPower).WithCheckpoint(CheckpointPower)
	rooms[7].WithHiddenItem(world.Vec{X: a.right, Y: a.keyY}, world.ItemKey)
	rooms[8].WithHiddenSwitch(world.Vec{X: a.center, Y: a.switchY})
	rooms[9].WithDecor(a.decor)
	return rooms
}
