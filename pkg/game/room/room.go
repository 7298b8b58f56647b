// Package room holds the room graph and the puzzle engine that resolves door
// crossings, pickups and switches against the player every tick.
package room

import (
	"github.com/zyedidia/generic/avl"

	"loopescape/pkg/engine/world"
)

// Item is a collectible lying in a room.
type Item struct {
	Pos    world.Vec
	Kind   world.ItemKind
	Hidden bool
}

// Switch is a one-way toggle that consumes a key to activate.
type Switch struct {
	Pos    world.Vec
	Active bool
	Hidden bool
}

// Room is one puzzle cell. Hidden items and switches are only drawn in
// inverted mode but interact with the player either way.
type Room struct {
	ID    int
	doors [2]world.Door

	items          *avl.Tree[world.Vec, world.ItemKind]
	hiddenItems    *avl.Tree[world.Vec, world.ItemKind]
	switches       *avl.Tree[world.Vec, bool]
	hiddenSwitches *avl.Tree[world.Vec, bool]

	// Decor is an optional cosmetic region with no gameplay effect.
	Decor *world.Rect

	// Checkpoint names the cinematic played the first time the room is
	// entered, or is empty.
	Checkpoint string
}

func lessVec(a, b world.Vec) bool { return a.Less(b) }

// New creates an empty room with dead doors on both sides.
func New(id int, m world.Metrics) *Room {
	r := &Room{
		ID:             id,
		items:          avl.New[world.Vec, world.ItemKind](lessVec),
		hiddenItems:    avl.New[world.Vec, world.ItemKind](lessVec),
		switches:       avl.New[world.Vec, bool](lessVec),
		hiddenSwitches: avl.New[world.Vec, bool](lessVec),
	}
	for _, side := range world.AllSides() {
		r.doors[side] = world.NewDoor(m, side, world.NoTarget)
	}
	return r
}

// WithItem places a visible item.
func (r *Room) WithItem(pos world.Vec, kind world.ItemKind) *Room {
	r.items.Put(pos, kind)
	return r
}

// WithHiddenItem places an item only visible in inverted mode.
func (r *Room) WithHiddenItem(pos world.Vec, kind world.ItemKind) *Room {
	r.hiddenItems.Put(pos, kind)
	return r
}

// WithSwitch places an inactive visible switch.
func (r *Room) WithSwitch(pos world.Vec) *Room {
	r.switches.Put(pos, false)
	return r
}

// WithHiddenSwitch places an inactive switch only visible in inverted mode.
func (r *Room) WithHiddenSwitch(pos world.Vec) *Room {
	r.hiddenSwitches.Put(pos, false)
	return r
}

// WithDecor sets the cosmetic decor region.
func (r *Room) WithDecor(rect world.Rect) *Room {
	r.Decor = &rect
	return r
}

// WithCheckpoint names the cinematic for the room's first visit.
func (r *Room) WithCheckpoint(name string) *Room {
	r.Checkpoint = name
	return r
}

// Connect sets the room a side's door leads to. Use world.NoTarget for a
// dead door.
func (r *Room) Connect(side world.Side, target int) {
	r.doors[side].Target = target
}

// Door returns the door on the given side.
func (r *Room) Door(side world.Side) world.Door {
	return r.doors[side]
}

// Items returns the remaining items, visible first, each group ordered by
// position.
func (r *Room) Items() []Item {
	var out []Item
	r.items.Each(func(pos world.Vec, kind world.ItemKind) {
		out = append(out, Item{Pos: pos, Kind: kind})
	})
	r.hiddenItems.Each(func(pos world.Vec, kind world.ItemKind) {
		out = append(out, Item{Pos: pos, Kind: kind, Hidden: true})
	})
	return out
}

// Switches returns every switch, visible first, each group ordered by
// position.
func (r *Room) Switches() []Switch {
	var out []Switch
	r.switches.Each(func(pos world.Vec, active bool) {
		out = append(out, Switch{Pos: pos, Active: active})
	})
	r.hiddenSwitches.Each(func(pos world.Vec, active bool) {
		out = append(out, Switch{Pos: pos, Active: active, Hidden: true})
	})
	return out
}

// HasItem reports whether an item of kind remains in the room.
func (r *Room) HasItem(kind world.ItemKind) bool {
	for _, it := range r.Items() {
		if it.Kind == kind {
			return true
		}
	}
	return false
}

// SwitchesSolved reports whether the room has no inactive switch. Rooms
// without switches are trivially solved.
func (r *Room) SwitchesSolved() bool {
	for _, sw := range r.Switches() {
		if !sw.Active {
			return false
		}
	}
	return true
}

func (r *Room) itemTree(hidden bool) *avl.Tree[world.Vec, world.ItemKind] {
	if hidden {
		return r.hiddenItems
	}
	return r.items
}

func (r *Room) switchTree(hidden bool) *avl.Tree[world.Vec, bool] {
	if hidden {
		return r.hiddenSwitches
	}
	return r.switches
}

// take removes an item. It reports false if the item was already gone.
func (r *Room) take(it Item) bool {
	tree := r.itemTree(it.Hidden)
	if _, ok := tree.Get(it.Pos); !ok {
		return false
	}
	tree.Remove(it.Pos)
	return true
}

func (r *Room) activate(sw Switch) {
	r.switchTree(sw.Hidden).Put(sw.Pos, true)
}
