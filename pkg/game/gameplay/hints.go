package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/room"
	"loopescape/pkg/game/state"
)

// Hint ids, each shown at most once per playthrough.
const (
	hintMove   = "move"
	hintInvert = "invert"
	hintHidden = "hidden"
)

// ShowStartHints shows the movement controls at the start of a playthrough.
func ShowStartHints(g *state.Game) {
	if g.Hint(hintMove) {
		g.AddMessage(gotext.Get("HINT_MOVE"))
	}
}

// ShowRoomHints points the player at hidden content they cannot see yet.
func ShowRoomHints(g *state.Game, r *room.Room) {
	if r == nil || g.Inverted {
		return
	}
	hidden := false
	for _, it := range r.Items() {
		hidden = hidden || it.Hidden
	}
	for _, sw := range r.Switches() {
		hidden = hidden || (sw.Hidden && !sw.Active)
	}
	if !hidden {
		return
	}
	if g.Player.HasInversionPower {
		if g.Hint(hintInvert) {
			g.AddMessage(gotext.Get("HINT_INVERT"))
		}
		return
	}
	// The power lying in this room explains itself when picked up.
	if r.HasItem(world.ItemInversionPower) {
		return
	}
	if g.Hint(hintHidden) {
		g.AddMessage(gotext.Get("HINT_HIDDEN"))
	}
}
