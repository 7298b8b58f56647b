package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/game/state"
)

// ProcessInput handles the in-game actions that are not movement. Movement
// and jumping belong to the player update.
func ProcessInput(g *state.Game, in input.Snapshot) {
	if in.JustPressed(input.ActionInvert) {
		if !g.ToggleInverted() {
			return
		}
		if g.Inverted {
			g.AddMessage(gotext.Get("INVERSION_ON"))
		} else {
			g.AddMessage(gotext.Get("INVERSION_OFF"))
		}
	}
}
