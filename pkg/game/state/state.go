// Package state holds everything that belongs to a single playthrough.
// A new Game is built every time play starts, so nothing here survives a
// return to the menu.
package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/player"
	"loopescape/pkg/game/room"
)

// TickDuration is how far the playthrough clock moves per simulated tick.
const TickDuration = time.Second / 60

const maxMessages = 5

// Game represents one playthrough of the loop.
type Game struct {
	Metrics world.Metrics
	Player  *player.Player
	Rooms   *room.Manager

	// Inverted is the color-inversion display mode. It can only be turned
	// on once the player holds the inversion power.
	Inverted bool

	Messages []string

	// Clock is simulated time: it advances only while the world updates.
	Clock time.Duration
	Ticks int

	Visited mapset.Set[int]
	Hinted  mapset.Set[string]
}

// NewGame creates a fresh playthrough on the layout with roomCount rooms.
func NewGame(m world.Metrics, roomCount int, cooldown time.Duration) (*Game, error) {
	rooms, err := room.NewDefaultManager(m, roomCount, cooldown)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Metrics:  m,
		Player:   player.New(m),
		Rooms:    rooms,
		Messages: make([]string, 0),
		Visited:  mapset.New[int](),
		Hinted:   mapset.New[string](),
	}
	g.Visited.Put(rooms.Current().ID)
	return g, nil
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Advance moves the clock forward by one tick.
func (g *Game) Advance() {
	g.Ticks++
	g.Clock = time.Duration(g.Ticks) * TickDuration
}

// Visit records a room as visited and reports whether it is the first time.
func (g *Game) Visit(id int) bool {
	if g.Visited.Has(id) {
		return false
	}
	g.Visited.Put(id)
	return true
}

// Hint records a one-time hint and reports whether it is new.
func (g *Game) Hint(id string) bool {
	if g.Hinted.Has(id) {
		return false
	}
	g.Hinted.Put(id)
	return true
}

// ToggleInverted flips inverted mode if the player has the power and reports
// whether it changed.
func (g *Game) ToggleInverted() bool {
	if !g.Player.HasInversionPower {
		return false
	}
	g.Inverted = !g.Inverted
	return true
}
