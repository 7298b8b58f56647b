// Package modes is the top-level state machine: exactly one of the menu, play,
// options and victory modes is active and receives each tick's input.
package modes

import (
	"fmt"

	"loopescape/pkg/engine/input"
)

// ModeID names a mode.
type ModeID int

const (
	ModeMenu ModeID = iota
	ModePlay
	ModeOptions
	ModeVictory
)

var modeNames = map[ModeID]string{
	ModeMenu:    "menu",
	ModePlay:    "play",
	ModeOptions: "options",
	ModeVictory: "victory",
}

func (id ModeID) String() string {
	if n, ok := modeNames[id]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int(id))
}

// Valid reports whether id names a known mode.
func (id ModeID) Valid() bool {
	_, ok := modeNames[id]
	return ok
}

// Next is what a mode asks of the controller after a tick.
type Next struct {
	Change bool
	To     ModeID
	Quit   bool
}

// Stay keeps the current mode.
func Stay() Next { return Next{} }

// GoTo requests a transition.
func GoTo(id ModeID) Next { return Next{Change: true, To: id} }

// Quit ends the program.
func Quit() Next { return Next{Quit: true} }

// Mode is one state of the machine.
type Mode interface {
	ID() ModeID
	// Enter is called every time the mode becomes active.
	Enter()
	Tick(in input.Snapshot) Next
}

// Display is the window the controller toggles between fullscreen and
// windowed.
type Display interface {
	SetFullscreen(on bool)
}

// Audio is what the modes need from the audio service.
type Audio interface {
	PlaySound(name string)
	SetMusicEnabled(on bool)
	SetMusicVolume(v float64)
}

type nopAudio struct{}

func (nopAudio) PlaySound(string)       {}
func (nopAudio) SetMusicEnabled(bool)   {}
func (nopAudio) SetMusicVolume(float64) {}

type nopDisplay struct{}

func (nopDisplay) SetFullscreen(bool) {}
