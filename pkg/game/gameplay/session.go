// Package gameplay drives one playthrough tick by tick: the cinematic gate,
// the player, the room engine, and turning room events into messages,
// sounds and story cinematics.
package gameplay

import (
	"github.com/rs/zerolog"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/state"
)

// Cinematics is the cinematic service a session drives.
type Cinematics interface {
	Play(name string) bool
	Update(in input.Snapshot) bool
	IsPlaying() bool
	Playing() (string, bool)
}

// Sounds plays short named cues.
type Sounds interface {
	PlaySound(name string)
}

// Outcome tells the caller what the tick led to.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeVictory
)

// Session is a running playthrough.
type Session struct {
	Game *state.Game

	cinematics Cinematics
	sounds     Sounds
	log        zerolog.Logger

	won bool
}

// NewSession starts a playthrough of g and requests the intro cinematic.
// sounds may be nil.
func NewSession(g *state.Game, cinematics Cinematics, sounds Sounds) *Session {
	s := &Session{
		Game:       g,
		cinematics: cinematics,
		sounds:     sounds,
		log:        logging.New("gameplay"),
	}
	s.cinematics.Play(cinematic.Intro)
	ShowStartHints(g)
	return s
}

// Tick runs one fixed-rate step of the playthrough.
//
// While a cinematic plays it receives all input and the world does not move:
// no player update, no room resolution, no clock advance. The world resumes on
// the tick after the cinematic finishes.
func (s *Session) Tick(in input.Snapshot) Outcome {
	if s.cinematics.IsPlaying() {
		name, _ := s.cinematics.Playing()
		if s.cinematics.Update(in) && name == cinematic.Ending {
			return OutcomeVictory
		}
		return OutcomeContinue
	}
	if s.won {
		return OutcomeVictory
	}

	ProcessInput(s.Game, in)

	s.Game.Player.Update(in)
	s.Game.Advance()
	events := s.Game.Rooms.Update(s.Game.Player, s.Game.Clock)
	for _, ev := range events {
		s.handleEvent(ev)
	}

	if s.won && !s.cinematics.IsPlaying() {
		return OutcomeVictory
	}
	return OutcomeContinue
}

// Frozen reports whether a cinematic currently holds the world.
func (s *Session) Frozen() bool {
	return s.cinematics.IsPlaying()
}

// Won reports whether the win condition was reached.
func (s *Session) Won() bool {
	return s.won
}

func (s *Session) playSound(name string) {
	if s.sounds != nil {
		s.sounds.PlaySound(name)
	}
}
