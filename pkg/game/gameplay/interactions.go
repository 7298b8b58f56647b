package gameplay

import (
	"fmt"
	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/room"
)

// Sound cue names.
const (
	SoundDoor   = "door"
	SoundPickup = "pickup"
	SoundSwitch = "switch"
	SoundDenied = "denied"
)

func (s *Session) handleEvent(ev room.Event) {
	g := s.Game
	switch ev.Kind {
	case room.EventRoomEntered:
		s.playSound(SoundDoor)
		first := g.Visit(ev.Room)
		r, _ := g.Rooms.Room(ev.Room)
		if first && r.Checkpoint != "" {
			s.cinematics.Play(r.Checkpoint)
		}
		ShowRoomHints(g, r)

	case room.EventItemPicked:
		s.playSound(SoundPickup)
		switch ev.Item {
		case world.ItemKey:
			g.AddMessage(fmt.Sprintf(gotext.Get("KEY_PICKED"), g.Player.Keys()))
		case world.ItemInversionPower:
			g.AddMessage(gotext.Get("POWER_PICKED"))
		default:
			g.AddMessage(fmt.Sprintf(gotext.Get("ITEM_PICKED"), ev.Item.String()))
		}

	case room.EventSwitchActivated:
		s.playSound(SoundSwitch)
		active, total := g.Rooms.SwitchProgress()
		g.AddMessage(fmt.Sprintf(gotext.Get("SWITCH_ACTIVATED"), active, total))
		if active == total {
			g.AddMessage(gotext.Get("ALL_SWITCHES_ACTIVE"))
		}

	case room.EventSwitchNeedsKey:
		s.playSound(SoundDenied)
		g.AddMessage(gotext.Get("SWITCH_NEEDS_KEY"))

	case room.EventCompleted:
		s.won = true
		g.ClearMessages()
		g.AddMessage(gotext.Get("LOOP_ESCAPED"))
		s.log.Info().Int("ticks", g.Ticks).Int("rooms_visited", g.Visited.Size()).Msg("playthrough completed")
		s.cinematics.Play(cinematic.Ending)
	}
}
