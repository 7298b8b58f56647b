package modes

import (
	"time"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/config"
	"loopescape/pkg/game/gameplay"
	"loopescape/pkg/game/state"
)

// PlayMode runs a single playthrough.
type PlayMode struct {
	Session *gameplay.Session
}

func newPlayMode(m world.Metrics, cfg *config.Config, cin *cinematic.Manager, audio Audio) (*PlayMode, error) {
	g, err := state.NewGame(m, cfg.RoomCount, cfg.TeleportCooldown)
	if err != nil {
		return nil, err
	}
	return &PlayMode{Session: gameplay.NewSession(g, cin, audio)}, nil
}

func (p *PlayMode) ID() ModeID { return ModePlay }

func (p *PlayMode) Enter() {}

func (p *PlayMode) Tick(in input.Snapshot) Next {
	if p.Session.Tick(in) == gameplay.OutcomeVictory {
		return GoTo(ModeVictory)
	}
	return Stay()
}

// Game returns the playthrough state.
func (p *PlayMode) Game() *state.Game {
	return p.Session.Game
}

// Result summarizes a playthrough for the victory screen.
type Result struct {
	Elapsed      time.Duration
	RoomsVisited int
	Rooms        int
}

// Result summarizes the playthrough so far.
func (p *PlayMode) Result() Result {
	g := p.Session.Game
	return Result{
		Elapsed:      g.Clock,
		RoomsVisited: g.Visited.Size(),
		Rooms:        len(g.Rooms.Rooms()),
	}
}
