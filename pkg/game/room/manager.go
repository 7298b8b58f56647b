package room

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/player"
)

// DefaultCooldown is the minimum time between two door crossings.
const DefaultCooldown = 500 * time.Millisecond

// switchRef identifies a switch across rooms.
type switchRef struct {
	room   int
	pos    world.Vec
	hidden bool
}

// Manager owns the room graph, the current room and the completion flag.
// It is the only writer of room contents.
type Manager struct {
	rooms   []*Room
	start   int
	current *Room
	m       world.Metrics

	completed    bool
	teleported   bool
	lastTeleport time.Duration
	cooldown     time.Duration

	// switches touched without a key, so the hint fires once per contact
	blocked mapset.Set[switchRef]

	log zerolog.Logger
}

// NewManager validates the graph and creates a manager positioned on the
// start room. Room ids must equal their index and door targets must name an
// existing room.
func NewManager(rooms []*Room, start int, m world.Metrics, cooldown time.Duration) (*Manager, error) {
	if len(rooms) == 0 {
		return nil, errors.New("room graph is empty")
	}
	for i, r := range rooms {
		if r == nil || r.ID != i {
			return nil, fmt.Errorf("room at index %d has wrong id", i)
		}
		for _, side := range world.AllSides() {
			d := r.Door(side)
			if d.HasTarget() && (d.Target < 0 || d.Target >= len(rooms)) {
				return nil, fmt.Errorf("room %d %s door targets unknown room %d", i, side, d.Target)
			}
		}
	}
	if start < 0 || start >= len(rooms) {
		return nil, fmt.Errorf("start room %d out of range", start)
	}
	return &Manager{
		rooms:    rooms,
		start:    start,
		current:  rooms[start],
		m:        m,
		cooldown: cooldown,
		blocked:  mapset.New[switchRef](),
		log:      logging.New("rooms"),
	}, nil
}

// Current returns the room the player is in.
func (mgr *Manager) Current() *Room {
	return mgr.current
}

// Start returns the designated start room id.
func (mgr *Manager) Start() int {
	return mgr.start
}

// Rooms returns the room graph indexed by id.
func (mgr *Manager) Rooms() []*Room {
	return mgr.rooms
}

// Room returns the room with the given id.
func (mgr *Manager) Room(id int) (*Room, bool) {
	if id < 0 || id >= len(mgr.rooms) {
		return nil, false
	}
	return mgr.rooms[id], true
}

// Completed reports whether the win condition has been reached. Once true it
// stays true.
func (mgr *Manager) Completed() bool {
	return mgr.completed
}

// AllSwitchesActivated reports whether every switch in every room, visible
// and hidden, is active.
func (mgr *Manager) AllSwitchesActivated() bool {
	for _, r := range mgr.rooms {
		if !r.SwitchesSolved() {
			return false
		}
	}
	return true
}

// SwitchProgress returns how many switches are active out of the total.
func (mgr *Manager) SwitchProgress() (active, total int) {
	for _, r := range mgr.rooms {
		for _, sw := range r.Switches() {
			total++
			if sw.Active {
				active++
			}
		}
	}
	return active, total
}

// Update resolves door crossings, then pickups, then switches for the
// player's current pose. now is the playthrough clock.
func (mgr *Manager) Update(p *player.Player, now time.Duration) []Event {
	var events []Event
	events = mgr.resolveDoors(p, now, events)
	events = mgr.resolvePickups(p, events)
	events = mgr.resolveSwitches(p, events)
	return events
}

func (mgr *Manager) cooldownElapsed(now time.Duration) bool {
	return !mgr.teleported || now-mgr.lastTeleport > mgr.cooldown
}

func (mgr *Manager) resolveDoors(p *player.Player, now time.Duration, events []Event) []Event {
	body := p.Rect()
	for _, side := range world.AllSides() {
		door := mgr.current.Door(side)
		if !body.Overlaps(door.CrossingRect(mgr.m.DoorReach)) || !mgr.cooldownElapsed(now) {
			continue
		}

		if mgr.AllSwitchesActivated() {
			if !mgr.completed {
				mgr.completed = true
				mgr.log.Info().Int("room", mgr.current.ID).Msg("all switches active, loop escaped")
				events = append(events, Event{Kind: EventCompleted, Room: mgr.current.ID})
			}
			return events
		}

		if !door.HasTarget() {
			continue
		}

		from := mgr.current
		mgr.current = mgr.rooms[door.Target]
		mgr.blocked.Clear()
		if side == world.Front {
			p.PlaceAt(mgr.current.Door(world.Back).CrossingRect(mgr.m.DoorReach).Right())
		} else {
			p.PlaceAt(mgr.current.Door(world.Front).Rect.Left() - p.Width)
		}
		mgr.teleported = true
		mgr.lastTeleport = now

		mgr.log.Debug().Int("from", from.ID).Int("to", mgr.current.ID).Str("via", side.String()).Msg("room transition")
		return append(events, Event{Kind: EventRoomEntered, Room: mgr.current.ID, From: from.ID, Via: side})
	}
	return events
}

func (mgr *Manager) resolvePickups(p *player.Player, events []Event) []Event {
	body := p.Rect()
	var touched []Item
	for _, it := range mgr.current.Items() {
		if body.Overlaps(world.CenteredSquare(it.Pos, mgr.m.ItemBox)) {
			touched = append(touched, it)
		}
	}
	for _, it := range touched {
		if !mgr.current.take(it) {
			continue
		}
		p.Collect(it.Kind)
		mgr.log.Info().Int("room", mgr.current.ID).Str("item", it.Kind.String()).Bool("hidden", it.Hidden).Msg("item picked up")
		events = append(events, Event{Kind: EventItemPicked, Room: mgr.current.ID, Pos: it.Pos, Item: it.Kind, Hidden: it.Hidden})
	}
	return events
}

func (mgr *Manager) resolveSwitches(p *player.Player, events []Event) []Event {
	body := p.Rect()
	for _, sw := range mgr.current.Switches() {
		if sw.Active {
			continue
		}
		ref := switchRef{room: mgr.current.ID, pos: sw.Pos, hidden: sw.Hidden}
		if !body.Overlaps(world.CenteredSquare(sw.Pos, mgr.m.SwitchBox)) {
			mgr.blocked.Remove(ref)
			continue
		}
		if !p.Inventory.Remove(world.ItemKey) {
			if !mgr.blocked.Has(ref) {
				mgr.blocked.Put(ref)
				events = append(events, Event{Kind: EventSwitchNeedsKey, Room: mgr.current.ID, Pos: sw.Pos, Hidden: sw.Hidden})
			}
			continue
		}
		mgr.blocked.Remove(ref)
		mgr.current.activate(sw)
		mgr.log.Info().Int("room", mgr.current.ID).Bool("hidden", sw.Hidden).Msg("switch activated")
		events = append(events, Event{Kind: EventSwitchActivated, Room: mgr.current.ID, Pos: sw.Pos, Hidden: sw.Hidden})
	}
	return events
}
