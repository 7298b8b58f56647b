// Package gameplay drives one playthrough tick by tick.
package gameplay

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/room"
	"loopescape/pkg/game/state"
)

func TestMain(m *testing.M) {
	logging.Disable()
	gotext.Configure("../../../locales", "en_US", "default")
	os.Exit(m.Run())
}

type recordedSounds struct{ names []string }

func (r *recordedSounds) PlaySound(name string) { r.names = append(r.names, name) }

// newTestSession builds a standard 14-room playthrough with the given
// cinematics registered. A cinematic without frames ends on its first update.
func newTestSession(t *testing.T, cinematics ...cinematic.Cinematic) (*Session, *cinematic.Manager, *recordedSounds) {
	t.Helper()
	g, err := state.NewGame(world.NewMetrics(1920, 1080), room.StandardRooms, room.DefaultCooldown)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	cm := cinematic.NewManager(nil)
	for _, c := range cinematics {
		cm.Register(c)
	}
	sounds := &recordedSounds{}
	return NewSession(g, cm, sounds), cm, sounds
}

// walkForward crosses front doors until the player is in room id.
func walkForward(t *testing.T, s *Session, id int) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if s.Game.Rooms.Current().ID == id && !s.Frozen() {
			return
		}
		s.Game.Player.X = 1800
		if s.Tick(input.Snapshot{}) == OutcomeVictory {
			t.Fatalf("victory while walking to room %d", id)
		}
	}
	t.Fatalf("never reached room %d, stuck in %d", id, s.Game.Rooms.Current().ID)
}

// touch stands the player over a point for one tick.
func touch(s *Session, x float64) Outcome {
	s.Game.Player.X = x - 50
	return s.Tick(input.Snapshot{})
}

func TestTick_CinematicFreezesWorld(t *testing.T) {
	s, _, _ := newTestSession(t, cinematic.Cinematic{Name: cinematic.Intro, Frames: []string{"1.png"}})
	if !s.Frozen() {
		t.Fatal("intro not playing at session start")
	}
	p := s.Game.Player
	x, y := p.X, p.Y
	for i := 0; i < 30; i++ {
		s.Tick(input.Holding(input.ActionMoveRight))
	}
	if p.X != x || p.Y != y || s.Game.Clock != 0 {
		t.Errorf("world moved during cinematic: X=%v Y=%v Clock=%v", p.X, p.Y, s.Game.Clock)
	}

	if s.Tick(input.Pressing(input.ActionSkip)) != OutcomeContinue {
		t.Fatal("skipping intro ended the game")
	}
	if s.Frozen() {
		t.Fatal("still frozen after skip")
	}
	s.Tick(input.Holding(input.ActionMoveRight))
	if p.X == x || s.Game.Clock == 0 {
		t.Error("world did not resume on the tick after the cinematic")
	}
}

func TestTick_CheckpointOnFirstEntry(t *testing.T) {
	s, cm, sounds := newTestSession(t, cinematic.Cinematic{
		Name:          cinematic.FirstKey,
		Frames:        []string{"1.png"},
		FrameDuration: time.Second,
	})
	walkForward(t, s, 5)
	if cm.Played(cinematic.FirstKey) {
		t.Fatal("first_key played before room 6")
	}

	s.Game.Player.X = 1800
	for s.Game.Rooms.Current().ID != 6 {
		s.Game.Player.X = 1800
		s.Tick(input.Snapshot{})
	}
	if !s.Frozen() || !cm.Played(cinematic.FirstKey) {
		t.Fatal("first_key not playing on entering room 6")
	}

	// frozen: the door right next to the player is not crossed
	s.Game.Player.X = 1800
	for i := 0; i < 40; i++ {
		s.Tick(input.Snapshot{})
	}
	if s.Game.Rooms.Current().ID != 6 {
		t.Errorf("room changed to %d during cinematic", s.Game.Rooms.Current().ID)
	}
	if len(sounds.names) == 0 || sounds.names[0] != SoundDoor {
		t.Errorf("sounds = %v, want door cues", sounds.names)
	}
}

func TestTick_FullPlaythrough(t *testing.T) {
	s, cm, _ := newTestSession(t, cinematic.Cinematic{Name: cinematic.Ending})
	p := s.Game.Player

	walkForward(t, s, 6)
	touch(s, 480)
	if p.Keys() != 1 {
		t.Fatalf("keys after room 6 = %d, want 1", p.Keys())
	}
	walkForward(t, s, 8)
	touch(s, 960)
	if p.Keys() != 0 {
		t.Fatalf("keys after room 8 switch = %d, want 0", p.Keys())
	}
	walkForward(t, s, 9)
	touch(s, 960)
	if !p.HasInversionPower {
		t.Fatal("no inversion power after room 9")
	}
	walkForward(t, s, 10)
	touch(s, 1440)
	walkForward(t, s, 12)
	touch(s, 640)
	walkForward(t, s, 13)
	touch(s, 1440)
	if p.Keys() != 1 {
		t.Fatalf("keys after hidden key = %d, want 1", p.Keys())
	}
	walkForward(t, s, 0)
	walkForward(t, s, 5)
	touch(s, 960)
	if !s.Game.Rooms.AllSwitchesActivated() {
		t.Fatal("switches not all active")
	}
	if s.Game.Rooms.Completed() {
		t.Fatal("completed before crossing a door")
	}

	outcome := OutcomeContinue
	for i := 0; i < 100 && outcome == OutcomeContinue; i++ {
		p.X = 1800
		outcome = s.Tick(input.Snapshot{})
	}
	if outcome != OutcomeVictory {
		t.Fatal("no victory after crossing a door with all switches active")
	}
	if s.Game.Rooms.Current().ID != 5 {
		t.Errorf("room = %d, want 5 (winning crossing does not move)", s.Game.Rooms.Current().ID)
	}
	if !cm.Played(cinematic.Ending) {
		t.Error("ending cinematic not played")
	}
	if len(s.Game.Messages) != 1 || s.Game.Messages[0] != "You escaped the loop!" {
		t.Errorf("messages after escape = %q, want only the escape message", s.Game.Messages)
	}
}

func TestTick_VictoryWithoutEndingCinematic(t *testing.T) {
	s, _, _ := newTestSession(t)
	// solve every switch directly through the room engine
	for _, r := range s.Game.Rooms.Rooms() {
		for range r.Switches() {
			s.Game.Player.Collect(world.ItemKey)
		}
	}
	walkForward(t, s, 5)
	touch(s, 960)
	walkForward(t, s, 8)
	touch(s, 960)
	walkForward(t, s, 12)
	touch(s, 640)

	outcome := OutcomeContinue
	for i := 0; i < 100 && outcome == OutcomeContinue; i++ {
		s.Game.Player.X = 1800
		outcome = s.Tick(input.Snapshot{})
	}
	if outcome != OutcomeVictory || !s.Won() {
		t.Error("no immediate victory when the ending cinematic is unavailable")
	}
}

func TestProcessInput_Invert(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game
	s.Tick(input.Pressing(input.ActionInvert))
	if g.Inverted {
		t.Fatal("inverted without the power")
	}
	g.Player.Collect(world.ItemInversionPower)
	n := len(g.Messages)
	s.Tick(input.Pressing(input.ActionInvert))
	if !g.Inverted {
		t.Fatal("invert press with power did not invert")
	}
	if len(g.Messages) == n && n < 5 {
		t.Error("no message on inversion")
	}
	s.Tick(input.Holding(input.ActionInvert))
	if !g.Inverted {
		t.Error("held invert toggled again")
	}
}

func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

func TestHandleEvent_FormatsMessages(t *testing.T) {
	s, _, _ := newTestSession(t)
	walkForward(t, s, 6)
	touch(s, 480)
	if got, want := lastMessage(s.Game), "Picked up a key (1 held)"; got != want {
		t.Errorf("key message = %q, want %q", got, want)
	}

	walkForward(t, s, 8)
	touch(s, 960)
	active, total := s.Game.Rooms.SwitchProgress()
	if active != 1 {
		t.Fatalf("active switches = %d, want 1", active)
	}
	want := "Switch activated (1/" + strconv.Itoa(total) + ")"
	found := false
	for _, msg := range s.Game.Messages {
		found = found || msg == want
	}
	if !found {
		t.Errorf("messages = %q, want one equal to %q", s.Game.Messages, want)
	}
}

func TestShowRoomHints(t *testing.T) {
	m := world.NewMetrics(1920, 1080)
	hidden := room.New(0, m).WithHiddenItem(world.Vec{X: 100, Y: 100}, world.ItemKey)
	withPower := room.New(1, m).
		WithHiddenItem(world.Vec{X: 100, Y: 100}, world.ItemKey).
		WithItem(world.Vec{X: 300, Y: 100}, world.ItemInversionPower)

	s, _, _ := newTestSession(t)
	g := s.Game
	g.ClearMessages()

	ShowRoomHints(g, withPower)
	if len(g.Messages) != 0 {
		t.Errorf("hint shown next to the power: %q", g.Messages)
	}

	ShowRoomHints(g, hidden)
	if got, want := lastMessage(g), "Some things only show in inverted colors"; got != want {
		t.Errorf("hidden hint = %q, want %q", got, want)
	}
	ShowRoomHints(g, hidden)
	if len(g.Messages) != 1 {
		t.Errorf("messages = %d, want the hidden hint once", len(g.Messages))
	}

	g.Player.Collect(world.ItemInversionPower)
	ShowRoomHints(g, hidden)
	if got, want := lastMessage(g), "Press I to invert the colors"; got != want {
		t.Errorf("invert hint = %q, want %q", got, want)
	}
}
