// Package modes is the top-level state machine: exactly one of the menu, play,
// options and victory modes is active and receives each tick's input.
package modes

import (
	"os"
	"path/filepath"
	"testing"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/config"
	"loopescape/pkg/game/menu"
)

func TestMain(m *testing.M) {
	logging.Disable()
	os.Exit(m.Run())
}

type fakeAudio struct {
	sounds  []string
	musicOn bool
	volume  float64
}

func (f *fakeAudio) PlaySound(name string)    { f.sounds = append(f.sounds, name) }
func (f *fakeAudio) SetMusicEnabled(on bool)  { f.musicOn = on }
func (f *fakeAudio) SetMusicVolume(v float64) { f.volume = v }

type fakeDisplay struct {
	fullscreen bool
	calls      int
}

func (f *fakeDisplay) SetFullscreen(on bool) {
	f.fullscreen = on
	f.calls++
}

type fixture struct {
	c       *Controller
	cfg     *config.Config
	audio   *fakeAudio
	display *fakeDisplay
}

func newFixture(t *testing.T, cins ...cinematic.Cinematic) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.RoomCount = config.RoomsCompact
	cfg.SetPrefsPath(filepath.Join(t.TempDir(), "preferences.json"))

	manager := cinematic.NewManager(nil)
	for _, c := range cins {
		manager.Register(c)
	}
	f := &fixture{cfg: cfg, audio: &fakeAudio{musicOn: cfg.MusicOn}, display: &fakeDisplay{}}
	f.c = NewController(Deps{
		Config:     cfg,
		Metrics:    world.NewMetrics(1920, 1080),
		Cinematics: manager,
		Audio:      f.audio,
		Display:    f.display,
	})
	return f
}

func (f *fixture) press(actions ...input.Action) {
	f.c.Tick(input.Pressing(actions...))
}

func (f *fixture) play(t *testing.T) *PlayMode {
	t.Helper()
	p, ok := f.c.Mode().(*PlayMode)
	if !ok {
		t.Fatalf("mode = %v, want play", f.c.Current())
	}
	return p
}

// startPlay picks Play from the main menu.
func (f *fixture) startPlay(t *testing.T) *PlayMode {
	t.Helper()
	f.c.menu.Menu.Selected = 0
	f.press(input.ActionConfirm)
	return f.play(t)
}

func (f *fixture) walkTo(t *testing.T, id int) {
	t.Helper()
	p := f.play(t)
	for i := 0; i < 2000; i++ {
		if p.Game().Rooms.Current().ID == id && !p.Session.Frozen() {
			return
		}
		p.Game().Player.X = 1800
		f.c.Tick(input.Snapshot{})
	}
	t.Fatalf("never reached room %d", id)
}

func (f *fixture) touch(t *testing.T, x float64) {
	t.Helper()
	f.play(t).Game().Player.X = x - 50
	f.c.Tick(input.Snapshot{})
}

func TestController_StartsInMenu(t *testing.T) {
	f := newFixture(t)
	if f.c.Current() != ModeMenu {
		t.Errorf("Current() = %v, want menu", f.c.Current())
	}
}

func TestController_OptionsRoundTripKeepsCursors(t *testing.T) {
	f := newFixture(t)

	f.press(input.ActionMenuDown)
	f.press(input.ActionConfirm)
	if f.c.Current() != ModeOptions {
		t.Fatalf("Current() = %v, want options", f.c.Current())
	}
	f.press(input.ActionMenuDown)
	f.press(input.ActionMenuDown)
	f.press(input.ActionCancel)
	if f.c.Current() != ModeMenu {
		t.Fatalf("Current() after cancel = %v, want menu", f.c.Current())
	}
	if f.c.menu.Menu.Selected != 1 {
		t.Errorf("menu cursor = %d, want 1", f.c.menu.Menu.Selected)
	}

	f.press(input.ActionConfirm)
	if f.c.options.Menu.Selected != 2 {
		t.Errorf("options cursor = %d, want 2", f.c.options.Menu.Selected)
	}
}

func TestController_OptionsBackItem(t *testing.T) {
	f := newFixture(t)
	f.c.Change(ModeOptions)
	f.c.options.Menu.Selected = len(f.c.options.Menu.Items) - 1
	f.press(input.ActionConfirm)
	if f.c.Current() != ModeMenu {
		t.Errorf("Current() = %v, want menu", f.c.Current())
	}
}

func TestController_PlayIsFresh(t *testing.T) {
	f := newFixture(t)
	first := f.startPlay(t)
	first.Game().Player.Collect(world.ItemKey)
	first.Game().Player.Collect(world.ItemInversionPower)
	f.walkTo(t, 3)

	f.press(input.ActionCancel)
	second := f.startPlay(t)
	if second == first || second.Game() == first.Game() {
		t.Fatal("re-entering play reused the previous playthrough")
	}
	g := second.Game()
	if g.Player.Inventory.Len() != 0 || g.Player.HasInversionPower {
		t.Error("new playthrough kept the inventory")
	}
	if g.Rooms.Current().ID != g.Rooms.Start() {
		t.Errorf("room = %d, want start %d", g.Rooms.Current().ID, g.Rooms.Start())
	}
	spawn := g.Metrics.Spawn()
	if g.Player.X != spawn.X {
		t.Errorf("player X = %v, want spawn %v", g.Player.X, spawn.X)
	}
}

func TestController_CancelInterceptsPlay(t *testing.T) {
	f := newFixture(t)
	f.startPlay(t)
	f.press(input.ActionCancel)
	if f.c.Current() != ModeMenu {
		t.Errorf("Current() = %v, want menu", f.c.Current())
	}

	// the same cancel reaches the menu, which ignores it
	f.press(input.ActionCancel)
	if f.c.Current() != ModeMenu || f.c.Quitting() {
		t.Errorf("cancel in menu changed mode to %v", f.c.Current())
	}
}

func TestController_CancelStopsCinematic(t *testing.T) {
	f := newFixture(t, cinematic.Cinematic{Name: cinematic.Intro, Frames: []string{"1.png"}})
	p := f.startPlay(t)
	if !p.Session.Frozen() {
		t.Fatal("intro not playing")
	}
	f.press(input.ActionCancel)
	if f.c.Cinematics().IsPlaying() {
		t.Error("cinematic still playing after leaving play")
	}

	// intro has been played, so the next playthrough starts unfrozen
	p = f.startPlay(t)
	if p.Session.Frozen() {
		t.Error("second playthrough replayed the intro")
	}
}

func TestController_EndingLeadsToVictory(t *testing.T) {
	f := newFixture(t, cinematic.Cinematic{Name: cinematic.Ending, Frames: []string{"1.png"}})
	f.startPlay(t)

	f.walkTo(t, 2)
	f.touch(t, 480) // key
	f.walkTo(t, 3)
	f.touch(t, 960) // switch
	f.walkTo(t, 7)
	f.touch(t, 1440) // hidden key
	f.walkTo(t, 8)
	f.touch(t, 960) // hidden switch

	p := f.play(t)
	if p.Game().Player.Keys() != 0 || !p.Game().Rooms.AllSwitchesActivated() {
		t.Fatalf("keys = %d, switches solved = %v", p.Game().Player.Keys(), p.Game().Rooms.AllSwitchesActivated())
	}

	sawEnding := false
	for i := 0; f.c.Current() == ModePlay; i++ {
		if i > 2000 {
			t.Fatal("never reached victory")
		}
		if name, ok := f.c.Cinematics().Playing(); ok && name == cinematic.Ending {
			sawEnding = true
		}
		if !p.Session.Frozen() {
			p.Game().Player.X = 1800
		}
		f.c.Tick(input.Snapshot{})
	}
	if !sawEnding {
		t.Error("ending cinematic never played")
	}
	if f.c.Current() != ModeVictory {
		t.Fatalf("Current() = %v, want victory", f.c.Current())
	}

	res := f.c.victory.Result()
	if res.Rooms != config.RoomsCompact || res.RoomsVisited != 9 || res.Elapsed <= 0 {
		t.Errorf("Result() = %+v", res)
	}

	f.c.Tick(input.Snapshot{Clicked: true})
	if f.c.Current() != ModeMenu {
		t.Errorf("Current() after click = %v, want menu", f.c.Current())
	}
}

func TestController_Quit(t *testing.T) {
	f := newFixture(t)
	f.press(input.ActionMenuUp)
	f.press(input.ActionConfirm)
	if !f.c.Quitting() {
		t.Error("Quitting() = false after choosing quit")
	}
}

func TestController_FullscreenIsGlobal(t *testing.T) {
	f := newFixture(t)
	want := !f.cfg.Fullscreen
	f.press(input.ActionToggleFullscreen)
	if f.display.calls != 1 || f.display.fullscreen != want {
		t.Errorf("display = %+v, want fullscreen %v", f.display, want)
	}
	if f.c.Current() != ModeMenu {
		t.Errorf("Current() = %v, want menu", f.c.Current())
	}

	f.startPlay(t)
	f.press(input.ActionToggleFullscreen)
	if f.display.calls != 2 || f.c.Current() != ModePlay {
		t.Errorf("toggle in play: calls = %d, mode = %v", f.display.calls, f.c.Current())
	}
}

func TestController_UnknownModePanics(t *testing.T) {
	f := newFixture(t)
	defer func() {
		if recover() == nil {
			t.Error("Change(unknown) did not panic")
		}
	}()
	f.c.Change(ModeID(42))
}

func TestOptions_MusicShortcutSaves(t *testing.T) {
	f := newFixture(t)
	f.c.Change(ModeOptions)
	on := f.cfg.MusicOn

	f.press(input.ActionToggleMusic)
	if f.cfg.MusicOn == on || f.audio.musicOn == on {
		t.Errorf("music = cfg %v audio %v, want %v", f.cfg.MusicOn, f.audio.musicOn, !on)
	}
	if _, err := os.Stat(f.cfg.PrefsPath()); err != nil {
		t.Errorf("preferences not written: %v", err)
	}
}

func TestOptions_Volume(t *testing.T) {
	f := newFixture(t)
	f.c.Change(ModeOptions)
	f.cfg.MusicVolume = 0.5

	f.c.options.Menu.Selected = indexOf(t, f.c.options.Menu, menu.OptionsActionVolumeUp)
	f.press(input.ActionConfirm)
	if f.audio.volume != 0.6 {
		t.Errorf("audio volume = %v, want 0.6", f.audio.volume)
	}
}

func indexOf(t *testing.T, m *menu.Menu, a menu.OptionsAction) int {
	t.Helper()
	for i, it := range m.Items {
		if it.(*menu.OptionsItem).Action == a {
			return i
		}
	}
	t.Fatalf("no options item %v", a)
	return -1
}

func TestModeID_String(t *testing.T) {
	if ModeVictory.String() != "victory" || ModeID(9).String() != "mode(9)" {
		t.Errorf("String() = %q, %q", ModeVictory.String(), ModeID(9).String())
	}
}
