// Package menu provides the cursor menus used by the menu and options modes.
package menu

import (
	"os"
	"strings"
	"testing"

	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/config"
)

var metrics = world.NewMetrics(1920, 1080)

func TestMain(m *testing.M) {
	logging.Disable()
	gotext.Configure("../../../locales", "en_US", "default")
	os.Exit(m.Run())
}

type stubItem struct {
	label      string
	selectable bool
}

func (s stubItem) GetLabel() string    { return s.label }
func (s stubItem) IsSelectable() bool  { return s.selectable }
func (s stubItem) GetHelpText() string { return "" }

func newStubMenu(selectable ...bool) *Menu {
	items := make([]MenuItem, len(selectable))
	for i, sel := range selectable {
		items[i] = stubItem{label: string(rune('a' + i)), selectable: sel}
	}
	return New("test", items, DefaultLayout(metrics))
}

func TestNew_SkipsUnselectable(t *testing.T) {
	m := newStubMenu(false, true, true)
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if got := newStubMenu(false).Selected; got != -1 {
		t.Errorf("all unselectable Selected = %d, want -1", got)
	}
}

func TestMenu_Wraps(t *testing.T) {
	m := newStubMenu(true, false, true)

	m.Update(input.Pressing(input.ActionMenuUp))
	if m.Selected != 2 {
		t.Errorf("up from top = %d, want 2", m.Selected)
	}
	m.Update(input.Pressing(input.ActionMenuDown))
	if m.Selected != 0 {
		t.Errorf("down from bottom = %d, want 0", m.Selected)
	}
	m.Update(input.Pressing(input.ActionMenuDown))
	if m.Selected != 2 {
		t.Errorf("down skipping unselectable = %d, want 2", m.Selected)
	}
}

func TestMenu_HeldDoesNotRepeat(t *testing.T) {
	m := newStubMenu(true, true, true)
	for i := 0; i < 10; i++ {
		m.Update(input.Holding(input.ActionMenuDown))
	}
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_Confirm(t *testing.T) {
	m := newStubMenu(true, true)
	m.Update(input.Pressing(input.ActionMenuDown))
	item, ok := m.Update(input.Pressing(input.ActionConfirm))
	if !ok || item.GetLabel() != "b" {
		t.Errorf("Confirm = %v, %v, want b", item, ok)
	}
	if _, ok := m.Update(input.Snapshot{}); ok {
		t.Error("idle input activated an item")
	}
}

func TestMenu_Pointer(t *testing.T) {
	m := newStubMenu(true, true, false)
	r := m.Layout.ItemRect(1)
	c := r.Center()

	if _, ok := m.Update(input.Snapshot{PointerX: c.X, PointerY: c.Y, PointerMoved: true}); ok {
		t.Error("hover activated an item")
	}
	if m.Selected != 1 {
		t.Errorf("hover Selected = %d, want 1", m.Selected)
	}

	item, ok := m.Update(input.Snapshot{PointerX: c.X, PointerY: c.Y, Clicked: true})
	if !ok || item.GetLabel() != "b" {
		t.Errorf("click = %v, %v, want b", item, ok)
	}

	// unselectable rows ignore the pointer
	c = m.Layout.ItemRect(2).Center()
	if _, ok := m.Update(input.Snapshot{PointerX: c.X, PointerY: c.Y, Clicked: true}); ok {
		t.Error("click on unselectable item activated it")
	}
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}

	// outside every row
	if _, ok := m.Update(input.Snapshot{PointerX: 5, PointerY: 5, Clicked: true}); ok {
		t.Error("click outside menu activated an item")
	}
}

func TestLayout_HitTest(t *testing.T) {
	l := DefaultLayout(metrics)
	if got := l.HitTest(960, l.Top+l.Step+1, 3); got != 1 {
		t.Errorf("HitTest second row = %d, want 1", got)
	}
	if got := l.HitTest(960, l.Top+10*l.Step, 3); got != -1 {
		t.Errorf("HitTest below = %d, want -1", got)
	}
	if l.ItemRect(0).Overlaps(l.ItemRect(1)) {
		t.Error("adjacent rows overlap")
	}
}

func TestSetItems_KeepsCursor(t *testing.T) {
	m := newStubMenu(true, true, true)
	m.Selected = 2
	m.SetItems(m.Items)
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m.SetItems(m.Items[:1])
	if m.Selected != 0 {
		t.Errorf("shrunk Selected = %d, want 0", m.Selected)
	}
}

func TestMainMenu_Actions(t *testing.T) {
	m := NewMainMenu(metrics)
	want := []MainMenuAction{MainMenuActionPlay, MainMenuActionOptions, MainMenuActionQuit}
	if len(m.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(m.Items), len(want))
	}
	for i, a := range want {
		if got := m.Items[i].(*MainMenuItem).Action; got != a {
			t.Errorf("item %d action = %v, want %v", i, got, a)
		}
	}
}

func TestOptionsItem_Apply(t *testing.T) {
	cfg := config.Default()
	cfg.MusicVolume = 0.5
	m := NewOptionsMenu(metrics, cfg)
	item := func(a OptionsAction) *OptionsItem {
		for _, it := range m.Items {
			if o := it.(*OptionsItem); o.Action == a {
				return o
			}
		}
		t.Fatalf("no item for action %v", a)
		return nil
	}

	music := cfg.MusicOn
	item(OptionsActionMusic).Apply()
	if cfg.MusicOn == music {
		t.Error("music toggle did not change MusicOn")
	}

	item(OptionsActionVolumeUp).Apply()
	if cfg.MusicVolume != 0.6 {
		t.Errorf("volume up = %v, want 0.6", cfg.MusicVolume)
	}
	for i := 0; i < 20; i++ {
		item(OptionsActionVolumeDown).Apply()
	}
	if cfg.MusicVolume != 0 {
		t.Errorf("volume floor = %v, want 0", cfg.MusicVolume)
	}
	if item(OptionsActionVolumeDown).Apply() {
		t.Error("volume down at 0 reported a change")
	}

	fs := cfg.Fullscreen
	item(OptionsActionFullscreen).Apply()
	if cfg.Fullscreen == fs {
		t.Error("fullscreen toggle did not change Fullscreen")
	}

	cfg.Language = "en_US"
	item(OptionsActionLanguage).Apply()
	if cfg.Language != "fr_FR" {
		t.Errorf("language = %q, want fr_FR", cfg.Language)
	}

	if item(OptionsActionBack).Apply() {
		t.Error("Back reported a change")
	}
}

func TestOptionsItem_Labels(t *testing.T) {
	cfg := config.Default()
	cfg.MusicOn = true
	cfg.MusicVolume = 0.5
	cfg.Fullscreen = false
	cfg.Language = "en_US"
	m := NewOptionsMenu(metrics, cfg)

	if got := m.Heading(); got != "Options" {
		t.Errorf("Heading() = %q, want %q", got, "Options")
	}
	want := []string{
		"Music: on",
		"Volume - (50%)",
		"Volume + (50%)",
		"Fullscreen: off",
		"Language: en_US",
		"Back",
	}
	if len(m.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(m.Items), len(want))
	}
	for i, it := range m.Items {
		if got := it.GetLabel(); got != want[i] {
			t.Errorf("item %d label = %q, want %q", i, got, want[i])
		}
	}

	m.Items[2].(*OptionsItem).Apply()
	if got := m.Items[1].GetLabel(); got != "Volume - (60%)" {
		t.Errorf("label after volume up = %q, want %q", got, "Volume - (60%)")
	}
}

func TestNextLanguage(t *testing.T) {
	tests := map[string]string{
		"en_US": "fr_FR",
		"fr_FR": "en_US",
		"de_DE": "en_US",
	}
	for in, want := range tests {
		if got := NextLanguage(in); got != want {
			t.Errorf("NextLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestControlItems(t *testing.T) {
	input.ResetBindings()
	items := ControlItems()
	for _, it := range items {
		if it.IsSelectable() {
			t.Errorf("%q is selectable", it.GetLabel())
		}
	}
	jump := (&ControlItem{Action: input.ActionJump}).GetLabel()
	if !strings.HasPrefix(jump, "Jump: ") || !strings.Contains(jump, "space") {
		t.Errorf("jump label = %q", jump)
	}
}
