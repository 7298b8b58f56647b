package menu

import (
	"fmt"
	"math"

	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/config"
)

// VolumeStep is how much one press of a volume item changes the music volume.
const VolumeStep = 0.1

// Languages lists the locales the options menu cycles through.
var Languages = []string{"en_US", "fr_FR"}

// OptionsAction represents the action type for options menu items.
type OptionsAction int

const (
	OptionsActionMusic OptionsAction = iota
	OptionsActionVolumeDown
	OptionsActionVolumeUp
	OptionsActionFullscreen
	OptionsActionLanguage
	OptionsActionBack
)

// OptionsItem is an options menu entry. Its label reflects the live value in
// the configuration it points at.
type OptionsItem struct {
	Action OptionsAction
	cfg    *config.Config
}

// GetLabel returns the display label for this menu item.
func (o *OptionsItem) GetLabel() string {
	switch o.Action {
	case OptionsActionMusic:
		return fmt.Sprintf(gotext.Get("OPTION_MUSIC"), onOff(o.cfg.MusicOn))
	case OptionsActionVolumeDown:
		return fmt.Sprintf(gotext.Get("OPTION_VOLUME_DOWN"), percent(o.cfg.MusicVolume))
	case OptionsActionVolumeUp:
		return fmt.Sprintf(gotext.Get("OPTION_VOLUME_UP"), percent(o.cfg.MusicVolume))
	case OptionsActionFullscreen:
		return fmt.Sprintf(gotext.Get("OPTION_FULLSCREEN"), onOff(o.cfg.Fullscreen))
	case OptionsActionLanguage:
		return fmt.Sprintf(gotext.Get("OPTION_LANGUAGE"), o.cfg.Language)
	case OptionsActionBack:
		return gotext.Get("OPTION_BACK")
	default:
		return ""
	}
}

// IsSelectable returns whether this item can be selected.
func (o *OptionsItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (o *OptionsItem) GetHelpText() string {
	if o.Action == OptionsActionMusic {
		return gotext.Get("OPTION_MUSIC_HELP")
	}
	return ""
}

// Apply changes the configuration according to the item. It reports whether
// anything changed; Back never changes anything.
func (o *OptionsItem) Apply() bool {
	c := o.cfg
	switch o.Action {
	case OptionsActionMusic:
		c.MusicOn = !c.MusicOn
	case OptionsActionVolumeDown:
		return c.SetMusicVolume(stepVolume(c.MusicVolume, -VolumeStep))
	case OptionsActionVolumeUp:
		return c.SetMusicVolume(stepVolume(c.MusicVolume, VolumeStep))
	case OptionsActionFullscreen:
		c.Fullscreen = !c.Fullscreen
	case OptionsActionLanguage:
		c.Language = NextLanguage(c.Language)
	default:
		return false
	}
	return true
}

// NewOptionsMenu builds the options menu over cfg.
func NewOptionsMenu(m world.Metrics, cfg *config.Config) *Menu {
	actions := []OptionsAction{
		OptionsActionMusic,
		OptionsActionVolumeDown,
		OptionsActionVolumeUp,
		OptionsActionFullscreen,
		OptionsActionLanguage,
		OptionsActionBack,
	}
	items := make([]MenuItem, len(actions))
	for i, a := range actions {
		items[i] = &OptionsItem{Action: a, cfg: cfg}
	}
	return New("OPTIONS_TITLE", items, DefaultLayout(m))
}

// NextLanguage returns the language after cur in Languages. Unknown values
// restart the cycle.
func NextLanguage(cur string) string {
	for i, l := range Languages {
		if l == cur {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}

// stepVolume rounds to one decimal so repeated steps land on exact tenths.
func stepVolume(v, delta float64) float64 {
	return world.Clamp(math.Round((v+delta)*10)/10, 0, 1)
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

func onOff(on bool) string {
	if on {
		return gotext.Get("ON")
	}
	return gotext.Get("OFF")
}
