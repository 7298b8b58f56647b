package modes

import (
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/config"
	"loopescape/pkg/game/menu"
)

// OptionsMode edits the player settings. Every change is applied at once and
// written to the preferences file.
type OptionsMode struct {
	Menu     *menu.Menu
	Controls []menu.MenuItem

	cfg     *config.Config
	audio   Audio
	display Display
	log     zerolog.Logger
}

func newOptionsMode(m world.Metrics, cfg *config.Config, audio Audio, display Display) *OptionsMode {
	return &OptionsMode{
		Menu:     menu.NewOptionsMenu(m, cfg),
		Controls: menu.ControlItems(),
		cfg:      cfg,
		audio:    audio,
		display:  display,
		log:      logging.New("options"),
	}
}

func (o *OptionsMode) ID() ModeID { return ModeOptions }

func (o *OptionsMode) Enter() {}

func (o *OptionsMode) Tick(in input.Snapshot) Next {
	if in.JustPressed(input.ActionCancel) {
		return GoTo(ModeMenu)
	}
	if in.JustPressed(input.ActionToggleMusic) {
		o.activate(o.item(menu.OptionsActionMusic))
	}

	item, ok := o.Menu.Update(in)
	if !ok {
		return Stay()
	}
	opt, ok := item.(*menu.OptionsItem)
	if !ok {
		return Stay()
	}
	if opt.Action == menu.OptionsActionBack {
		return GoTo(ModeMenu)
	}
	o.activate(opt)
	return Stay()
}

func (o *OptionsMode) item(a menu.OptionsAction) *menu.OptionsItem {
	for _, it := range o.Menu.Items {
		if opt, ok := it.(*menu.OptionsItem); ok && opt.Action == a {
			return opt
		}
	}
	return nil
}

func (o *OptionsMode) activate(opt *menu.OptionsItem) {
	if opt == nil || !opt.Apply() {
		return
	}

	switch opt.Action {
	case menu.OptionsActionMusic:
		o.audio.SetMusicEnabled(o.cfg.MusicOn)
	case menu.OptionsActionVolumeDown, menu.OptionsActionVolumeUp:
		o.audio.SetMusicVolume(o.cfg.MusicVolume)
	case menu.OptionsActionFullscreen:
		o.display.SetFullscreen(o.cfg.Fullscreen)
	case menu.OptionsActionLanguage:
		gotext.Configure(o.cfg.LocaleDir, o.cfg.Language, "default")
	}

	if err := o.cfg.Save(); err != nil {
		o.log.Warn().Err(err).Msg("could not save preferences")
	}
}
