package modes

import (
	"fmt"

	"github.com/rs/zerolog"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/config"
)

// Deps are the services the controller hands to its modes. Audio and Display
// may be nil.
type Deps struct {
	Config     *config.Config
	Metrics    world.Metrics
	Cinematics *cinematic.Manager
	Audio      Audio
	Display    Display
}

// Controller owns the modes and routes each tick's input to the active one.
//
// Menu, Options and Victory are built once and keep their state across
// visits. Play is rebuilt on every entry so a new playthrough never sees the
// previous one.
type Controller struct {
	cfg        *config.Config
	metrics    world.Metrics
	cinematics *cinematic.Manager
	audio      Audio
	display    Display

	current Mode
	menu    *MenuMode
	options *OptionsMode
	victory *VictoryMode
	play    *PlayMode

	quit bool
	log  zerolog.Logger
}

// NewController creates the controller in the menu mode.
func NewController(d Deps) *Controller {
	c := &Controller{
		cfg:        d.Config,
		metrics:    d.Metrics,
		cinematics: d.Cinematics,
		audio:      d.Audio,
		display:    d.Display,
		log:        logging.New("modes"),
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.cinematics == nil {
		c.cinematics = cinematic.NewManager(nil)
	}
	if c.audio == nil {
		c.audio = nopAudio{}
	}
	if c.display == nil {
		c.display = nopDisplay{}
	}

	c.menu = newMenuMode(c.metrics)
	c.options = newOptionsMode(c.metrics, c.cfg, c.audio, c.display)
	c.victory = newVictoryMode()
	c.current = c.menu
	c.current.Enter()
	return c
}

// Change makes id the active mode. Entering Play always starts a new
// playthrough; every other mode is reused as it was left. Change panics on
// an unknown id.
func (c *Controller) Change(id ModeID) {
	if !id.Valid() {
		panic(fmt.Sprintf("modes: unknown mode %v", id))
	}

	from := c.current.ID()
	if from == ModePlay && id != ModePlay {
		// an abandoned cinematic must not leak into the next playthrough
		c.cinematics.Stop()
	}

	switch id {
	case ModeMenu:
		c.current = c.menu
	case ModeOptions:
		c.current = c.options
	case ModeVictory:
		if c.play != nil {
			c.victory.result = c.play.Result()
		}
		c.current = c.victory
	case ModePlay:
		p, err := newPlayMode(c.metrics, c.cfg, c.cinematics, c.audio)
		if err != nil {
			c.log.Error().Err(err).Msg("cannot start playthrough")
			c.current = c.menu
			return
		}
		c.play = p
		c.current = p
	}
	c.current.Enter()
	c.log.Debug().Stringer("from", from).Stringer("to", id).Msg("mode changed")
}

// Tick runs one frame of input through the machine.
//
// Fullscreen toggling is global and never changes mode. Cancel during play
// returns to the menu before the active mode sees the input.
func (c *Controller) Tick(in input.Snapshot) {
	if c.quit {
		return
	}

	if in.JustPressed(input.ActionToggleFullscreen) {
		c.cfg.Fullscreen = !c.cfg.Fullscreen
		c.display.SetFullscreen(c.cfg.Fullscreen)
	}

	if c.current.ID() == ModePlay && in.JustPressed(input.ActionCancel) {
		c.Change(ModeMenu)
	}

	next := c.current.Tick(in)
	switch {
	case next.Quit:
		c.log.Info().Msg("quit requested")
		c.quit = true
	case next.Change:
		c.Change(next.To)
	}
}

// Current returns the active mode's id.
func (c *Controller) Current() ModeID {
	return c.current.ID()
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.current
}

// Quitting reports whether the player chose to quit.
func (c *Controller) Quitting() bool {
	return c.quit
}

// Config returns the live configuration.
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// Cinematics returns the shared cinematic service.
func (c *Controller) Cinematics() *cinematic.Manager {
	return c.cinematics
}
