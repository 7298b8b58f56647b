// Package ebiten is the Ebiten front end: it samples input once per tick,
// feeds it to the mode controller and draws whatever mode is active.
package ebiten

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"loopescape/pkg/engine/assets"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/config"
	"loopescape/pkg/game/modes"
	"loopescape/pkg/game/sprite"
)

// TPS is the fixed simulation rate.
const TPS = 60

// Asset names.
const (
	backgroundImage = "image/background.jpg"
	playerSheet     = "image/player_walk.png"
)

// Renderer implements ebiten.Game on top of a modes.Controller.
type Renderer struct {
	ctrl    *modes.Controller
	cache   *assets.Cache
	metrics world.Metrics
	sheet   *sprite.Sheet
	fonts   *fonts

	// decoded assets converted to GPU images, by asset name or source image
	images  map[string]*ebiten.Image
	sprites map[image.Image]*ebiten.Image

	pointer      image.Point
	tick         int
	victoryStart int
	bg           *menuBackground
	openedLog    bool
	log          zerolog.Logger
}

// New creates a renderer for ctrl drawing on a logical screen laid out with m.
func New(ctrl *modes.Controller, cache *assets.Cache, m world.Metrics) (*Renderer, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		ctrl:    ctrl,
		cache:   cache,
		metrics: m,
		sheet:   sprite.Load(cache, playerSheet, m),
		fonts:   f,
		images:  make(map[string]*ebiten.Image),
		sprites: make(map[image.Image]*ebiten.Image),
		pointer: image.Pt(-1, -1),
		bg:      newMenuBackground(m),
		log:     logging.New("renderer"),
	}, nil
}

// Update runs one simulation tick (Ebiten interface).
func (r *Renderer) Update() error {
	if !r.openedLog {
		r.openedLog = true
		w, h := ebiten.WindowSize()
		r.log.Info().Int("width", w).Int("height", h).Msg("main window opened")
	}

	r.tick++
	r.ctrl.Tick(r.sample())
	if r.ctrl.Quitting() {
		return ebiten.Termination
	}
	switch r.ctrl.Current() {
	case modes.ModeMenu, modes.ModeOptions:
		r.bg.update()
	}
	if r.ctrl.Current() != modes.ModeVictory {
		r.victoryStart = 0
	}
	return nil
}

// Layout returns the fixed logical screen size; Ebiten scales it to the
// window (Ebiten interface).
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(r.metrics.Width), int(r.metrics.Height)
}

// Window switches the real window between fullscreen and windowed.
type Window struct {
	Width, Height int
}

// SetFullscreen implements modes.Display.
func (w Window) SetFullscreen(on bool) {
	ebiten.SetFullscreen(on)
	if !on && w.Width > 0 && w.Height > 0 {
		ebiten.SetWindowSize(w.Width, w.Height)
	}
}

// Run opens the window and blocks until the player quits.
func Run(r *Renderer, cfg *config.Config) error {
	ebiten.SetWindowTitle("Loop Escape")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(TPS)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
