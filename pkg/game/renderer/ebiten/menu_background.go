package ebiten

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"loopescape/pkg/engine/world"
)

const driftSpeed = 1.3

// Dark shades so the shapes stay behind the menu.
var driftColors = []color.Color{
	color.RGBA{40, 40, 60, 255},
	color.RGBA{60, 40, 40, 255},
	color.RGBA{40, 60, 40, 255},
	color.RGBA{55, 45, 55, 255},
	color.RGBA{35, 50, 55, 255},
}

// driftShape is a key or switch outline floating behind the menus.
type driftShape struct {
	x, y   float64
	vx, vy float64
	size   float64
	round  bool
	color  color.Color
}

type menuBackground struct {
	w, h   float64
	shapes []driftShape
	rng    *rand.Rand
}

func newMenuBackground(m world.Metrics) *menuBackground {
	return newMenuBackgroundSeeded(m, rand.Int63())
}

func newMenuBackgroundSeeded(m world.Metrics, seed int64) *menuBackground {
	rng := rand.New(rand.NewSource(seed))
	bg := &menuBackground{w: m.Width, h: m.Height, rng: rng}
	n := 30 + rng.Intn(21)
	bg.shapes = make([]driftShape, n)
	for i := range bg.shapes {
		round := rng.Intn(2) == 0
		size := m.SwitchBox
		if round {
			size = m.ItemBox
		}
		bg.shapes[i] = driftShape{
			x:     rng.Float64() * m.Width,
			y:     rng.Float64() * m.Height,
			vx:    (rng.Float64() - 0.5) * driftSpeed,
			vy:    (rng.Float64() - 0.5) * driftSpeed,
			size:  size,
			round: round,
			color: driftColors[rng.Intn(len(driftColors))],
		}
	}
	return bg
}

// update moves every shape one tick, wrapping at the screen edges, and
// occasionally nudges its velocity.
func (bg *menuBackground) update() {
	for i := range bg.shapes {
		s := &bg.shapes[i]
		s.x = wrap(s.x+s.vx, bg.w)
		s.y = wrap(s.y+s.vy, bg.h)

		if bg.rng.Float64() < 0.01 {
			s.vx = world.Clamp(s.vx+(bg.rng.Float64()-0.5)*0.13, -1, 1)
			s.vy = world.Clamp(s.vy+(bg.rng.Float64()-0.5)*0.13, -1, 1)
		}
	}
}

func wrap(v, limit float64) float64 {
	switch {
	case v < 0:
		return v + limit
	case v >= limit:
		return v - limit
	}
	return v
}

func (bg *menuBackground) draw(screen *ebiten.Image) {
	for _, s := range bg.shapes {
		if s.round {
			vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), float32(s.size/2), s.color, true)
			continue
		}
		half := float32(s.size / 2)
		vector.StrokeRect(screen, float32(s.x)-half, float32(s.y)-half, 2*half, 2*half, 3, s.color, true)
	}
}
