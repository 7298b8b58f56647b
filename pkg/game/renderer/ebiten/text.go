package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type align int

const (
	alignStart align = iota
	alignCenter
	alignEnd
)

// drawText draws str with its top edge at y. x is the left edge, centre or
// right edge depending on a.
func (r *Renderer) drawText(screen *ebiten.Image, str string, x, y, size float64, bold bool, col color.Color, a align) {
	face := r.fonts.face(size*r.metrics.Scale, bold)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	switch a {
	case alignCenter:
		op.PrimaryAlign = text.AlignCenter
	case alignEnd:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(screen, str, face, op)
}

// textWidth returns the rendered width of str.
func (r *Renderer) textWidth(str string, size float64, bold bool) float64 {
	w, _ := text.Measure(str, r.fonts.face(size*r.metrics.Scale, bold), 0)
	return w
}

// lineHeight is the vertical step between lines of the given size.
func (r *Renderer) lineHeight(size float64) float64 {
	return size * r.metrics.Scale * 1.3
}
