package ebiten

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/game/menu"
	"loopescape/pkg/game/modes"
)

// appendRoundedRect adds a clockwise rounded rectangle to the path. (x, y)
// is the top-left corner and r the corner radius.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding.
// A CounterClockwise rect inside a Clockwise one cuts a hole.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawPanel draws a rounded rectangle with a soft shadow ring, a fill and
// a border. The shadow is the border colour darkened.
func drawPanel(screen *ebiten.Image, x, y, w, h float32, bg, border color.Color) {
	const shadowSpread = 8
	br, bgr, bb, _ := border.RGBA()
	shadow := func(v uint32) uint8 { return max(uint8((v>>8)*15/255), 8) }

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		fi := float32(i)
		path.Reset()
		appendRoundedRect(&path, x-fi, y-fi, w+2*fi, h+2*fi, cornerRadius+fi)
		appendRoundedRectDir(&path, x-fi+1, y-fi+1, w+2*fi-2, h+2*fi-2, cornerRadius+fi-1, vector.CounterClockwise)
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(color.RGBA{shadow(br), shadow(bgr), shadow(bb), uint8(min(12+i*8, 55))})
		vector.FillPath(screen, &path, nil, op)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(bg)
	vector.FillPath(screen, &path, nil, op)

	op = &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(border)
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}, op)
}

// drawMenuScreen paints the backdrop shared by the main and options menus.
func (r *Renderer) drawMenuScreen(screen *ebiten.Image) {
	screen.Fill(colorMenuScreen)
	r.bg.draw(screen)
}

func (r *Renderer) drawMenu(screen *ebiten.Image, m *menu.Menu) {
	l := m.Layout
	s := r.metrics.Scale

	r.drawText(screen, m.Heading(), l.CenterX, l.Top-180*s, sizeTitle, true, colorAction, alignCenter)

	for i, it := range m.Items {
		rect := l.ItemRect(i)
		x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)
		col := colorText
		switch {
		case i == m.Selected:
			drawPanel(screen, x, y, w, h, colorFocus, pulse(colorAction, r.tick))
		case it.IsSelectable():
			drawPanel(screen, x, y, w, h, colorPanel, colorPanelEdge)
		default:
			col = colorSubtle
		}
		ty := rect.Y + (rect.H-r.lineHeight(sizeItem)/1.3)/2
		r.drawText(screen, it.GetLabel(), l.CenterX, ty, sizeItem, i == m.Selected, col, alignCenter)
	}

	if cur := m.Current(); cur != nil {
		if help := cur.GetHelpText(); help != "" {
			below := l.ItemRect(len(m.Items)).Y + 20*s
			r.drawText(screen, help, l.CenterX, below, sizeSmall, false, colorSubtle, alignCenter)
		}
	}
}

// drawControls lists the key bindings in a panel beside the options menu.
func (r *Renderer) drawControls(screen *ebiten.Image, o *modes.OptionsMode) {
	s := r.metrics.Scale
	step := r.lineHeight(sizeSmall)
	w := 520 * s
	h := step*float64(len(o.Controls)) + r.lineHeight(sizeBody) + 50*s
	x := r.metrics.Width - w - 60*s
	y := o.Menu.Layout.Top

	drawPanel(screen, float32(x), float32(y), float32(w), float32(h), colorPanel, colorPanelEdge)
	ty := y + 20*s
	r.drawText(screen, gotext.Get("CONTROLS_TITLE"), x+24*s, ty, sizeBody, true, colorAction, alignStart)
	ty += r.lineHeight(sizeBody) + 10*s
	for _, it := range o.Controls {
		r.drawText(screen, it.GetLabel(), x+24*s, ty, sizeSmall, false, colorText, alignStart)
		ty += step
	}
}

// drawVictory shows the run summary. The panel eases in over the first
// second.
func (r *Renderer) drawVictory(screen *ebiten.Image, res modes.Result) {
	screen.Fill(colorBlack)
	m := r.metrics
	s := m.Scale

	if r.victoryStart == 0 {
		r.victoryStart = r.tick
	}
	t := min(float64(r.tick-r.victoryStart)/TPS, 1)
	lift := (1 - easeInOut(t)) * 60 * s

	w, h := 900*s, 420*s
	x, y := (m.Width-w)/2, (m.Height-h)/2+lift
	drawPanel(screen, float32(x), float32(y), float32(w), float32(h), colorPanel, colorSuccess)

	cx := m.Width / 2
	ty := y + 40*s
	r.drawText(screen, gotext.Get("VICTORY_TITLE"), cx, ty, sizeHeading, true, colorSuccess, alignCenter)
	ty += r.lineHeight(sizeHeading) + 30*s
	r.drawText(screen, fmt.Sprintf(gotext.Get("VICTORY_TIME"), formatElapsed(res.Elapsed)), cx, ty, sizeBody, false, colorText, alignCenter)
	ty += r.lineHeight(sizeBody)
	r.drawText(screen, fmt.Sprintf(gotext.Get("VICTORY_ROOMS"), res.RoomsVisited, res.Rooms), cx, ty, sizeBody, false, colorText, alignCenter)
	ty += r.lineHeight(sizeBody) + 40*s
	r.drawText(screen, gotext.Get("VICTORY_CONTINUE"), cx, ty, sizeSmall, false, pulse(colorSubtle, r.tick), alignCenter)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// easeInOut is the cubic ease-in-out curve on [0, 1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
