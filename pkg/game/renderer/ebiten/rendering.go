package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/modes"
	"loopescape/pkg/game/player"
	"loopescape/pkg/game/room"
	"loopescape/pkg/game/state"
)

// Draw renders the active mode (Ebiten interface).
func (r *Renderer) Draw(screen *ebiten.Image) {
	switch m := r.ctrl.Mode().(type) {
	case *modes.PlayMode:
		r.drawPlay(screen, m.Game())
	case *modes.MenuMode:
		r.drawMenuScreen(screen)
		r.drawMenu(screen, m.Menu)
	case *modes.OptionsMode:
		r.drawMenuScreen(screen)
		r.drawMenu(screen, m.Menu)
		r.drawControls(screen, m)
	case *modes.VictoryMode:
		r.drawVictory(screen, m.Result())
	}
}

func (r *Renderer) drawPlay(screen *ebiten.Image, g *state.Game) {
	if cin := r.ctrl.Cinematics(); cin.IsPlaying() {
		r.drawCinematic(screen, cin)
		return
	}
	r.drawRoom(screen, g.Rooms.Current(), g.Inverted)
	r.drawPlayer(screen, g.Player, g.Inverted)
	r.drawHUD(screen, g)
}

func (r *Renderer) drawCinematic(screen *ebiten.Image, cin *cinematic.Manager) {
	screen.Fill(colorBlack)
	if name, ok := cin.Frame(); ok {
		if img := r.assetImage(name); img != nil {
			r.drawFitted(screen, img)
		}
	}
	s := r.metrics.Scale
	r.drawText(screen, gotext.Get("CINEMATIC_SKIP"), r.metrics.Width-40*s, r.metrics.Height-70*s,
		sizeSmall, false, colorSubtle, alignEnd)
}

// drawFitted scales img to fit the screen, keeping its aspect ratio, and
// centres it.
func (r *Renderer) drawFitted(screen, img *ebiten.Image) {
	b := img.Bounds()
	sx := r.metrics.Width / float64(b.Dx())
	sy := r.metrics.Height / float64(b.Dy())
	k := min(sx, sy)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate((r.metrics.Width-float64(b.Dx())*k)/2, (r.metrics.Height-float64(b.Dy())*k)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawRoom(screen *ebiten.Image, rm *room.Room, inverted bool) {
	m := r.metrics
	switch bg := r.assetImage(backgroundImage); {
	case inverted:
		screen.Fill(colorWhite)
	case bg != nil:
		b := bg.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(m.Width/float64(b.Dx()), m.Height/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(bg, op)
	default:
		screen.Fill(colorBlack)
	}

	if rm.Decor != nil {
		fillRect(screen, *rm.Decor, pick(inverted, colorWhite, colorGray))
	}

	doorColor := pick(inverted, colorBlack, colorWhite)
	for _, side := range world.AllSides() {
		d := rm.Door(side)
		// doors sit just off screen; draw their inner edge as a frame
		rect := d.Rect
		if side == world.Front {
			rect.X = m.Width - rect.W
		} else {
			rect.X = 0
		}
		if d.HasTarget() {
			fillRect(screen, rect, doorColor)
		} else {
			vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
				float32(4*m.Scale), doorColor, false)
		}
	}

	for _, it := range rm.Items() {
		if it.Hidden && !inverted {
			continue
		}
		radius, col := m.Width/80, color.Color(colorRed)
		if it.Kind == world.ItemInversionPower {
			radius, col = m.Width/60, colorBlue
		}
		if inverted {
			col = colorBlack
		}
		vector.DrawFilledCircle(screen, float32(it.Pos.X), float32(it.Pos.Y), float32(radius), col, true)
	}

	half := m.Width / 40
	for _, sw := range rm.Switches() {
		if sw.Hidden && !inverted {
			continue
		}
		var col color.Color
		switch {
		case inverted && sw.Active:
			col = colorBlack
		case inverted:
			col = colorGray
		case sw.Active:
			col = colorRed
		default:
			col = pulse(colorWhite, r.tick)
		}
		fillRect(screen, world.CenteredSquare(sw.Pos, 2*half), col)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *player.Player, inverted bool) {
	frame := r.sheet.Frame(p.Frame(), p.Facing == player.FacingLeft, inverted)
	img := r.spriteImage(frame)
	b := img.Bounds()

	// frames carry padding, so centre on the body and stand on its bottom edge
	rect := p.Rect()
	c := rect.Center()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.X-float64(b.Dx())/2, rect.Bottom()-float64(b.Dy()))
	screen.DrawImage(img, op)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	s := r.metrics.Scale
	fg := pick(g.Inverted, colorBlack, colorWhite)

	active, total := g.Rooms.SwitchProgress()
	lines := []string{
		fmt.Sprintf(gotext.Get("HUD_ROOM"), g.Rooms.Current().ID),
		fmt.Sprintf(gotext.Get("HUD_KEYS"), g.Player.Keys()),
		fmt.Sprintf(gotext.Get("HUD_SWITCHES"), active, total),
	}
	if g.Player.HasInversionPower {
		mode := gotext.Get("OFF")
		if g.Inverted {
			mode = gotext.Get("ON")
		}
		lines = append(lines, fmt.Sprintf(gotext.Get("HUD_INVERSION"), mode))
	}

	x, y := 30*s, 24*s
	for _, l := range lines {
		r.drawText(screen, l, x, y, sizeBody, false, fg, alignStart)
		y += r.lineHeight(sizeBody)
	}

	if len(g.Messages) == 0 {
		return
	}
	step := r.lineHeight(sizeSmall)
	h := step*float64(len(g.Messages)) + 20*s
	top := r.metrics.Height - h - 20*s
	if !g.Inverted {
		vector.DrawFilledRect(screen, 0, float32(top), float32(r.metrics.Width), float32(h+20*s), colorHUDShade, false)
	}
	y = top + 10*s
	for i, msg := range g.Messages {
		col := fg
		if i < len(g.Messages)-1 {
			col = pick(g.Inverted, colorGray, colorSubtle)
		}
		r.drawText(screen, msg, x, y, sizeSmall, false, col, alignStart)
		y += step
	}
}

// assetImage returns the named image from the asset cache as a GPU image,
// or nil if it cannot be loaded. Results, including misses, are cached.
func (r *Renderer) assetImage(name string) *ebiten.Image {
	if img, ok := r.images[name]; ok {
		return img
	}
	var out *ebiten.Image
	if src, ok := r.cache.Image(name); ok {
		out = ebiten.NewImageFromImage(src)
	}
	r.images[name] = out
	return out
}

// spriteImage converts a sprite frame once and reuses the GPU copy.
func (r *Renderer) spriteImage(src image.Image) *ebiten.Image {
	if img, ok := r.sprites[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	r.sprites[src] = img
	return img
}

func fillRect(screen *ebiten.Image, rect world.Rect, col color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), col, false)
}

func pick(cond bool, yes, no color.Color) color.Color {
	if cond {
		return yes
	}
	return no
}
