package ebiten

import (
	"image"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "loopescape/pkg/engine/input"
)

// Left stick threshold; smaller deflections are treated as drift.
const deadZone = 0.5

// gamepadCodes maps standard layout buttons to the codes used in bindings.
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// keyCode converts an Ebiten key name to a binding code: "ArrowLeft"
// becomes "arrow_left", "F11" becomes "f11".
func keyCode(k ebiten.Key) string {
	return snakeCase(k.String())
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sample reads every device once and builds this tick's snapshot.
func (r *Renderer) sample() engineinput.Snapshot {
	var keys []ebiten.Key
	var held, pressed []string

	keys = inpututil.AppendPressedKeys(keys[:0])
	for _, k := range keys {
		held = append(held, keyCode(k))
	}
	keys = inpututil.AppendJustPressedKeys(keys[:0])
	for _, k := range keys {
		pressed = append(pressed, keyCode(k))
	}

	gh, gp := sampleGamepads()
	held = append(held, gh...)
	pressed = append(pressed, gp...)

	snap := engineinput.FromCodes(held, pressed)

	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	snap.PointerX, snap.PointerY = float64(x), float64(y)
	snap.PointerMoved = pos != r.pointer && r.pointer != image.Pt(-1, -1)
	r.pointer = pos
	snap.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return snap
}

// sampleGamepads returns the held and just-pressed codes of every
// connected gamepad with a standard layout. The left stick acts as the
// d-pad but never produces a press, so it cannot drive menus.
func sampleGamepads() (held, pressed []string) {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for btn, code := range gamepadCodes {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				held = append(held, code)
			}
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				pressed = append(pressed, code)
			}
		}

		stickX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case stickX < -deadZone:
			held = append(held, "gamepad_dpad_left")
		case stickX > deadZone:
			held = append(held, "gamepad_dpad_right")
		}
	}
	return held, pressed
}
