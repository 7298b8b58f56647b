package input

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// defaultBindings maps raw codes to actions. Multiple codes may point to the
// same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD, ZQSD)
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"q":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"space":       ActionJump,

	"i": ActionInvert,

	// Menus
	"arrow_up":     ActionMenuUp,
	"w":            ActionMenuUp,
	"z":            ActionMenuUp,
	"arrow_down":   ActionMenuDown,
	"s":            ActionMenuDown,
	"enter":        ActionConfirm,
	"numpad_enter": ActionConfirm,
	"escape":       ActionCancel,

	"f11": ActionToggleFullscreen,
	"m":   ActionToggleMusic,
	"tab": ActionSkip,

	// Controller/gamepad specific bindings
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_dpad_up":    ActionMenuUp,
	"gamepad_dpad_down":  ActionMenuDown,
	"gamepad_a":          ActionJump,
	"gamepad_y":          ActionInvert,
	"gamepad_b":          ActionCancel,
	"gamepad_start":      ActionConfirm,
}

// reserved codes keep their binding no matter what is rebound.
var reserved = newCodeSet("arrow_left", "arrow_right", "arrow_up", "arrow_down", "enter", "escape")

func newCodeSet(codes ...string) mapset.Set[string] {
	s := mapset.New[string]()
	for _, c := range codes {
		s.Put(c)
	}
	return s
}

var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}

// MapCode applies the current bindings to a raw code.
func MapCode(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// ApplyOverrides rebinds actions from a code -> action id map, as stored in
// the preferences file. Unknown action ids are reported and skipped.
func ApplyOverrides(overrides map[string]string) error {
	codes := make([]string, 0, len(overrides))
	for code := range overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var unknown []string
	for _, code := range codes {
		act, ok := ParseAction(overrides[code])
		if !ok {
			unknown = append(unknown, overrides[code])
			continue
		}
		if reserved.Has(code) {
			continue
		}
		bindings[code] = act
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown actions in bindings: %v", unknown)
	}
	return nil
}
