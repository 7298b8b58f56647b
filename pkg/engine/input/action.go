// Package input turns raw device codes into logical actions and packs each
// tick's actions into a Snapshot passed by value to the simulation.
package input

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveLeft
	ActionMoveRight
	ActionJump

	// Abilities
	ActionInvert

	// Meta / UI
	ActionCancel
	ActionConfirm
	ActionMenuUp
	ActionMenuDown
	ActionToggleFullscreen
	ActionToggleMusic
	ActionSkip

	actionCount
)

var actionIDs = [...]string{
	ActionNone:             "none",
	ActionMoveLeft:         "move_left",
	ActionMoveRight:        "move_right",
	ActionJump:             "jump",
	ActionInvert:           "invert",
	ActionCancel:           "cancel",
	ActionConfirm:          "confirm",
	ActionMenuUp:           "menu_up",
	ActionMenuDown:         "menu_down",
	ActionToggleFullscreen: "toggle_fullscreen",
	ActionToggleMusic:      "toggle_music",
	ActionSkip:             "skip",
}

// String returns the stable identifier used in preference files.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "none"
	}
	return actionIDs[a]
}

// ParseAction is the inverse of String.
func ParseAction(id string) (Action, bool) {
	for a, s := range actionIDs {
		if s == id && Action(a) != ActionNone {
			return Action(a), true
		}
	}
	return ActionNone, false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionJump:
		return "Jump"
	case ActionInvert:
		return "Invert Colors"
	case ActionCancel:
		return "Back"
	case ActionConfirm:
		return "Confirm"
	case ActionMenuUp:
		return "Menu Up"
	case ActionMenuDown:
		return "Menu Down"
	case ActionToggleFullscreen:
		return "Toggle Fullscreen"
	case ActionToggleMusic:
		return "Toggle Music"
	case ActionSkip:
		return "Skip"
	default:
		return "None"
	}
}

// ActionSet is a bitset of actions.
type ActionSet uint32

// NewActionSet builds a set holding the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	return s | 1<<uint(a)
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s&(1<<uint(a)) != 0
}

// Any reports whether at least one of the actions is in the set.
func (s ActionSet) Any(actions ...Action) bool {
	for _, a := range actions {
		if s.Has(a) {
			return true
		}
	}
	return false
}

// Empty reports whether no action is set.
func (s ActionSet) Empty() bool {
	return s == 0
}
