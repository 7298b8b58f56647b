package menu

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/input"
)

// ControlItem is a read-only line of the controls panel shown beside the
// options menu.
type ControlItem struct {
	Action input.Action
}

// GetLabel returns the action name followed by every code bound to it.
func (b *ControlItem) GetLabel() string {
	codes := input.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = gotext.Get("UNBOUND")
	}
	return fmt.Sprintf("%s: %s", input.ActionName(b.Action), codeText)
}

// IsSelectable returns whether this item can be selected.
func (b *ControlItem) IsSelectable() bool {
	return false
}

// GetHelpText returns help text for this item.
func (b *ControlItem) GetHelpText() string {
	return ""
}

// ControlItems lists the gameplay actions with their current bindings.
func ControlItems() []MenuItem {
	actions := []input.Action{
		input.ActionMoveLeft,
		input.ActionMoveRight,
		input.ActionJump,
		input.ActionInvert,
		input.ActionSkip,
		input.ActionToggleMusic,
		input.ActionToggleFullscreen,
		input.ActionCancel,
	}
	items := make([]MenuItem, len(actions))
	for i, a := range actions {
		items[i] = &ControlItem{Action: a}
	}
	return items
}
