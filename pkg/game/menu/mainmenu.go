package menu

import (
	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/world"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionPlay MainMenuAction = iota
	MainMenuActionOptions
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	switch m.Action {
	case MainMenuActionPlay:
		return gotext.Get("MENU_PLAY")
	case MainMenuActionOptions:
		return gotext.Get("MENU_OPTIONS")
	case MainMenuActionQuit:
		return gotext.Get("MENU_QUIT")
	default:
		return ""
	}
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionPlay:
		return gotext.Get("MENU_PLAY_HELP")
	case MainMenuActionOptions:
		return gotext.Get("MENU_OPTIONS_HELP")
	case MainMenuActionQuit:
		return gotext.Get("MENU_QUIT_HELP")
	default:
		return ""
	}
}

// NewMainMenu builds the title screen menu.
func NewMainMenu(m world.Metrics) *Menu {
	return New("GAME_TITLE", []MenuItem{
		&MainMenuItem{Action: MainMenuActionPlay},
		&MainMenuItem{Action: MainMenuActionOptions},
		&MainMenuItem{Action: MainMenuActionQuit},
	}, DefaultLayout(m))
}
