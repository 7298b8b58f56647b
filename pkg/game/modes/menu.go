package modes

import (
	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/menu"
)

// MenuMode is the title screen.
type MenuMode struct {
	Menu *menu.Menu
}

func newMenuMode(m world.Metrics) *MenuMode {
	return &MenuMode{Menu: menu.NewMainMenu(m)}
}

func (m *MenuMode) ID() ModeID { return ModeMenu }

func (m *MenuMode) Enter() {}

func (m *MenuMode) Tick(in input.Snapshot) Next {
	item, ok := m.Menu.Update(in)
	if !ok {
		return Stay()
	}
	main, ok := item.(*menu.MainMenuItem)
	if !ok {
		return Stay()
	}
	switch main.Action {
	case menu.MainMenuActionPlay:
		return GoTo(ModePlay)
	case menu.MainMenuActionOptions:
		return GoTo(ModeOptions)
	case menu.MainMenuActionQuit:
		return Quit()
	}
	return Stay()
}
