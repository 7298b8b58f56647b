// Package menu provides the cursor menus used by the menu and options modes.
package menu

import (
	"math"

	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/world"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Layout places menu items on the logical screen. The renderer draws with the
// same rectangles the pointer is tested against.
type Layout struct {
	CenterX    float64
	Top        float64
	ItemWidth  float64
	ItemHeight float64
	Step       float64
}

// DefaultLayout stacks items below the title in the middle of the screen.
func DefaultLayout(m world.Metrics) Layout {
	h := math.Round(m.Height * 0.08)
	return Layout{
		CenterX:    math.Floor(m.Width / 2),
		Top:        math.Round(m.Height * 0.35),
		ItemWidth:  math.Floor(m.Width / 3),
		ItemHeight: h,
		Step:       math.Round(h * 1.2),
	}
}

// ItemRect returns the rectangle of the i-th item.
func (l Layout) ItemRect(i int) world.Rect {
	return world.NewRect(l.CenterX-l.ItemWidth/2, l.Top+float64(i)*l.Step, l.ItemWidth, l.ItemHeight)
}

// HitTest returns the index of the item under the point, or -1.
func (l Layout) HitTest(x, y float64, n int) int {
	p := world.Vec{X: x, Y: y}
	for i := 0; i < n; i++ {
		if l.ItemRect(i).Contains(p) {
			return i
		}
	}
	return -1
}

// Menu is a list of items with a persistent selection cursor. It is driven
// one tick at a time by Update and never blocks.
type Menu struct {
	Title string // message id

	Items    []MenuItem
	Selected int
	Layout   Layout
}

// Titles are message ids held in a field, so lookups go through a variable.
var dynamicGet = gotext.Get

// Heading returns the translated title.
func (m *Menu) Heading() string {
	return dynamicGet(m.Title)
}

// New creates a menu with the cursor on the first selectable item.
func New(title string, items []MenuItem, layout Layout) *Menu {
	m := &Menu{Title: title, Layout: layout}
	m.SetItems(items)
	return m
}

// SetItems replaces the menu items. The cursor is kept when it still points
// at a selectable item.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	if m.Selected >= 0 && m.Selected < len(items) && items[m.Selected].IsSelectable() {
		return
	}
	m.Selected = m.first()
}

func (m *Menu) first() int {
	for i, item := range m.Items {
		if item.IsSelectable() {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor, or nil for an empty menu.
func (m *Menu) Current() MenuItem {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.Selected]
}

// MoveUp moves the cursor to the previous selectable item, wrapping to the
// bottom.
func (m *Menu) MoveUp() {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := ((m.Selected-step)%n + n) % n
		if m.Items[i].IsSelectable() {
			m.Selected = i
			return
		}
	}
}

// MoveDown moves the cursor to the next selectable item, wrapping to the top.
func (m *Menu) MoveDown() {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := (m.Selected + step) % n
		if m.Items[i].IsSelectable() {
			m.Selected = i
			return
		}
	}
}

// Update applies one tick of input. It returns the activated item, if any.
// Pointer motion over an item selects it and a click on it activates it.
func (m *Menu) Update(in input.Snapshot) (MenuItem, bool) {
	if len(m.Items) == 0 {
		return nil, false
	}

	if in.PointerMoved || in.Clicked {
		if i := m.Layout.HitTest(in.PointerX, in.PointerY, len(m.Items)); i >= 0 && m.Items[i].IsSelectable() {
			m.Selected = i
			if in.Clicked {
				return m.Items[i], true
			}
		}
	}

	switch {
	case in.JustPressed(input.ActionMenuUp):
		m.MoveUp()
	case in.JustPressed(input.ActionMenuDown):
		m.MoveDown()
	case in.JustPressed(input.ActionConfirm):
		if item := m.Current(); item != nil && item.IsSelectable() {
			return item, true
		}
	}
	return nil, false
}
