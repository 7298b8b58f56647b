// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"loopescape/pkg/engine/terminal"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/room"
)

const roomDumpFilename = "rooms.txt"

const maxRuleWidth = 72

var (
	styleHeader  = color.Style{color.FgCyan, color.OpBold}
	styleSection = color.Style{color.FgMagenta, color.OpBold}
	styleCurrent = color.Style{color.FgGreen, color.OpBold}
	styleHidden  = color.Style{color.FgGray}
	styleDead    = color.Style{color.FgRed}
)

// dumper writes the dump, styling text only when colored is set.
type dumper struct {
	w       io.Writer
	colored bool
}

func (d dumper) style(s color.Style, text string) string {
	if !d.colored {
		return text
	}
	return s.Sprint(text)
}

func (d dumper) line(format string, a ...any) {
	fmt.Fprintf(d.w, format+"\n", a...)
}

// WriteRoomDump writes a sectioned, key: value description of the room
// graph: metadata, then one block per room with doors, items and switches.
func WriteRoomDump(w io.Writer, mgr *room.Manager, colored bool) {
	d := dumper{w: w, colored: colored}
	rule := strings.Repeat("-", terminal.RuleWidth(maxRuleWidth))
	if !colored {
		rule = strings.Repeat("-", maxRuleWidth)
	}

	active, total := mgr.SwitchProgress()
	d.line("%s", d.style(styleHeader, "=== ROOM DUMP (graph, items, switches) ==="))
	d.line("")
	d.line("%s", d.style(styleSection, "--- Metadata ---"))
	d.line("rooms: %d", len(mgr.Rooms()))
	d.line("start_room: %d", mgr.Start())
	d.line("current_room: %d", mgr.Current().ID)
	d.line("switches_active: %d/%d", active, total)
	d.line("completed: %v", mgr.Completed())
	d.line("")
	d.line("%s", d.style(styleSection, "--- Legend ---"))
	d.line("* = current room  (hidden) = only drawn while inverted  dead = door leads nowhere")
	d.line("")

	for _, r := range mgr.Rooms() {
		d.line("%s", rule)
		title := fmt.Sprintf("room %d", r.ID)
		if r.ID == mgr.Current().ID {
			title = d.style(styleCurrent, "* "+title)
		}
		d.line("%s", title)
		if r.Checkpoint != "" {
			d.line("  checkpoint: %s", r.Checkpoint)
		}
		if r.Decor != nil {
			d.line("  decor: %s", formatRect(*r.Decor))
		}
		for _, side := range world.AllSides() {
			door := r.Door(side)
			target := d.style(styleDead, "dead")
			if door.HasTarget() {
				target = fmt.Sprintf("-> %d", door.Target)
			}
			d.line("  door %s: %s rect: %s", side, target, formatRect(door.Rect))
		}
		for _, it := range r.Items() {
			d.line("  item: %s at %s%s", it.Kind, formatVec(it.Pos), d.hiddenTag(it.Hidden))
		}
		for _, sw := range r.Switches() {
			d.line("  switch: active=%v at %s%s", sw.Active, formatVec(sw.Pos), d.hiddenTag(sw.Hidden))
		}
	}
	d.line("%s", rule)
}

func (d dumper) hiddenTag(hidden bool) string {
	if !hidden {
		return ""
	}
	return " " + d.style(styleHidden, "(hidden)")
}

// DumpRoomsToFile writes an uncolored dump to rooms.txt in the working
// directory and returns its absolute path.
func DumpRoomsToFile(mgr *room.Manager) (string, error) {
	absPath, err := filepath.Abs(roomDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create room dump: %w", err)
	}
	defer f.Close()

	WriteRoomDump(f, mgr, false)
	return absPath, nil
}

func formatVec(v world.Vec) string {
	return fmt.Sprintf("%g,%g", v.X, v.Y)
}

func formatRect(r world.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.W, r.H)
}
