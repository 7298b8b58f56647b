package room

import "loopescape/pkg/engine/world"

// EventKind identifies what happened during a Manager.Update.
type EventKind int

const (
	EventRoomEntered EventKind = iota
	EventItemPicked
	EventSwitchActivated
	EventSwitchNeedsKey
	EventCompleted
)

// String returns the string representation of an event kind
func (k EventKind) String() string {
	switch k {
	case EventRoomEntered:
		return "room_entered"
	case EventItemPicked:
		return "item_picked"
	case EventSwitchActivated:
		return "switch_activated"
	case EventSwitchNeedsKey:
		return "switch_needs_key"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event reports one world change. Fields beyond Kind and Room are set only
// where they apply.
type Event struct {
	Kind EventKind
	Room int

	// RoomEntered
	From int
	Via  world.Side

	// ItemPicked, SwitchActivated, SwitchNeedsKey
	Pos    world.Vec
	Item   world.ItemKind
	Hidden bool
}
