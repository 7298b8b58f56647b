package room

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"loopescape/pkg/engine/world"
)

// reachableRooms returns the ids of every room reachable from start by
// walking through doors, in breadth-first order. Dead doors and targets
// outside rooms are skipped.
func reachableRooms(rooms []*Room, start int) []int {
	seen := mapset.New[int]()
	var order []int
	queue := []int{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id < 0 || id >= len(rooms) || seen.Has(id) {
			continue
		}
		seen.Put(id)
		order = append(order, id)

		for _, side := range world.AllSides() {
			d := rooms[id].Door(side)
			if d.HasTarget() && !seen.Has(d.Target) {
				queue = append(queue, d.Target)
			}
		}
	}
	return order
}

// CheckSolvable reports why the rooms cannot be completed from start, or
// nil. Every switch must sit in a reachable room and the reachable rooms
// must hold at least one key per switch. Hidden items count: they can be
// collected without the inversion power.
func CheckSolvable(rooms []*Room, start int) error {
	reachable := reachableRooms(rooms, start)
	inReach := mapset.New[int]()
	keys, switches := 0, 0
	for _, id := range reachable {
		inReach.Put(id)
		for _, it := range rooms[id].Items() {
			if it.Kind == world.ItemKey {
				keys++
			}
		}
		switches += len(rooms[id].Switches())
	}

	for _, r := range rooms {
		if !inReach.Has(r.ID) && len(r.Switches()) > 0 {
			return fmt.Errorf("room %d has switches but cannot be reached from room %d", r.ID, start)
		}
	}
	if keys < switches {
		return fmt.Errorf("%d switches but only %d reachable keys", switches, keys)
	}
	return nil
}
