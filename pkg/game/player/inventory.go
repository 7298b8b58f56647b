package player

import "loopescape/pkg/engine/world"

// Inventory is an ordered multiset of item kinds in acquisition order.
type Inventory struct {
	items []world.ItemKind
}

// Add appends an item.
func (inv *Inventory) Add(kind world.ItemKind) {
	inv.items = append(inv.items, kind)
}

// Remove drops the first occurrence of kind and reports whether there was one.
func (inv *Inventory) Remove(kind world.ItemKind) bool {
	for i, k := range inv.items {
		if k == kind {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether at least one kind is held.
func (inv *Inventory) Has(kind world.ItemKind) bool {
	return inv.Count(kind) > 0
}

// Count returns how many of kind are held.
func (inv *Inventory) Count(kind world.ItemKind) int {
	n := 0
	for _, k := range inv.items {
		if k == kind {
			n++
		}
	}
	return n
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns a copy of the held items in acquisition order.
func (inv *Inventory) Items() []world.ItemKind {
	out := make([]world.ItemKind, len(inv.items))
	copy(out, inv.items)
	return out
}
