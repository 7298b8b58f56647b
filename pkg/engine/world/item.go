package world

// ItemKind identifies a collectible. Inventories hold kinds, not instances.
type ItemKind string

const (
	ItemKey            ItemKind = "key"
	ItemInversionPower ItemKind = "inversion_power"
)

// String returns the item kind token
func (k ItemKind) String() string {
	return string(k)
}

// GrantsInversion reports whether picking up this kind unlocks inverted mode.
func (k ItemKind) GrantsInversion() bool {
	return k == ItemInversionPower
}
