package world

// stubCatalog is a fixed-archetype biome for generator tests. Optional
// archetypes are toggled per test to exercise the wall fallback policy.
type stubCatalog struct {
	hasWater  bool
	hasTrap   bool
	hasDoor   bool
	hasLocked bool
}

func (c stubCatalog) Floor() Tile {
	return Tile{Glyph: '.', Walkable: true, Transparent: true}
}

func (c stubCatalog) Wall() Tile {
	return Tile{Glyph: '#', ProvidesCover: true}
}

func (c stubCatalog) Water() (Tile, bool) {
	if !c.hasWater {
		return Tile{}, false
	}
	return Tile{Glyph: '~', Transparent: true, DirectDamage: 5}, true
}

func (c stubCatalog) Trap() (Tile, bool) {
	if !c.hasTrap {
		return Tile{}, false
	}
	dc := 15
	return Tile{Glyph: ';', Walkable: true, Transparent: true, TrapDC: &dc}, true
}

func (c stubCatalog) Door() (Tile, bool) {
	if !c.hasDoor {
		return Tile{}, false
	}
	state := DoorClosed
	return Tile{Glyph: '+', ProvidesCover: true, DoorState: &state}, true
}

func (c stubCatalog) LockedDoor() (Tile, bool) {
	if !c.hasLocked {
		return Tile{}, false
	}
	state := DoorLocked
	return Tile{Glyph: '+', ProvidesCover: true, DoorState: &state}, true
}
