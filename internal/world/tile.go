// Package world provides the tile model, map generation and map management.
package world

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DoorState is the state of a door tile.
type DoorState string

const (
	DoorOpen   DoorState = "open"
	DoorClosed DoorState = "closed"
	DoorLocked DoorState = "locked"
)

// StatusEffect is a condition a tile applies to whoever stands on it.
type StatusEffect string

const (
	StatusBurning   StatusEffect = "burning"
	StatusEntangled StatusEffect = "entangled"
)

// OpenDoorGlyph replaces a closed door's glyph when it is opened.
const OpenDoorGlyph = '/'

// Tile describes one map cell. It is a value type and is copied freely;
// generators stamp archetype tiles from a biome catalog into the map buffer.
type Tile struct {
	// Visuals
	Fg    colorful.Color
	Bg    colorful.Color
	Glyph rune

	// Movement and sight
	Walkable      bool
	Transparent   bool
	ProvidesCover bool

	// Doors, traps and conditions. Nil means "not a door" / "not a trap".
	DoorState    *DoorState
	StatusEffect *StatusEffect
	TrapDC       *int

	// Gameplay magnitudes, opaque to this package.
	DirectDamage int
	Slipperiness int
}

// IsDoor reports whether the tile carries any door state.
func (t Tile) IsDoor() bool {
	return t.DoorState != nil
}

// BlocksAsDoor reports whether the tile is a door that currently bars
// movement, i.e. closed or locked.
func (t Tile) BlocksAsDoor() bool {
	return t.DoorState != nil && (*t.DoorState == DoorClosed || *t.DoorState == DoorLocked)
}

// Open transitions a closed door tile to open, making it walkable and
// transparent. Locked and already-open doors are left untouched.
func (t *Tile) Open() {
	if t.DoorState == nil || *t.DoorState != DoorClosed {
		return
	}
	state := DoorOpen
	t.DoorState = &state
	t.Glyph = OpenDoorGlyph
	t.Walkable = true
	t.Transparent = true
	t.ProvidesCover = false
}
