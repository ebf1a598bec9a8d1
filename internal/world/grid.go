package world

import "fmt"

// Map is the authoritative tile buffer for one level. Tiles are stored
// row-major, index = y*Width + x. The explored bitset runs parallel to the
// tile buffer and only ever flips false to true.
//
// A Map is the single shared mutable resource of a level: the movement
// resolver and the visibility pass each take it by pointer for the duration
// of one call, and the caller sequences those calls.
type Map struct {
	Tiles    []Tile
	Explored []bool
	Width    int
	Height   int

	// Rooms holds accepted rooms in acceptance order; empty for
	// wilderness maps. Acceptance order is also corridor connection order.
	Rooms []Rect
}

// NewMap allocates a map of the given dimensions with every cell set to
// fill. It panics if the dimensions are not positive: a map with a tile
// buffer that disagrees with width*height must never be constructed.
func NewMap(width, height int, fill Tile) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid map dimensions %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = fill
	}
	return &Map{
		Tiles:    tiles,
		Explored: make([]bool, width*height),
		Width:    width,
		Height:   height,
	}
}

// InBounds reports whether the coordinate lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index converts a coordinate to a tile buffer index. Callers must bounds
// check first; an out-of-range coordinate is a contract violation, not a
// wrap-around.
func (m *Map) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("world: coordinate (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// TileAt returns the tile at the given coordinate.
func (m *Map) TileAt(x, y int) Tile {
	return m.Tiles[m.Index(x, y)]
}

// Opaque reports whether the tile at idx blocks line of sight. A tile's
// transparency flag is the sole input to this query.
func (m *Map) Opaque(idx int) bool {
	return !m.Tiles[idx].Transparent
}

// OpaqueAt is the coordinate form of Opaque, used by the field-of-view
// ray caster.
func (m *Map) OpaqueAt(x, y int) bool {
	return m.Opaque(m.Index(x, y))
}

// OpenDoorAt opens a closed door at idx in place. Locked doors and
// non-doors are untouched; opening an already open door is a no-op.
func (m *Map) OpenDoorAt(idx int) {
	m.Tiles[idx].Open()
}

// MarkExplored flags the tile at idx as having been seen by the player.
// The flag is monotonic and is never cleared.
func (m *Map) MarkExplored(idx int) {
	m.Explored[idx] = true
}
