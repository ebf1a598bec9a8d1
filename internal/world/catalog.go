package world

// Catalog is the capability set a generator needs from a biome: two
// mandatory archetypes and four optional ones. Generators ask for
// capabilities and never learn biome identity. When an optional archetype
// is absent the generator falls back to the wall archetype; absence is a
// documented policy, never an error.
type Catalog interface {
	Floor() Tile
	Wall() Tile
	Water() (Tile, bool)
	Trap() (Tile, bool)
	Door() (Tile, bool)
	LockedDoor() (Tile, bool)
}
