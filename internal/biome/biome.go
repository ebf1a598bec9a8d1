package biome

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/biomecrawl/internal/world"
)

// tileDef is the JSON shape of one tile archetype.
type tileDef struct {
	Glyph         string `json:"glyph"`
	Fg            string `json:"fg"`
	Bg            string `json:"bg"`
	Walkable      bool   `json:"walkable"`
	Transparent   bool   `json:"transparent"`
	ProvidesCover bool   `json:"providesCover"`
	DoorState     string `json:"doorState,omitempty"`
	StatusEffect  string `json:"statusEffect,omitempty"`
	TrapDC        *int   `json:"trapDC,omitempty"`
	DirectDamage  int    `json:"directDamage,omitempty"`
	Slipperiness  int    `json:"slipperiness,omitempty"`
}

// biomeDef is the JSON shape of one biome. Floor and wall are mandatory;
// the rest are optional capabilities.
type biomeDef struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Floor      *tileDef `json:"floor"`
	Wall       *tileDef `json:"wall"`
	Water      *tileDef `json:"water,omitempty"`
	Trap       *tileDef `json:"trap,omitempty"`
	Door       *tileDef `json:"door,omitempty"`
	LockedDoor *tileDef `json:"lockedDoor,omitempty"`
}

// biomesFile is the structure of biomes.json.
type biomesFile struct {
	Biomes []biomeDef `json:"biomes"`
}

// Biome is a fixed table of tile archetypes used to theme a generated
// level. It implements world.Catalog; generators only ever see that
// capability set.
type Biome struct {
	ID   string
	Name string

	floor      world.Tile
	wall       world.Tile
	water      *world.Tile
	trap       *world.Tile
	door       *world.Tile
	lockedDoor *world.Tile
}

// Floor returns the biome's walkable ground archetype.
func (b *Biome) Floor() world.Tile { return b.floor }

// Wall returns the biome's blocking archetype. It doubles as the fallback
// for every absent optional archetype.
func (b *Biome) Wall() world.Tile { return b.wall }

// Water returns the water archetype, if the biome has one.
func (b *Biome) Water() (world.Tile, bool) { return optional(b.water) }

// Trap returns the trap archetype, if the biome has one.
func (b *Biome) Trap() (world.Tile, bool) { return optional(b.trap) }

// Door returns the closed door archetype, if the biome has one.
func (b *Biome) Door() (world.Tile, bool) { return optional(b.door) }

// LockedDoor returns the locked door archetype, if the biome has one.
func (b *Biome) LockedDoor() (world.Tile, bool) { return optional(b.lockedDoor) }

func optional(t *world.Tile) (world.Tile, bool) {
	if t == nil {
		return world.Tile{}, false
	}
	return *t, true
}

// fromDef converts a parsed biome definition into a Biome, validating the
// door invariants: a closed or locked door archetype must not be walkable,
// and an archetype declared as a door must carry a door state.
func fromDef(def biomeDef) (*Biome, error) {
	if def.ID == "" {
		return nil, fmt.Errorf("biome with empty id")
	}
	if def.Floor == nil || def.Wall == nil {
		return nil, fmt.Errorf("biome %q: floor and wall archetypes are mandatory", def.ID)
	}

	b := &Biome{ID: def.ID, Name: def.Name}

	var err error
	if b.floor, err = tileFromDef(*def.Floor); err != nil {
		return nil, fmt.Errorf("biome %q floor: %w", def.ID, err)
	}
	if b.wall, err = tileFromDef(*def.Wall); err != nil {
		return nil, fmt.Errorf("biome %q wall: %w", def.ID, err)
	}

	for _, opt := range []struct {
		name string
		def  *tileDef
		dst  **world.Tile
		door bool
	}{
		{"water", def.Water, &b.water, false},
		{"trap", def.Trap, &b.trap, false},
		{"door", def.Door, &b.door, true},
		{"lockedDoor", def.LockedDoor, &b.lockedDoor, true},
	} {
		if opt.def == nil {
			continue
		}
		tile, err := tileFromDef(*opt.def)
		if err != nil {
			return nil, fmt.Errorf("biome %q %s: %w", def.ID, opt.name, err)
		}
		if opt.door {
			if tile.DoorState == nil {
				return nil, fmt.Errorf("biome %q %s: door archetype without doorState", def.ID, opt.name)
			}
			if tile.BlocksAsDoor() && tile.Walkable {
				return nil, fmt.Errorf("biome %q %s: closed or locked door must not be walkable", def.ID, opt.name)
			}
		}
		*opt.dst = &tile
	}

	return b, nil
}

// tileFromDef converts a tile archetype definition into a world.Tile.
func tileFromDef(def tileDef) (world.Tile, error) {
	if def.Glyph == "" {
		return world.Tile{}, fmt.Errorf("archetype without glyph")
	}
	fg, err := colorful.Hex(def.Fg)
	if err != nil {
		return world.Tile{}, fmt.Errorf("invalid fg color %q: %w", def.Fg, err)
	}
	bg, err := colorful.Hex(def.Bg)
	if err != nil {
		return world.Tile{}, fmt.Errorf("invalid bg color %q: %w", def.Bg, err)
	}

	tile := world.Tile{
		Fg:            fg,
		Bg:            bg,
		Glyph:         []rune(def.Glyph)[0],
		Walkable:      def.Walkable,
		Transparent:   def.Transparent,
		ProvidesCover: def.ProvidesCover,
		DirectDamage:  def.DirectDamage,
		Slipperiness:  def.Slipperiness,
		TrapDC:        def.TrapDC,
	}

	if def.DoorState != "" {
		state := world.DoorState(def.DoorState)
		switch state {
		case world.DoorOpen, world.DoorClosed, world.DoorLocked:
			tile.DoorState = &state
		default:
			return world.Tile{}, fmt.Errorf("unknown doorState %q", def.DoorState)
		}
	}
	if def.StatusEffect != "" {
		effect := world.StatusEffect(def.StatusEffect)
		switch effect {
		case world.StatusBurning, world.StatusEntangled:
			tile.StatusEffect = &effect
		default:
			return world.Tile{}, fmt.Errorf("unknown statusEffect %q", def.StatusEffect)
		}
	}

	return tile, nil
}
