package biome

import (
	"testing"

	"github.com/samdwyer/biomecrawl/internal/world"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("failed to load biomes: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("expected 4 biomes, got %d", registry.Count())
	}
	for _, id := range []string{"indoor", "forest", "volcanic", "alpine"} {
		if registry.GetByID(id) == nil {
			t.Errorf("biome %q not found", id)
		}
	}
	if registry.GetByID("swamp") != nil {
		t.Error("lookup of unknown biome should return nil")
	}
}

func TestMandatoryArchetypes(t *testing.T) {
	registry := MustLoadRegistry()

	for _, id := range registry.IDs() {
		b := registry.GetByID(id)
		floor := b.Floor()
		if !floor.Walkable || !floor.Transparent {
			t.Errorf("biome %q: floor must be walkable and transparent", id)
		}
		wall := b.Wall()
		if wall.Walkable || wall.Transparent {
			t.Errorf("biome %q: wall must be neither walkable nor transparent", id)
		}
	}
}

func TestDoorArchetypeInvariants(t *testing.T) {
	registry := MustLoadRegistry()

	for _, id := range registry.IDs() {
		b := registry.GetByID(id)
		if door, ok := b.Door(); ok {
			if door.DoorState == nil || *door.DoorState != world.DoorClosed {
				t.Errorf("biome %q: generated doors must start closed", id)
			}
			if door.Walkable {
				t.Errorf("biome %q: closed door must not be walkable", id)
			}
		}
		if locked, ok := b.LockedDoor(); ok {
			if locked.DoorState == nil || *locked.DoorState != world.DoorLocked {
				t.Errorf("biome %q: locked door archetype must be locked", id)
			}
			if locked.Walkable {
				t.Errorf("biome %q: locked door must not be walkable", id)
			}
		}
	}
}

func TestOptionalCapabilitiesPerBiome(t *testing.T) {
	registry := MustLoadRegistry()

	tests := []struct {
		id                             string
		water, trap, door, lockedDoor bool
	}{
		{"indoor", false, false, true, true},
		{"forest", true, true, false, false},
		{"volcanic", true, false, false, false},
		{"alpine", false, false, false, false},
	}

	for _, tt := range tests {
		b := registry.GetByID(tt.id)
		if b == nil {
			t.Fatalf("biome %q missing", tt.id)
		}
		if _, ok := b.Water(); ok != tt.water {
			t.Errorf("biome %q: water support = %v, want %v", tt.id, ok, tt.water)
		}
		if _, ok := b.Trap(); ok != tt.trap {
			t.Errorf("biome %q: trap support = %v, want %v", tt.id, ok, tt.trap)
		}
		if _, ok := b.Door(); ok != tt.door {
			t.Errorf("biome %q: door support = %v, want %v", tt.id, ok, tt.door)
		}
		if _, ok := b.LockedDoor(); ok != tt.lockedDoor {
			t.Errorf("biome %q: locked door support = %v, want %v", tt.id, ok, tt.lockedDoor)
		}
	}
}

func TestForestTrapValues(t *testing.T) {
	registry := MustLoadRegistry()
	forest := registry.GetByID("forest")

	trap, ok := forest.Trap()
	if !ok {
		t.Fatal("forest must have a trap archetype")
	}
	if trap.TrapDC == nil || *trap.TrapDC != 15 {
		t.Errorf("forest trap DC = %v, want 15", trap.TrapDC)
	}
	if trap.StatusEffect == nil || *trap.StatusEffect != world.StatusEntangled {
		t.Errorf("forest trap effect = %v, want entangled", trap.StatusEffect)
	}
	if !trap.Walkable {
		t.Error("a trap has to be walkable to be stepped on")
	}
}

func TestVolcanicLavaValues(t *testing.T) {
	registry := MustLoadRegistry()
	volcanic := registry.GetByID("volcanic")

	lava, ok := volcanic.Water()
	if !ok {
		t.Fatal("volcanic must have a lava archetype")
	}
	if lava.DirectDamage != 10 {
		t.Errorf("lava direct damage = %d, want 10", lava.DirectDamage)
	}
	if lava.StatusEffect == nil || *lava.StatusEffect != world.StatusBurning {
		t.Errorf("lava effect = %v, want burning", lava.StatusEffect)
	}
	if lava.Walkable {
		t.Error("lava must not be walkable")
	}
	if !lava.Transparent {
		t.Error("lava should not block line of sight")
	}
}

func TestTileFromDefRejectsBadData(t *testing.T) {
	if _, err := tileFromDef(tileDef{Glyph: "", Fg: "#ffffff", Bg: "#000000"}); err == nil {
		t.Error("empty glyph should be rejected")
	}
	if _, err := tileFromDef(tileDef{Glyph: ".", Fg: "red", Bg: "#000000"}); err == nil {
		t.Error("non-hex color should be rejected")
	}
	if _, err := tileFromDef(tileDef{Glyph: "+", Fg: "#ffffff", Bg: "#000000", DoorState: "ajar"}); err == nil {
		t.Error("unknown door state should be rejected")
	}
	if _, err := tileFromDef(tileDef{Glyph: ".", Fg: "#ffffff", Bg: "#000000", StatusEffect: "frozen"}); err == nil {
		t.Error("unknown status effect should be rejected")
	}
}
