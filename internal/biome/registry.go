package biome

import (
	"errors"
	"fmt"
)

// Registry holds the loaded biomes and provides lookup by id.
type Registry struct {
	biomes map[string]*Biome
	order  []string
}

// LoadRegistry loads and validates every biome from the embedded
// biomes.json.
func LoadRegistry() (*Registry, error) {
	file, err := load[biomesFile]("biomes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Biomes) == 0 {
		return nil, errors.New("no biomes loaded from biomes.json")
	}

	registry := &Registry{biomes: make(map[string]*Biome)}
	for _, def := range file.Biomes {
		b, err := fromDef(def)
		if err != nil {
			return nil, err
		}
		if _, exists := registry.biomes[b.ID]; exists {
			return nil, fmt.Errorf("duplicate biome id %q", b.ID)
		}
		registry.biomes[b.ID] = b
		registry.order = append(registry.order, b.ID)
	}
	return registry, nil
}

// MustLoadRegistry loads the registry, panicking on error. The embedded
// data must be present and valid for the game to function at all.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the biome with the given id, or nil if not found.
func (r *Registry) GetByID(id string) *Biome {
	return r.biomes[id]
}

// IDs returns the biome ids in file order.
func (r *Registry) IDs() []string {
	return r.order
}

// Count returns the number of loaded biomes.
func (r *Registry) Count() int {
	return len(r.order)
}
