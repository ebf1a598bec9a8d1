package ecs

import "github.com/google/uuid"

// Entity identifies one entity across all component stores.
type Entity = uuid.UUID

// World holds the component stores. It is not safe for concurrent use;
// the game loop owns it and runs systems to completion one at a time.
type World struct {
	entities    []Entity
	positions   map[Entity]*Position
	viewsheds   map[Entity]*Viewshed
	sizes       map[Entity]Size
	renderables map[Entity]Renderable
	players     map[Entity]struct{}
}

// NewWorld creates an empty component store.
func NewWorld() *World {
	return &World{
		positions:   make(map[Entity]*Position),
		viewsheds:   make(map[Entity]*Viewshed),
		sizes:       make(map[Entity]Size),
		renderables: make(map[Entity]Renderable),
		players:     make(map[Entity]struct{}),
	}
}

// Spawn registers a new entity and returns its id.
func (w *World) Spawn() Entity {
	e := uuid.New()
	w.entities = append(w.entities, e)
	return e
}

// SetPosition attaches or replaces an entity's position.
func (w *World) SetPosition(e Entity, x, y int) {
	w.positions[e] = &Position{X: x, Y: y}
}

// Position returns the entity's position component, if any.
func (w *World) Position(e Entity) (*Position, bool) {
	p, ok := w.positions[e]
	return p, ok
}

// SetViewshed attaches a viewshed to an entity.
func (w *World) SetViewshed(e Entity, v *Viewshed) {
	w.viewsheds[e] = v
}

// Viewshed returns the entity's viewshed component, if any.
func (w *World) Viewshed(e Entity) (*Viewshed, bool) {
	v, ok := w.viewsheds[e]
	return v, ok
}

// SetSize attaches a size class to an entity.
func (w *World) SetSize(e Entity, s Size) {
	w.sizes[e] = s
}

// Size returns the entity's size class, if any.
func (w *World) Size(e Entity) (Size, bool) {
	s, ok := w.sizes[e]
	return s, ok
}

// SetRenderable attaches display properties to an entity.
func (w *World) SetRenderable(e Entity, r Renderable) {
	w.renderables[e] = r
}

// TagPlayer marks an entity as the player.
func (w *World) TagPlayer(e Entity) {
	w.players[e] = struct{}{}
}

// IsPlayer reports whether the entity carries the player tag.
func (w *World) IsPlayer(e Entity) bool {
	_, ok := w.players[e]
	return ok
}

// EachViewshed calls fn for every entity that has both a position and a
// viewshed, in spawn order.
func (w *World) EachViewshed(fn func(e Entity, pos *Position, v *Viewshed)) {
	for _, e := range w.entities {
		pos, ok := w.positions[e]
		if !ok {
			continue
		}
		v, ok := w.viewsheds[e]
		if !ok {
			continue
		}
		fn(e, pos, v)
	}
}

// EachPlayer calls fn for every player-tagged entity with a position,
// in spawn order.
func (w *World) EachPlayer(fn func(e Entity, pos *Position)) {
	for _, e := range w.entities {
		if !w.IsPlayer(e) {
			continue
		}
		pos, ok := w.positions[e]
		if !ok {
			continue
		}
		fn(e, pos)
	}
}

// EachRenderable calls fn for every entity that has both a position and
// display properties, in spawn order.
func (w *World) EachRenderable(fn func(pos *Position, r Renderable)) {
	for _, e := range w.entities {
		pos, ok := w.positions[e]
		if !ok {
			continue
		}
		r, ok := w.renderables[e]
		if !ok {
			continue
		}
		fn(pos, r)
	}
}
