// Package ecs provides the entity/component store the turn systems run
// over: typed component maps keyed by entity id, iterated in spawn order.
package ecs

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/biomecrawl/internal/fov"
)

// Position is an entity's map coordinate.
type Position struct {
	X, Y int
}

// Size is a creature's size class, ordered smallest to largest. Movement
// uses the ordering: Medium and larger creatures cannot cut solid corners.
type Size int

const (
	SizeTiny Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeHuge
)

// String returns the size class name.
func (s Size) String() string {
	switch s {
	case SizeTiny:
		return "tiny"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	default:
		return "unknown"
	}
}

// Renderable is what the renderer draws for an entity.
type Renderable struct {
	Glyph rune
	Fg    colorful.Color
	Bg    colorful.Color
}

// Viewshed is an entity's field-of-view state. It is created dirty so the
// first visibility pass always computes it; movement dirties it again.
type Viewshed struct {
	Visible map[fov.Point]struct{}
	Range   int
	Dirty   bool
}

// NewViewshed creates an empty viewshed with the given sight radius,
// marked dirty.
func NewViewshed(sightRange int) *Viewshed {
	return &Viewshed{
		Visible: make(map[fov.Point]struct{}),
		Range:   sightRange,
		Dirty:   true,
	}
}

// Contains reports whether the point is in the current visible set.
func (v *Viewshed) Contains(p fov.Point) bool {
	_, ok := v.Visible[p]
	return ok
}
