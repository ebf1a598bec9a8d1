package ecs

import (
	"testing"

	"github.com/samdwyer/biomecrawl/internal/fov"
)

func TestComponentAttachment(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	if _, ok := w.Position(e); ok {
		t.Error("fresh entity should have no position")
	}

	w.SetPosition(e, 3, 4)
	pos, ok := w.Position(e)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Errorf("position = %+v (ok=%v), want (3,4)", pos, ok)
	}

	if w.IsPlayer(e) {
		t.Error("entity should not be the player until tagged")
	}
	w.TagPlayer(e)
	if !w.IsPlayer(e) {
		t.Error("tagged entity should be the player")
	}

	w.SetSize(e, SizeLarge)
	if size, ok := w.Size(e); !ok || size != SizeLarge {
		t.Errorf("size = %v (ok=%v), want large", size, ok)
	}
}

func TestNewViewshedStartsDirty(t *testing.T) {
	v := NewViewshed(8)

	if !v.Dirty {
		t.Error("a fresh viewshed must be dirty so the first pass computes it")
	}
	if v.Range != 8 {
		t.Errorf("range = %d, want 8", v.Range)
	}
	if len(v.Visible) != 0 {
		t.Errorf("fresh viewshed has %d visible tiles, want 0", len(v.Visible))
	}
	if v.Contains(fov.Point{X: 1, Y: 1}) {
		t.Error("empty viewshed should contain nothing")
	}
}

func TestEachViewshedRequiresBothComponents(t *testing.T) {
	w := NewWorld()

	full := w.Spawn()
	w.SetPosition(full, 1, 1)
	w.SetViewshed(full, NewViewshed(4))

	positionOnly := w.Spawn()
	w.SetPosition(positionOnly, 2, 2)

	viewshedOnly := w.Spawn()
	w.SetViewshed(viewshedOnly, NewViewshed(4))

	var visited []Entity
	w.EachViewshed(func(e Entity, _ *Position, _ *Viewshed) {
		visited = append(visited, e)
	})

	if len(visited) != 1 || visited[0] != full {
		t.Errorf("EachViewshed visited %v, want only the fully equipped entity", visited)
	}
}

func TestSizeOrdering(t *testing.T) {
	if !(SizeTiny < SizeSmall && SizeSmall < SizeMedium && SizeMedium < SizeLarge && SizeLarge < SizeHuge) {
		t.Error("size classes must order smallest to largest")
	}
}
