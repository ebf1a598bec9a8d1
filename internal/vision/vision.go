// Package vision recomputes stale viewsheds against the map's opacity and
// promotes the player's visible tiles into the map's explored memory.
package vision

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/biomecrawl/internal/ecs"
	"github.com/samdwyer/biomecrawl/internal/fov"
	"github.com/samdwyer/biomecrawl/internal/telemetry"
	"github.com/samdwyer/biomecrawl/internal/world"
)

// Pass runs one visibility pass over every entity with a position and a
// viewshed. Entities whose viewshed is not dirty are skipped entirely:
// recomputation cost is paid only on the turn something actually moved.
//
// A viewshed becomes dirty on its owner's own movement. A door opened by
// another actor does not dirty an already settled viewshed; callers that
// want line of sight to react to such changes must dirty the viewshed
// themselves.
func Pass(ctx context.Context, w *ecs.World, m *world.Map) {
	tracer := telemetry.Tracer("vision")
	_, span := tracer.Start(ctx, "vision.pass")
	defer span.End()

	recomputed := 0
	w.EachViewshed(func(e ecs.Entity, pos *ecs.Position, v *ecs.Viewshed) {
		if !v.Dirty {
			return
		}
		recomputed++

		clear(v.Visible)
		for _, p := range fov.Compute(m, pos.X, pos.Y, v.Range) {
			// Coordinates outside the map never enter the visible set.
			if !m.InBounds(p.X, p.Y) {
				continue
			}
			v.Visible[p] = struct{}{}
		}
		v.Dirty = false

		// Only the player's sight leaves permanent explored marks.
		if w.IsPlayer(e) {
			for p := range v.Visible {
				m.MarkExplored(m.Index(p.X, p.Y))
			}
		}
	})

	span.SetAttributes(attribute.Int("vision.recomputed", recomputed))
}
