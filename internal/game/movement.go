package game

import (
	"github.com/samdwyer/biomecrawl/internal/ecs"
	"github.com/samdwyer/biomecrawl/internal/world"
)

// TryMovePlayer resolves a requested delta for the player and applies the
// outcome. Resolution runs in two phases: all legality checks happen
// against an unmodified map and entity state first, then the single
// resulting mutation is applied. Invalid requests are no-ops.
func TryMovePlayer(w *ecs.World, m *world.Map, dx, dy int) {
	applyIntent(w, m, resolveMove(w, m, dx, dy))
}

// resolveMove inspects the destination and classifies the request. It
// mutates nothing.
func resolveMove(w *ecs.World, m *world.Map, dx, dy int) Intent {
	intent := Intent{Kind: DoNothing}

	w.EachPlayer(func(e ecs.Entity, pos *ecs.Position) {
		destX, destY := pos.X+dx, pos.Y+dy
		if !m.InBounds(destX, destY) {
			intent = Intent{Kind: DoNothing}
			return
		}

		destIdx := m.Index(destX, destY)
		dest := m.Tiles[destIdx]

		// Walking into a shut door means opening it, not stepping on it.
		if dest.BlocksAsDoor() {
			intent = Intent{Kind: OpenDoor, Door: destIdx}
			return
		}

		canMove := true
		if dx != 0 && dy != 0 {
			if size, ok := w.Size(e); ok && size >= ecs.SizeMedium {
				// Medium and larger creatures cannot squeeze through a
				// solid corner: the diagonal is blocked when both
				// orthogonal neighbors are.
				sideX := m.TileAt(pos.X+dx, pos.Y)
				sideY := m.TileAt(pos.X, pos.Y+dy)
				if !sideX.Walkable && !sideY.Walkable {
					canMove = false
				}
			}
		}

		if dest.Walkable && canMove {
			intent = Intent{Kind: MoveTo, DX: dx, DY: dy}
		}
	})

	return intent
}

// applyIntent performs the single mutation a resolved intent calls for.
func applyIntent(w *ecs.World, m *world.Map, intent Intent) {
	switch intent.Kind {
	case OpenDoor:
		m.OpenDoorAt(intent.Door)
	case MoveTo:
		w.EachPlayer(func(e ecs.Entity, pos *ecs.Position) {
			pos.X = min(m.Width-1, max(0, pos.X+intent.DX))
			pos.Y = min(m.Height-1, max(0, pos.Y+intent.DY))
			if v, ok := w.Viewshed(e); ok {
				v.Dirty = true
			}
		})
	}
}
