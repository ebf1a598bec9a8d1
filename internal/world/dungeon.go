package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/biomecrawl/internal/telemetry"
)

const (
	// Room sampling parameters.
	maxRoomTrials = 30
	minRoomSize   = 6
	maxRoomSize   = 10
)

type gridPoint struct {
	x, y int
}

// GenerateDungeon builds a room-and-corridor level. Rooms are rejection
// sampled: up to maxRoomTrials candidates are drawn and a candidate is
// accepted only if it overlaps no earlier room, so the result may hold
// fewer rooms than trials, possibly zero. Accepted rooms are carved, then
// each consecutive pair is joined by an L-shaped corridor running between
// the exit points of two heuristically chosen door positions.
//
// Door tiles are stamped only after every corridor is carved so that a
// later carve can never erase a door.
func GenerateDungeon(ctx context.Context, biome Catalog, width, height int, rng *rand.Rand) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height, biome.Wall())
	floor := biome.Floor()

	for i := 0; i < maxRoomTrials; i++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize)
		x := rng.Intn(width-w-2) + 1
		y := rng.Intn(height-h-2) + 1
		room := NewRect(x, y, w, h)

		ok := room.X1 >= 1 && room.X2 <= width-2 && room.Y1 >= 1 && room.Y2 <= height-2
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if ok {
			m.Rooms = append(m.Rooms, room)
		}
	}

	for _, room := range m.Rooms {
		carveRoom(m, room, floor)
	}

	var doors []gridPoint
	for i := 1; i < len(m.Rooms); i++ {
		doors = append(doors, connectRooms(m, m.Rooms[i-1], m.Rooms[i], floor, rng)...)
	}

	if door, ok := biome.Door(); ok {
		for _, p := range doors {
			m.Tiles[m.Index(p.x, p.y)] = door
		}
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.room_count", len(m.Rooms)),
		attribute.Int("map.door_count", len(doors)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// carveRoom floors the room's interior, exclusive of its X1/Y1 wall line.
func carveRoom(m *Map, room Rect, floor Tile) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.Tiles[m.Index(x, y)] = floor
		}
	}
}

// connectRooms joins two rooms with an L-shaped corridor between the exit
// points of their door candidates and returns the two door positions for
// deferred stamping. Leg order is an unweighted coin flip per connection so
// corridors do not all bend the same way.
func connectRooms(m *Map, a, b Rect, floor Tile, rng *rand.Rand) []gridPoint {
	ax, ay := a.Center()
	bx, by := b.Center()

	p1 := doorCandidate(bx, by, a)
	p2 := doorCandidate(ax, ay, b)

	c1 := exitPoint(p1, a)
	c2 := exitPoint(p2, b)

	if rng.Intn(2) == 1 {
		carveHorizontalTunnel(m, c1.x, c2.x, c1.y, floor)
		carveVerticalTunnel(m, c1.y, c2.y, c2.x, floor)
	} else {
		carveVerticalTunnel(m, c1.y, c2.y, c1.x, floor)
		carveHorizontalTunnel(m, c1.x, c2.x, c2.y, floor)
	}

	return []gridPoint{p1, p2}
}

// doorCandidate picks the best perimeter point on room for a door leading
// toward (tx, ty), the connecting room's center. Cardinal wall points are
// considered when the target coordinate falls strictly inside the room's
// span; small or offset rooms fall back to the four corners. Among the
// candidates, the one closest to the room's own center wins.
func doorCandidate(tx, ty int, room Rect) gridPoint {
	var candidates []gridPoint
	if tx > room.X1 && tx < room.X2 {
		candidates = append(candidates,
			gridPoint{tx, room.Y1}, // north
			gridPoint{tx, room.Y2}, // south
		)
	}
	if ty > room.Y1 && ty < room.Y2 {
		candidates = append(candidates,
			gridPoint{room.X1, ty}, // west
			gridPoint{room.X2, ty}, // east
		)
	}
	if len(candidates) == 0 {
		candidates = []gridPoint{
			{room.X1, room.Y1},
			{room.X1, room.Y2},
			{room.X2, room.Y1},
			{room.X2, room.Y2},
		}
	}

	cx, cy := room.Center()
	best := candidates[0]
	bestDist := sqDist(best, cx, cy)
	for _, c := range candidates[1:] {
		if d := sqDist(c, cx, cy); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDist(p gridPoint, x, y int) int {
	dx, dy := p.x-x, p.y-y
	return dx*dx + dy*dy
}

// exitPoint returns the tile one step outward from a door candidate, on the
// side of the room the door sits on. Corridors start and end at exit points
// so they never run over the door tile itself.
func exitPoint(p gridPoint, room Rect) gridPoint {
	switch {
	case p.x == room.X1:
		return gridPoint{p.x - 1, p.y}
	case p.x == room.X2:
		return gridPoint{p.x + 1, p.y}
	case p.y == room.Y1:
		return gridPoint{p.x, p.y - 1}
	default:
		return gridPoint{p.x, p.y + 1}
	}
}

func carveHorizontalTunnel(m *Map, x1, x2, y int, floor Tile) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.Tiles[m.Index(x, y)] = floor
		}
	}
}

func carveVerticalTunnel(m *Map, y1, y2, x int, floor Tile) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.Tiles[m.Index(x, y)] = floor
		}
	}
}
