package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/biomecrawl/internal/telemetry"
)

const (
	// Scatter trial counts for wilderness generation.
	wildernessTrials = 400
	waterFeatures    = 20
	trapFeatures     = 10
)

// GenerateWilderness builds an open field bounded by a solid wall perimeter,
// scattered with walls, doors and biome features. The room list stays empty;
// callers spawn the player at the reserved center cell.
//
// Placement runs in phases and later phases always win: walls and doors
// first, then water, then traps, each free to overwrite earlier placements.
// The only excluded cells are the border and the reserved start cell.
func GenerateWilderness(ctx context.Context, biome Catalog, width, height int, rng *rand.Rand) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "wilderness.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height, biome.Floor())
	wall := biome.Wall()

	// Hard boundary.
	for x := 0; x < width; x++ {
		m.Tiles[m.Index(x, 0)] = wall
		m.Tiles[m.Index(x, height-1)] = wall
	}
	for y := 0; y < height; y++ {
		m.Tiles[m.Index(0, y)] = wall
		m.Tiles[m.Index(width-1, y)] = wall
	}

	startIdx := m.Index(width/2, height/2)

	for i := 0; i < wildernessTrials; i++ {
		idx := m.Index(randInterior(rng, width, height))
		if idx == startIdx {
			continue
		}
		// Top 10% of rolls place a locked door, the next 10% a plain
		// door; a biome without the archetype falls back to a wall.
		roll := rng.Intn(100) + 1
		switch {
		case roll > 90:
			if locked, ok := biome.LockedDoor(); ok {
				m.Tiles[idx] = locked
			} else {
				m.Tiles[idx] = wall
			}
		case roll > 80:
			if door, ok := biome.Door(); ok {
				m.Tiles[idx] = door
			} else {
				m.Tiles[idx] = wall
			}
		default:
			m.Tiles[idx] = wall
		}
	}

	if water, ok := biome.Water(); ok {
		for i := 0; i < waterFeatures; i++ {
			m.Tiles[m.Index(randInterior(rng, width, height))] = water
		}
	}
	if trap, ok := biome.Trap(); ok {
		for i := 0; i < trapFeatures; i++ {
			m.Tiles[m.Index(randInterior(rng, width, height))] = trap
		}
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// randInterior picks a uniformly random cell strictly inside the border.
func randInterior(rng *rand.Rand, width, height int) (int, int) {
	return rng.Intn(width-2) + 1, rng.Intn(height-2) + 1
}
