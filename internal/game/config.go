// Package game provides configuration, player intents and the turn loop.
package game

import (
	"os"
	"strconv"
)

// MapKind selects which generator builds the level.
type MapKind string

const (
	MapDungeon    MapKind = "dungeon"
	MapWilderness MapKind = "wilderness"
)

// Config holds game configuration. Map dimensions are configuration, not
// constants: the core must work at other sizes.
type Config struct {
	// Seed for random number generation. A seed of 0 means a
	// time-derived seed is used.
	Seed int64

	Width  int
	Height int

	// Biome is the id of the biome to theme the level with.
	Biome string

	// Map selects the generator.
	Map MapKind

	// SightRange is the player's field-of-view radius.
	SightRange int
}

// DefaultConfig returns the reference deployment: an 80x50 indoor dungeon
// with a sight radius of 8.
func DefaultConfig() Config {
	return Config{
		Width:      80,
		Height:     50,
		Biome:      "indoor",
		Map:        MapDungeon,
		SightRange: 8,
	}
}

// ConfigFromEnv builds a Config from BIOMECRAWL_* environment variables,
// falling back to the defaults for anything unset or unparsable. main
// loads .env first, so a local .env file can drive all of these.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BIOMECRAWL_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("BIOMECRAWL_WIDTH"); v != "" {
		if width, err := strconv.Atoi(v); err == nil && width > 0 {
			cfg.Width = width
		}
	}
	if v := os.Getenv("BIOMECRAWL_HEIGHT"); v != "" {
		if height, err := strconv.Atoi(v); err == nil && height > 0 {
			cfg.Height = height
		}
	}
	if v := os.Getenv("BIOMECRAWL_BIOME"); v != "" {
		cfg.Biome = v
	}
	if v := os.Getenv("BIOMECRAWL_MAP"); v == string(MapDungeon) || v == string(MapWilderness) {
		cfg.Map = MapKind(v)
	}
	if v := os.Getenv("BIOMECRAWL_SIGHT_RANGE"); v != "" {
		if sight, err := strconv.Atoi(v); err == nil && sight > 0 {
			cfg.SightRange = sight
		}
	}

	return cfg
}
