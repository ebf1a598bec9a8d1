package game

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 80 || cfg.Height != 50 {
		t.Errorf("default dimensions = %dx%d, want 80x50", cfg.Width, cfg.Height)
	}
	if cfg.Biome != "indoor" || cfg.Map != MapDungeon {
		t.Errorf("default level = %s %s, want indoor dungeon", cfg.Biome, cfg.Map)
	}
	if cfg.SightRange != 8 {
		t.Errorf("default sight range = %d, want 8", cfg.SightRange)
	}
	if cfg.Seed != 0 {
		t.Errorf("default seed = %d, want 0 (time-derived)", cfg.Seed)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BIOMECRAWL_SEED", "12345")
	t.Setenv("BIOMECRAWL_WIDTH", "120")
	t.Setenv("BIOMECRAWL_HEIGHT", "60")
	t.Setenv("BIOMECRAWL_BIOME", "forest")
	t.Setenv("BIOMECRAWL_MAP", "wilderness")
	t.Setenv("BIOMECRAWL_SIGHT_RANGE", "12")

	cfg := ConfigFromEnv()

	if cfg.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", cfg.Seed)
	}
	if cfg.Width != 120 || cfg.Height != 60 {
		t.Errorf("dimensions = %dx%d, want 120x60", cfg.Width, cfg.Height)
	}
	if cfg.Biome != "forest" {
		t.Errorf("biome = %s, want forest", cfg.Biome)
	}
	if cfg.Map != MapWilderness {
		t.Errorf("map = %s, want wilderness", cfg.Map)
	}
	if cfg.SightRange != 12 {
		t.Errorf("sight range = %d, want 12", cfg.SightRange)
	}
}

func TestConfigFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("BIOMECRAWL_WIDTH", "not-a-number")
	t.Setenv("BIOMECRAWL_HEIGHT", "-5")
	t.Setenv("BIOMECRAWL_MAP", "labyrinth")

	cfg := ConfigFromEnv()
	def := DefaultConfig()

	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Errorf("dimensions = %dx%d, want defaults %dx%d", cfg.Width, cfg.Height, def.Width, def.Height)
	}
	if cfg.Map != def.Map {
		t.Errorf("map = %s, want default %s", cfg.Map, def.Map)
	}
}
