package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/biomecrawl/internal/biome"
	"github.com/samdwyer/biomecrawl/internal/ecs"
	"github.com/samdwyer/biomecrawl/internal/telemetry"
	"github.com/samdwyer/biomecrawl/internal/ui"
	"github.com/samdwyer/biomecrawl/internal/vision"
	"github.com/samdwyer/biomecrawl/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	entities *ecs.World
	level    *world.Map
	running  bool
}

// New creates a new game instance with an initialized terminal screen.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run generates the level, spawns the player and executes the turn loop:
// visibility pass, render, then one blocking input. Each turn runs to
// completion before the next is considered.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	registry, err := biome.LoadRegistry()
	if err != nil {
		initSpan.End()
		return err
	}
	b := registry.GetByID(g.cfg.Biome)
	if b == nil {
		initSpan.End()
		return fmt.Errorf("unknown biome %q", g.cfg.Biome)
	}

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	switch g.cfg.Map {
	case MapWilderness:
		g.level = world.GenerateWilderness(ctx, b, g.cfg.Width, g.cfg.Height, rng)
	default:
		g.level = world.GenerateDungeon(ctx, b, g.cfg.Width, g.cfg.Height, rng)
	}

	// First room's center for dungeons; map center for wilderness maps
	// and for the unlucky dungeon with zero accepted rooms.
	startX, startY := g.level.Width/2, g.level.Height/2
	if len(g.level.Rooms) > 0 {
		startX, startY = g.level.Rooms[0].Center()
	}

	g.entities = ecs.NewWorld()
	player := g.entities.Spawn()
	g.entities.SetPosition(player, startX, startY)
	g.entities.SetRenderable(player, ecs.Renderable{
		Glyph: '@',
		Fg:    colorful.Color{R: 1, G: 1, B: 0},
		Bg:    colorful.Color{},
	})
	g.entities.SetSize(player, ecs.SizeMedium)
	g.entities.SetViewshed(player, ecs.NewViewshed(g.cfg.SightRange))
	g.entities.TagPlayer(player)

	initSpan.SetAttributes(
		attribute.String("map.kind", string(g.cfg.Map)),
		attribute.String("map.biome", b.ID),
		attribute.Int64("map.seed", seed),
		attribute.Int("map.rooms", len(g.level.Rooms)),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)
	initSpan.End()

	for g.running {
		vision.Pass(ctx, g.entities, g.level)
		g.renderer.Render(g.level, g.entities)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent maps keyboard input to movement deltas. Diagonals sit on
// Q/E/Z/C around the WASD-style cardinal keys.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		TryMovePlayer(g.entities, g.level, 0, -1)
	case tcell.KeyDown:
		TryMovePlayer(g.entities, g.level, 0, 1)
	case tcell.KeyLeft:
		TryMovePlayer(g.entities, g.level, -1, 0)
	case tcell.KeyRight:
		TryMovePlayer(g.entities, g.level, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			TryMovePlayer(g.entities, g.level, -1, 0)
		case 'd', 'D':
			TryMovePlayer(g.entities, g.level, 1, 0)
		case 'w', 'W':
			TryMovePlayer(g.entities, g.level, 0, -1)
		case 'x', 'X':
			TryMovePlayer(g.entities, g.level, 0, 1)
		case 'q', 'Q':
			TryMovePlayer(g.entities, g.level, -1, -1)
		case 'e', 'E':
			TryMovePlayer(g.entities, g.level, 1, -1)
		case 'z', 'Z':
			TryMovePlayer(g.entities, g.level, -1, 1)
		case 'c', 'C':
			TryMovePlayer(g.entities, g.level, 1, 1)
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
