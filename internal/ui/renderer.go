package ui

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/biomecrawl/internal/ecs"
	"github.com/samdwyer/biomecrawl/internal/fov"
	"github.com/samdwyer/biomecrawl/internal/world"
)

// Renderer draws the level and entities to the screen. Only explored tiles
// are drawn at all; tiles the player remembers but cannot currently see are
// drawn in greyscale.
type Renderer struct {
	screen *Screen
	rng    *rand.Rand
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Render draws the map's explored tiles and every positioned entity.
func (r *Renderer) Render(m *world.Map, entities *ecs.World) {
	r.screen.Clear()

	// The player's viewshed decides which explored tiles get full color.
	var playerView *ecs.Viewshed
	entities.EachPlayer(func(e ecs.Entity, _ *ecs.Position) {
		if v, ok := entities.Viewshed(e); ok {
			playerView = v
		}
	})

	for idx := range m.Tiles {
		if !m.Explored[idx] {
			continue
		}
		tile := m.Tiles[idx]
		x, y := idx%m.Width, idx/m.Width

		glyph := tile.Glyph
		fg := tile.Fg
		if playerView != nil && playerView.Contains(fov.Point{X: x, Y: y}) {
			// A hidden trap only shows its true glyph when a spot roll
			// beats its detection difficulty.
			if tile.TrapDC != nil && r.rng.Intn(20)+1 < *tile.TrapDC {
				glyph = '.'
			}
		} else {
			fg = greyscale(fg)
		}

		r.screen.SetContent(x, y, glyph, styleFor(fg, tile.Bg))
	}

	entities.EachRenderable(func(pos *ecs.Position, ren ecs.Renderable) {
		r.screen.SetContent(pos.X, pos.Y, ren.Glyph, styleFor(ren.Fg, ren.Bg).Bold(true))
	})

	r.screen.Show()
}

// greyscale collapses a color to its luminance for remembered-but-unseen
// tiles.
func greyscale(c colorful.Color) colorful.Color {
	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return colorful.Color{R: l, G: l, B: l}
}

func styleFor(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
}

func toTcell(c colorful.Color) tcell.Color {
	red, green, blue := c.RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
