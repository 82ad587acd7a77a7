package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/world"
)

// Sprite is a registered occupant that knows how it is drawn.
type Sprite interface {
	world.Occupant
	Glyph() world.Tile
	Style() tcell.Style
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the part of the world visible through c, then every
// registered sprite on top. Occupants that aren't sprites are not drawn.
func (r *Renderer) Render(w *world.World, c *world.Camera) {
	r.screen.Clear()

	// Draw tiles
	for sy := 0; sy < c.Height; sy++ {
		for sx := 0; sx < c.Width; sx++ {
			tile, err := w.GetTile(c.X+sx, c.Y+sy)
			if err != nil {
				continue
			}
			r.screen.SetContent(sx, sy, tile.Rune(), tile.Style())
		}
	}

	// Draw sprites on top, later registrations over earlier ones
	for _, occ := range w.Entities() {
		sprite, ok := occ.(Sprite)
		if !ok {
			continue
		}
		x, y := sprite.Position()
		if !c.Visible(x, y) {
			continue
		}
		sx, sy := c.ToScreen(x, y)
		r.screen.SetContent(sx, sy, sprite.Glyph().Rune(), sprite.Style())
	}

	r.screen.Show()
}

// RenderMessages draws lines starting at row y.
func (r *Renderer) RenderMessages(lines []string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range lines {
		for x, ch := range []rune(line) {
			r.screen.SetContent(x, y+i, ch, style)
		}
	}
	r.screen.Show()
}
