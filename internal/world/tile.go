// Package world provides the tile grid, the entity registry and dungeon generation.
package world

import "github.com/gdamore/tcell/v2"

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileClear is empty space outside any room.
	TileClear Tile = ' '
	// TileUp is a staircase leading up a level.
	TileUp Tile = '<'
	// TileDown is a staircase leading down a level.
	TileDown Tile = '>'
	// TilePlayer is the glyph used to draw the player.
	TilePlayer Tile = '@'
	// TileEnemy is the default glyph for hostile entities.
	TileEnemy Tile = 'e'
	// TileItem marks an item lying on the floor.
	TileItem Tile = '!'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall && t != TileClear
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns the display glyph as a string.
func (t Tile) String() string {
	return string(rune(t))
}

// Color returns the terminal color a tile is drawn with.
func (t Tile) Color() tcell.Color {
	switch t {
	case TileWall:
		return tcell.ColorGray
	case TileFloor:
		return tcell.ColorDarkGray
	case TileUp, TileDown:
		return tcell.ColorYellow
	case TilePlayer:
		return tcell.ColorWhite
	case TileEnemy:
		return tcell.ColorRed
	case TileItem:
		return tcell.ColorAqua
	default:
		return tcell.ColorDefault
	}
}

// Style returns the tcell style a tile is drawn with.
func (t Tile) Style() tcell.Style {
	style := tcell.StyleDefault.Foreground(t.Color())
	if t == TilePlayer {
		style = style.Bold(true)
	}
	return style
}
