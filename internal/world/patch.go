package world

import "fmt"

// Patch is a rectangular block of tiles produced by a room generator.
type Patch struct {
	Width, Height int
	cells         []Tile
}

// EmptyTiles builds a width x height patch with every cell set to t.
// A negative size yields an invalid patch that AddRoom rejects.
func EmptyTiles(width, height int, t Tile) *Patch {
	p := &Patch{Width: width, Height: height}
	if width < 0 || height < 0 {
		return p
	}
	p.cells = make([]Tile, width*height)
	for i := range p.cells {
		p.cells[i] = t
	}
	return p
}

// Valid reports whether the patch has a non-negative size and a cell for
// every offset.
func (p *Patch) Valid() bool {
	return p != nil && p.Width >= 0 && p.Height >= 0 && len(p.cells) == p.Width*p.Height
}

// Len returns the number of cells in the patch.
func (p *Patch) Len() int {
	return len(p.cells)
}

// Contains returns true if the offset lies inside the patch.
func (p *Patch) Contains(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

// At returns the tile at offset (x, y). Offsets outside the patch read as TileClear.
func (p *Patch) At(x, y int) Tile {
	if !p.Contains(x, y) {
		return TileClear
	}
	return p.cells[y*p.Width+x]
}

// Set writes the tile at offset (x, y). Like indexing a slice, it panics if
// the offset lies outside the patch.
func (p *Patch) Set(x, y int, t Tile) {
	if !p.Contains(x, y) {
		panic(fmt.Sprintf("world: patch offset (%d, %d) outside %dx%d patch", x, y, p.Width, p.Height))
	}
	p.cells[y*p.Width+x] = t
}

// Tiles returns every cell keyed by its offset.
func (p *Patch) Tiles() map[Point]Tile {
	tiles := make(map[Point]Tile, len(p.cells))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			tiles[Point{x, y}] = p.At(x, y)
		}
	}
	return tiles
}
