package world

import "strings"

// String draws the tile grid, one row per line. Occupants are not drawn.
func (w *World) String() string {
	var b strings.Builder
	for y, row := range w.tiles {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, t := range row {
			b.WriteRune(t.Rune())
		}
	}
	return b.String()
}
