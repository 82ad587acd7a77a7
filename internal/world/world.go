package world

import (
	"fmt"
	"math/rand"
)

const (
	// Default world dimensions
	DefaultWidth  = 80
	DefaultHeight = 40
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Occupant is anything the world can register. Position is read on every
// query so an occupant's own coordinates stay the source of truth.
type Occupant interface {
	Position() (int, int)
	IsSolid() bool
}

// World owns the tile grid and the registry of active entities.
type World struct {
	Width    int
	Height   int
	tiles    [][]Tile
	entities []Occupant
	rng      *rand.Rand
}

// New creates a world of the given size filled with clear tiles.
// rng is the shared random source for placement; it is also handed to
// combat through Rand.
func New(width, height int, rng *rand.Rand) *World {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileClear
		}
	}

	return &World{
		Width:    width,
		Height:   height,
		tiles:    tiles,
		entities: make([]Occupant, 0),
		rng:      rng,
	}
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// InBounds returns true if (x, y) lies on the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

func (w *World) checkBounds(x, y int) error {
	if !w.InBounds(x, y) {
		return fmt.Errorf("tile (%d, %d) in %dx%d world: %w", x, y, w.Width, w.Height, ErrOutOfBounds)
	}
	return nil
}

// SetTile sets the tile at the given position.
func (w *World) SetTile(x, y int, t Tile) error {
	if err := w.checkBounds(x, y); err != nil {
		return err
	}
	w.tiles[y][x] = t
	return nil
}

// GetTile returns the tile at the given position.
func (w *World) GetTile(x, y int) (Tile, error) {
	if err := w.checkBounds(x, y); err != nil {
		return TileClear, err
	}
	return w.tiles[y][x], nil
}

// IsWall returns true if the tile at the given position is a wall.
func (w *World) IsWall(x, y int) (bool, error) {
	t, err := w.GetTile(x, y)
	if err != nil {
		return false, err
	}
	return t == TileWall, nil
}

// AddEntity registers an entity. Registering the same entity twice is a no-op.
func (w *World) AddEntity(e Occupant) {
	if w.HasEntity(e) {
		return
	}
	w.entities = append(w.entities, e)
}

// RemoveEntity deregisters an entity and reports whether it was registered.
func (w *World) RemoveEntity(e Occupant) bool {
	for i, existing := range w.entities {
		if existing == e {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	return false
}

// HasEntity returns true if e is in the registry.
func (w *World) HasEntity(e Occupant) bool {
	for _, existing := range w.entities {
		if existing == e {
			return true
		}
	}
	return false
}

// Entities returns a snapshot of the registry in registration order.
// Callers may add or remove entities while iterating the snapshot.
func (w *World) Entities() []Occupant {
	snapshot := make([]Occupant, len(w.entities))
	copy(snapshot, w.entities)
	return snapshot
}

// GetEntityAt returns the first registered entity at (x, y), or nil.
func (w *World) GetEntityAt(x, y int) Occupant {
	for _, e := range w.entities {
		if ex, ey := e.Position(); ex == x && ey == y {
			return e
		}
	}
	return nil
}

// GetEntitiesAt returns all registered entities at (x, y) in registration order.
func (w *World) GetEntitiesAt(x, y int) []Occupant {
	var found []Occupant
	for _, e := range w.entities {
		if ex, ey := e.Position(); ex == x && ey == y {
			found = append(found, e)
		}
	}
	return found
}

// GetEntitiesSurrounding returns all registered entities in the 3x3 block
// centered on (x, y), including the center cell.
func (w *World) GetEntitiesSurrounding(x, y int) []Occupant {
	var found []Occupant
	for _, e := range w.entities {
		ex, ey := e.Position()
		if abs(ex-x) <= 1 && abs(ey-y) <= 1 {
			found = append(found, e)
		}
	}
	return found
}

// GetTilesSurrounding returns the tiles of the 3x3 block centered on (x, y),
// keyed by absolute position. Cells off the grid are omitted.
func (w *World) GetTilesSurrounding(x, y int) map[Point]Tile {
	tiles := make(map[Point]Tile, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if w.InBounds(nx, ny) {
				tiles[Point{nx, ny}] = w.tiles[ny][nx]
			}
		}
	}
	return tiles
}

// RandomFloorTile picks uniformly among floor tiles with no registered entity on them.
func (w *World) RandomFloorTile() (Point, error) {
	occupied := make(map[Point]struct{}, len(w.entities))
	for _, e := range w.entities {
		x, y := e.Position()
		occupied[Point{x, y}] = struct{}{}
	}

	var candidates []Point
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if w.tiles[y][x] != TileFloor {
				continue
			}
			if _, taken := occupied[Point{x, y}]; taken {
				continue
			}
			candidates = append(candidates, Point{x, y})
		}
	}

	if len(candidates) == 0 {
		return Point{}, ErrNoAvailablePosition
	}
	return candidates[w.rng.Intn(len(candidates))], nil
}

// AddRoom overwrites the grid with patch, its top-left corner at (originX, originY).
// If the patch is invalid or any cell of it falls off the grid nothing is written.
func (w *World) AddRoom(originX, originY int, patch *Patch) error {
	if !patch.Valid() {
		return fmt.Errorf("add room at (%d, %d): %w", originX, originY, ErrInvalidPatch)
	}
	for y := 0; y < patch.Height; y++ {
		for x := 0; x < patch.Width; x++ {
			if err := w.checkBounds(originX+x, originY+y); err != nil {
				return fmt.Errorf("add room at (%d, %d): %w", originX, originY, err)
			}
		}
	}

	for y := 0; y < patch.Height; y++ {
		for x := 0; x < patch.Width; x++ {
			w.tiles[originY+y][originX+x] = patch.At(x, y)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
