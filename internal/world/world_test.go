package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// occupant is a minimal registry member for world tests.
type occupant struct {
	x, y  int
	solid bool
}

func (o *occupant) Position() (int, int) { return o.x, o.y }
func (o *occupant) IsSolid() bool        { return o.solid }

func newTestWorld() *World {
	return New(100, 100, rand.New(rand.NewSource(1)))
}

func TestWorldInitialize(t *testing.T) {
	w := newTestWorld()
	assert.Equal(t, 100, w.Width)
	assert.Equal(t, 100, w.Height)
	assert.Empty(t, w.Entities())
}

func TestSetThenGetTile(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.SetTile(10, 10, TileUp))

	got, err := w.GetTile(10, 10)
	require.NoError(t, err)
	assert.Equal(t, TileUp, got)
}

func TestSetThenGetTileEveryCell(t *testing.T) {
	w := New(7, 5, rand.New(rand.NewSource(1)))
	tiles := []Tile{TileWall, TileFloor, TileDown, TileUp, TileClear}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			require.NoError(t, w.SetTile(x, y, tiles[(x+y)%len(tiles)]))
		}
	}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			got, err := w.GetTile(x, y)
			require.NoError(t, err)
			assert.Equal(t, tiles[(x+y)%len(tiles)], got, "tile at (%d,%d)", x, y)
		}
	}
}

func TestIsWall(t *testing.T) {
	w := newTestWorld()

	wall, err := w.IsWall(10, 10)
	require.NoError(t, err)
	assert.False(t, wall)

	require.NoError(t, w.SetTile(10, 10, TileWall))
	wall, err = w.IsWall(10, 10)
	require.NoError(t, err)
	assert.True(t, wall)

	require.NoError(t, w.SetTile(10, 10, TileFloor))
	wall, err = w.IsWall(10, 10)
	require.NoError(t, err)
	assert.False(t, wall)
}

func TestOutOfBounds(t *testing.T) {
	w := newTestWorld()
	points := []Point{{-10, -10}, {-1, 0}, {0, -1}, {100, 0}, {0, 100}, {1000, 1000}}

	for _, p := range points {
		_, err := w.GetTile(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "GetTile(%d,%d)", p.X, p.Y)

		err = w.SetTile(p.X, p.Y, TileFloor)
		assert.ErrorIs(t, err, ErrOutOfBounds, "SetTile(%d,%d)", p.X, p.Y)

		_, err = w.IsWall(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "IsWall(%d,%d)", p.X, p.Y)
	}
}

func TestEmptyTilesDimensions(t *testing.T) {
	p := EmptyTiles(10, 12, TileFloor)

	assert.Equal(t, 10*12, p.Len())
	tiles := p.Tiles()
	assert.Len(t, tiles, 10*12)
	for pt, tile := range tiles {
		assert.Equal(t, TileFloor, tile, "cell %v", pt)
	}
	assert.Equal(t, TileFloor, p.At(0, 0))
	assert.Equal(t, TileFloor, p.At(9, 11))
}

func TestRandomFloorTileSingleFloor(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.SetTile(10, 12, TileFloor))

	for i := 0; i < 20; i++ {
		p, err := w.RandomFloorTile()
		require.NoError(t, err)
		assert.Equal(t, Point{10, 12}, p)
	}
}

func TestRandomFloorTileEmptyWorld(t *testing.T) {
	w := newTestWorld()
	_, err := w.RandomFloorTile()
	assert.ErrorIs(t, err, ErrNoAvailablePosition)
}

func TestRandomFloorTileOccupiedSpace(t *testing.T) {
	w := newTestWorld()
	w.AddEntity(&occupant{x: 10, y: 12})
	require.NoError(t, w.SetTile(10, 12, TileFloor))
	require.NoError(t, w.SetTile(11, 12, TileFloor))

	// (11, 12) is the only unoccupied option
	for i := 0; i < 20; i++ {
		p, err := w.RandomFloorTile()
		require.NoError(t, err)
		assert.Equal(t, Point{11, 12}, p)
	}

	require.NoError(t, w.SetTile(11, 12, TileWall))
	_, err := w.RandomFloorTile()
	assert.ErrorIs(t, err, ErrNoAvailablePosition)
}

func TestRandomFloorTileIgnoresNonSolidOccupantsToo(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.SetTile(3, 3, TileFloor))
	w.AddEntity(&occupant{x: 3, y: 3, solid: false})

	_, err := w.RandomFloorTile()
	assert.ErrorIs(t, err, ErrNoAvailablePosition)
}

func TestRandomFloorTileIsUniform(t *testing.T) {
	w := newTestWorld()
	floors := []Point{{0, 0}, {1, 0}, {50, 50}, {99, 99}}
	for _, p := range floors {
		require.NoError(t, w.SetTile(p.X, p.Y, TileFloor))
	}

	const draws = 4000
	counts := make(map[Point]int)
	for i := 0; i < draws; i++ {
		p, err := w.RandomFloorTile()
		require.NoError(t, err)
		counts[p]++
	}

	require.Len(t, counts, len(floors))
	for _, p := range floors {
		assert.InDelta(t, draws/len(floors), counts[p], 200, "draws of %v", p)
	}
}

func TestAddedEntityIsRegistered(t *testing.T) {
	w := newTestWorld()
	e := &occupant{}
	w.AddEntity(e)
	assert.True(t, w.HasEntity(e))

	// Adding twice keeps one registration
	w.AddEntity(e)
	assert.Len(t, w.Entities(), 1)
}

func TestRemoveEntityByIdentity(t *testing.T) {
	w := newTestWorld()
	a := &occupant{x: 1, y: 1}
	b := &occupant{x: 1, y: 1}
	w.AddEntity(a)
	w.AddEntity(b)

	assert.True(t, w.RemoveEntity(a))
	assert.False(t, w.HasEntity(a))
	assert.True(t, w.HasEntity(b))
	assert.False(t, w.RemoveEntity(a), "second removal is a no-op")
}

func TestGetEntityAt(t *testing.T) {
	w := newTestWorld()
	first := &occupant{x: 20, y: 24}
	second := &occupant{x: 20, y: 24}
	w.AddEntity(first)
	w.AddEntity(second)

	assert.Same(t, first, w.GetEntityAt(20, 24))
	assert.Nil(t, w.GetEntityAt(21, 24))
}

func TestGetEntityAtFollowsPosition(t *testing.T) {
	w := newTestWorld()
	e := &occupant{x: 1, y: 1}
	w.AddEntity(e)

	e.x, e.y = 5, 6
	assert.Nil(t, w.GetEntityAt(1, 1))
	assert.Same(t, e, w.GetEntityAt(5, 6))
}

func TestGetEntitiesAtKeepsRegistrationOrder(t *testing.T) {
	w := newTestWorld()
	first := &occupant{x: 20, y: 24}
	other := &occupant{x: 3, y: 3}
	second := &occupant{x: 20, y: 24}
	w.AddEntity(first)
	w.AddEntity(other)
	w.AddEntity(second)

	got := w.GetEntitiesAt(20, 24)
	require.Len(t, got, 2)
	assert.Same(t, first, got[0])
	assert.Same(t, second, got[1])
	assert.Empty(t, w.GetEntitiesAt(0, 0))
}

func TestGetEntitiesSurrounding(t *testing.T) {
	w := newTestWorld()
	e1 := &occupant{x: 20, y: 24}
	e2 := &occupant{x: 20, y: 25}
	e3 := &occupant{x: 21, y: 25}
	e4 := &occupant{x: 50, y: 50}
	e5 := &occupant{x: 23, y: 24} // Chebyshev distance 2
	for _, e := range []*occupant{e1, e2, e3, e4, e5} {
		w.AddEntity(e)
	}

	got := w.GetEntitiesSurrounding(21, 24)
	require.Len(t, got, 3)
	assert.Same(t, e1, got[0])
	assert.Same(t, e2, got[1])
	assert.Same(t, e3, got[2])
}

func TestGetEntitiesSurroundingIncludesCenter(t *testing.T) {
	w := newTestWorld()
	center := &occupant{x: 5, y: 5}
	corner := &occupant{x: 4, y: 6}
	w.AddEntity(center)
	w.AddEntity(corner)

	got := w.GetEntitiesSurrounding(5, 5)
	assert.Len(t, got, 2)
}

func TestGetTilesSurrounding(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.SetTile(0, 1, TileFloor))
	require.NoError(t, w.SetTile(0, 2, TileFloor))
	require.NoError(t, w.SetTile(1, 2, TileWall))

	tiles := w.GetTilesSurrounding(1, 1)
	assert.Len(t, tiles, 9)
	assert.Equal(t, TileFloor, tiles[Point{0, 1}])
	assert.Equal(t, TileFloor, tiles[Point{0, 2}])
	assert.Equal(t, TileWall, tiles[Point{1, 2}])
	assert.Equal(t, TileClear, tiles[Point{1, 1}])
}

func TestGetTilesSurroundingAtEdge(t *testing.T) {
	w := newTestWorld()
	tiles := w.GetTilesSurrounding(0, 0)
	assert.Len(t, tiles, 4)
	_, ok := tiles[Point{-1, -1}]
	assert.False(t, ok)
}

func TestAddRectangularRoom(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.AddRoom(10, 10, RectRoom(10, 12)))

	tests := []struct {
		x, y int
		want Tile
	}{
		{10, 10, TileWall},  // top-left corner
		{11, 11, TileFloor}, // first interior cell
		{19, 21, TileWall},  // bottom-right corner
		{18, 20, TileFloor}, // last interior cell
		{20, 22, TileClear}, // outside the room
	}
	for _, tt := range tests {
		got, err := w.GetTile(tt.x, tt.y)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "tile at (%d,%d)", tt.x, tt.y)
	}
}

func TestAddRoomOverwrites(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.SetTile(11, 11, TileDown))
	require.NoError(t, w.AddRoom(10, 10, RectRoom(4, 4)))

	got, err := w.GetTile(11, 11)
	require.NoError(t, err)
	assert.Equal(t, TileFloor, got)
}

func TestAddRoomOutOfBounds(t *testing.T) {
	w := newTestWorld()
	err := w.AddRoom(95, 95, RectRoom(10, 12))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Nothing was written
	got, err := w.GetTile(95, 95)
	require.NoError(t, err)
	assert.Equal(t, TileClear, got)
}

func TestEntitiesSnapshotIsSafeToMutate(t *testing.T) {
	w := newTestWorld()
	a, b, c := &occupant{}, &occupant{}, &occupant{}
	w.AddEntity(a)
	w.AddEntity(b)
	w.AddEntity(c)

	visited := 0
	for _, e := range w.Entities() {
		w.RemoveEntity(e)
		visited++
	}
	assert.Equal(t, 3, visited)
	assert.Empty(t, w.Entities())
}
