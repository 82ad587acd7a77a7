package world

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/telemetry"
)

const (
	// BSP parameters
	minRoomSize = 5  // Minimum room dimension, walls included
	maxRoomSize = 14 // Maximum room dimension, walls included
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
)

// Generator lays out a dungeon on a World using binary space partitioning.
// Rooms are stamped with AddRoom, so every room shape goes through the same
// overwrite path as hand-placed rooms.
type Generator struct {
	// Shapes are the room generators to pick from. Defaults to RectRoom only.
	Shapes []RoomFunc
	log    logrus.FieldLogger
}

// NewGenerator creates a generator that picks among the given room shapes.
func NewGenerator(log logrus.FieldLogger, shapes ...RoomFunc) *Generator {
	if len(shapes) == 0 {
		shapes = []RoomFunc{RectRoom}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{
		Shapes: shapes,
		log:    log.WithField("component", "generator"),
	}
}

// Generate fills w with rooms and corridors and places a down staircase.
// It returns the rooms in the order they were placed.
func (g *Generator) Generate(ctx context.Context, w *World) ([]Room, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{
		x:      0,
		y:      0,
		width:  w.Width,
		height: w.Height,
	}

	g.splitNode(w, root)

	var rooms []Room
	if err := g.createRooms(w, root, &rooms); err != nil {
		span.RecordError(err)
		return nil, err
	}
	g.connectRooms(w, root)

	stairs, err := w.RandomFloorTile()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("place stairs: %w", err)
	}
	if err := w.SetTile(stairs.X, stairs.Y, TileDown); err != nil {
		return nil, err
	}

	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.Int("dungeon.width", w.Width),
		attribute.Int("dungeon.height", w.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int64("dungeon.generation_ms", elapsed.Milliseconds()),
	)
	g.log.WithFields(logrus.Fields{
		"width":    w.Width,
		"height":   w.Height,
		"rooms":    len(rooms),
		"duration": elapsed,
	}).Debug("Dungeon generated.")

	return rooms, nil
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *Generator) splitNode(w *World, node *bspNode) {
	canSplitH := node.height >= minLeafSize*2
	canSplitV := node.width >= minLeafSize*2
	if !canSplitH && !canSplitV {
		return
	}

	// Prefer cutting across the longer side
	splitHorizontally := canSplitH
	if canSplitV && (node.width > node.height || !canSplitH) {
		splitHorizontally = false
	}

	size := node.width
	if splitHorizontally {
		size = node.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	splitPos := lo + w.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(w, node.left)
	g.splitNode(w, node.right)
}

// createRooms stamps a room into every leaf large enough to hold one.
func (g *Generator) createRooms(w *World, node *bspNode, rooms *[]Room) error {
	if node == nil {
		return nil
	}
	if !node.isLeaf() {
		if err := g.createRooms(w, node.left, rooms); err != nil {
			return err
		}
		return g.createRooms(w, node.right, rooms)
	}

	maxW := min(maxRoomSize, node.width)
	maxH := min(maxRoomSize, node.height)
	if maxW < minRoomSize || maxH < minRoomSize {
		return nil
	}

	room := Room{
		Width:  minRoomSize + w.rng.Intn(maxW-minRoomSize+1),
		Height: minRoomSize + w.rng.Intn(maxH-minRoomSize+1),
	}
	room.X = node.x + w.rng.Intn(node.width-room.Width+1)
	room.Y = node.y + w.rng.Intn(node.height-room.Height+1)

	shape := g.Shapes[w.rng.Intn(len(g.Shapes))]
	if err := w.AddRoom(room.X, room.Y, shape(room.Width, room.Height)); err != nil {
		return fmt.Errorf("stamp room %+v: %w", room, err)
	}

	node.room = &room
	*rooms = append(*rooms, room)
	return nil
}

// connectRooms connects sibling subtrees with corridors.
func (g *Generator) connectRooms(w *World, node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(w, node.left)
	g.connectRooms(w, node.right)

	leftRoom := getRoom(node.left)
	rightRoom := getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(w, *leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := getRoom(node.left); room != nil {
		return room
	}
	return getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (g *Generator) carveCorridor(w *World, room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	if w.rng.Intn(2) == 0 {
		carveHorizontal(w, x1, x2, y1)
		carveVertical(w, y1, y2, x2)
	} else {
		carveVertical(w, y1, y2, x1)
		carveHorizontal(w, x1, x2, y2)
	}
}

func carveHorizontal(w *World, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		carveFloor(w, x, y)
	}
}

func carveVertical(w *World, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carveFloor(w, x, y)
	}
}

// carveFloor turns a cell into floor and walls off any clear neighbours.
// The outermost ring of the grid is never carved.
func carveFloor(w *World, x, y int) {
	if x <= 0 || x >= w.Width-1 || y <= 0 || y >= w.Height-1 {
		return
	}
	w.tiles[y][x] = TileFloor
	for p := range w.GetTilesSurrounding(x, y) {
		if w.tiles[p.Y][p.X] == TileClear {
			w.tiles[p.Y][p.X] = TileWall
		}
	}
}
