package world

// Room represents a rectangular room placed in the world.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room, walls included
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// RoomFunc produces a room patch of the given size.
type RoomFunc func(width, height int) *Patch

// RectRoom returns a rectangular room: wall border, floor interior.
func RectRoom(width, height int) *Patch {
	p := EmptyTiles(width, height, TileWall)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			p.Set(x, y, TileFloor)
		}
	}
	return p
}

// CrossRoom returns a plus-shaped room inside a width x height box.
// Corners outside the cross are clear.
func CrossRoom(width, height int) *Patch {
	p := EmptyTiles(width, height, TileClear)
	armW, armH := crossArm(width), crossArm(height)
	if armW < 1 || armH < 1 {
		return RectRoom(width, height)
	}

	inCross := func(x, y int) bool {
		if x < 0 || x >= width || y < 0 || y >= height {
			return false
		}
		inVertical := x >= armW && x < width-armW
		inHorizontal := y >= armH && y < height-armH
		return inVertical || inHorizontal
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !inCross(x, y) {
				continue
			}
			// A cross cell is floor when all eight neighbours are in the cross.
			interior := true
			for dy := -1; dy <= 1 && interior; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if !inCross(x+dx, y+dy) {
						interior = false
						break
					}
				}
			}
			if interior {
				p.Set(x, y, TileFloor)
			} else {
				p.Set(x, y, TileWall)
			}
		}
	}
	return p
}

// crossArm returns how far a cross arm is inset from the box edge. The
// central band keeps at least three cells so it has a floor row.
func crossArm(size int) int {
	arm := size / 3
	if size-2*arm < 3 {
		arm = (size - 3) / 2
	}
	return arm
}
