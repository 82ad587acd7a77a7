package world

// Camera is the viewport onto the world. X and Y are the world coordinates
// of its top-left corner.
type Camera struct {
	X, Y          int
	Width, Height int
}

// NewCamera creates a camera with the given viewport size.
func NewCamera(width, height int) *Camera {
	return &Camera{Width: width, Height: height}
}

// CenterOn moves the viewport so (x, y) is in the middle, clamped so the
// viewport never extends past the world edge.
func (c *Camera) CenterOn(x, y int, w *World) {
	c.X = clamp(x-c.Width/2, 0, w.Width-c.Width)
	c.Y = clamp(y-c.Height/2, 0, w.Height-c.Height)
}

// ToScreen converts world coordinates to viewport coordinates.
func (c *Camera) ToScreen(x, y int) (int, int) {
	return x - c.X, y - c.Y
}

// Visible returns true if the world position is inside the viewport.
func (c *Camera) Visible(x, y int) bool {
	sx, sy := c.ToScreen(x, y)
	return sx >= 0 && sx < c.Width && sy >= 0 && sy < c.Height
}

// clamp bounds v to [lo, hi]. When the viewport is larger than the world
// hi is negative and the camera pins to 0.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
