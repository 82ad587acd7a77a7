package world

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNoAvailablePosition is returned when no unoccupied floor tile exists.
	ErrNoAvailablePosition = errors.New("no unoccupied floor tile available")
	// ErrInvalidPatch is returned when a room patch has a negative size.
	ErrInvalidPatch = errors.New("invalid room patch")
)
