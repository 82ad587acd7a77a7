// Package game drives turns over the world: it builds a dungeon, spawns the
// player and enemies, and runs each turn's actions and updates.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state while the player is alive.
	StatePlaying State = iota
	// StateOver means the player has died.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
