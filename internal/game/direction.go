// Package game implements the snake game engine: snake movement and
// collision, food spawning, and the fixed-interval tick state machine.
// The package is pure simulation; rendering, input sources, and persistence
// live in the surrounding platform layers.
package game

// Position identifies a grid cell. Value type; equality and map keys work
// by coordinate pair.
type Position struct {
	X, Y int
}

// Direction is the snake's facing direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the exact reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
