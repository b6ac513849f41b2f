package game

import (
	"math/rand"
)

// Food owns the single active food cell. Its position is a placeholder until
// the first Spawn; callers must spawn before play begins.
type Food struct {
	position Position
}

// NewFood creates food at the out-of-play placeholder position (0, 0),
// which lies on the wall border and can never be reached by the snake head
// without ending the game.
func NewFood() *Food {
	return &Food{
		position: Position{X: 0, Y: 0},
	}
}

// Position returns the active food cell.
func (f *Food) Position() Position {
	return f.position
}

// Spawn assigns a uniformly random interior cell not occupied by the snake.
// It returns false without touching the position when no free interior cell
// remains, which callers must treat as the game-won terminal condition.
//
// The candidate set is built with a membership set over the snake body so
// each grid cell costs O(1) to test.
func (f *Food) Spawn(s *Snake, rng *rand.Rand) bool {
	occupied := make(map[Position]bool, s.Len())
	for _, segment := range s.Body() {
		occupied[segment] = true
	}

	candidates := make([]Position, 0, (s.gridW-2)*(s.gridH-2))
	for x := 1; x < s.gridW-1; x++ {
		for y := 1; y < s.gridH-1; y++ {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return false
	}

	f.position = candidates[rng.Intn(len(candidates))]
	return true
}
