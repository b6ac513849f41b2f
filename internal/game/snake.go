package game

import (
	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
)

// Snake owns the ordered body (head first), the facing direction, and the
// one-shot growing flag. It advances itself one cell per simulation step and
// detects wall and self collisions against its grid.
type Snake struct {
	body      []Position
	direction Direction
	growing   bool

	gridW int
	gridH int
}

// NewSnake creates a single-cell snake at the grid center, facing right.
func NewSnake(gridW, gridH int) *Snake {
	return &Snake{
		body: []Position{
			{X: gridW / 2, Y: gridH / 2},
		},
		direction: DirRight,
		growing:   false,
		gridW:     gridW,
		gridH:     gridH,
	}
}

// ChangeDirection sets the facing direction. A request for the exact reverse
// of the current direction is silently ignored: the snake cannot turn back
// into itself.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Grow arms the growing flag. The next Update keeps the tail instead of
// dropping it, then clears the flag.
func (s *Snake) Grow() {
	s.growing = true
}

// Update advances the snake one cell in its current direction. Coordinates
// saturate at the grid bounds rather than leaving them: a head pushed against
// the outer edge stays on the border cell, where CheckCollision reports the
// wall hit one step later. The new head is prepended; the tail is dropped
// unless the snake is growing.
func (s *Snake) Update() {
	head := s.body[0]

	var newHead Position
	switch s.direction {
	case DirUp:
		newHead = Position{X: head.X, Y: core.Max(head.Y-1, 0)}
	case DirDown:
		newHead = Position{X: head.X, Y: core.Min(head.Y+1, s.gridH-1)}
	case DirLeft:
		newHead = Position{X: core.Max(head.X-1, 0), Y: head.Y}
	case DirRight:
		newHead = Position{X: core.Min(head.X+1, s.gridW-1), Y: head.Y}
	}

	s.body = append([]Position{newHead}, s.body...)

	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// CheckCollision reports whether the head sits on the one-cell wall border
// or overlaps any non-head body segment.
func (s *Snake) CheckCollision() bool {
	head := s.body[0]

	if head.X == 0 || head.X >= s.gridW-1 || head.Y == 0 || head.Y >= s.gridH-1 {
		return true
	}

	for _, segment := range s.body[1:] {
		if head == segment {
			return true
		}
	}

	return false
}

// Head returns the current head position.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current facing direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any body segment sits on the given cell.
func (s *Snake) Occupies(p Position) bool {
	for _, segment := range s.body {
		if segment == p {
			return true
		}
	}
	return false
}
