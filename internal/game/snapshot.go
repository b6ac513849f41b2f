package game

// Snapshot is the read-only state handed to presentation layers after each
// tick: the ordered body cells, the food cell, the score, and the outcome.
// The body slice is a copy; consumers may hold it across ticks.
type Snapshot struct {
	Tick       uint64
	GridWidth  int
	GridHeight int
	Body       []Position // Head first
	Dir        Direction
	Food       Position
	Score      int
	Outcome    Outcome
}

// Head returns the snake head cell.
func (s Snapshot) Head() Position {
	return s.Body[0]
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		GridWidth:  g.cfg.GridWidth,
		GridHeight: g.cfg.GridHeight,
		Body:       g.snake.Body(),
		Dir:        g.snake.Direction(),
		Food:       g.food.Position(),
		Score:      g.score,
		Outcome:    g.outcome,
	}
}
