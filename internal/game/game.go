package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
)

// FoodReward is the score added for each food eaten.
const FoodReward = 10

// MinGridSize is the smallest usable grid edge: a one-cell border on each
// side plus a playable interior the center cell falls into.
const MinGridSize = 4

// Outcome is the tri-state result of a game.
type Outcome string

const (
	OutcomeRunning  Outcome = "running"
	OutcomeGameOver Outcome = "game_over"
	OutcomeWon      Outcome = "won"
)

// Config holds the engine construction parameters. The refresh interval is
// fixed for the lifetime of the game; everything else resets on restart.
type Config struct {
	GridWidth  int
	GridHeight int

	// RefreshInterval is the fixed simulation cadence. Tick calls arriving
	// before the interval has elapsed latch input but do not step.
	RefreshInterval time.Duration

	// Reward per food; defaults to FoodReward when zero.
	Reward int

	// Seed for the food-spawn RNG; 0 derives from the current time.
	Seed int64

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard 64x36 grid at the classic 150ms cadence.
func DefaultConfig() Config {
	return Config{
		GridWidth:       64,
		GridHeight:      36,
		RefreshInterval: 150 * time.Millisecond,
		Reward:          FoodReward,
	}
}

// Game orchestrates one snake and one food across the per-tick transition
// cycle. Single-owner: one goroutine drives Tick, no internal concurrency.
type Game struct {
	cfg   Config
	snake *Snake
	food  *Food
	rng   *rand.Rand
	now   func() time.Time

	score    int
	outcome  Outcome
	lastStep time.Time
	tick     uint64
}

// New validates the configuration, builds the initial snake and food, and
// spawns the first food cell.
func New(cfg Config) (*Game, error) {
	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("game: refresh interval must be positive, got %v", cfg.RefreshInterval)
	}
	if cfg.GridWidth < MinGridSize || cfg.GridHeight < MinGridSize {
		return nil, fmt.Errorf("game: grid %dx%d is too small, need at least %dx%d",
			cfg.GridWidth, cfg.GridHeight, MinGridSize, MinGridSize)
	}
	if cfg.Reward == 0 {
		cfg.Reward = FoodReward
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Now().UnixNano()
	}

	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: cfg.Now,
	}
	g.reset()
	return g, nil
}

// reset rebuilds the snake and food and zeroes the transient state. The
// configured refresh interval and the RNG stream are preserved.
func (g *Game) reset() {
	g.snake = NewSnake(g.cfg.GridWidth, g.cfg.GridHeight)
	g.food = NewFood()
	g.food.Spawn(g.snake, g.rng)
	g.score = 0
	g.outcome = OutcomeRunning
	g.lastStep = g.now()
}

// Restart returns a terminal game to a fresh Running state.
func (g *Game) Restart() {
	g.reset()
}

// Tick is the per-frame entry point. It latches at most one directional
// command from the frame, performs a simulation step when the refresh
// interval has elapsed, and handles the restart command in terminal states.
// Callers may invoke it at any rate; the simulation advances at the fixed
// cadence regardless.
func (g *Game) Tick(in core.InputFrame) {
	g.tick++

	if g.outcome != OutcomeRunning {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return
	}

	if d, ok := directionFrom(in); ok {
		g.snake.ChangeDirection(d)
	}

	if g.now().Sub(g.lastStep) >= g.cfg.RefreshInterval {
		g.step()
	}
}

// directionFrom extracts at most one directional command from the frame.
func directionFrom(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// step performs one simulation step: advance the snake, resolve food, then
// resolve collisions. Won takes precedence over GameOver: a snake that fills
// the interior ends the game before the collision check runs.
func (g *Game) step() {
	g.snake.Update()
	g.lastStep = g.now()

	if g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.score += g.cfg.Reward
		if !g.food.Spawn(g.snake, g.rng) {
			g.outcome = OutcomeWon
			return
		}
	}

	if g.snake.CheckCollision() {
		g.outcome = OutcomeGameOver
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Outcome returns the current tri-state outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Config returns the configuration the game was constructed with.
func (g *Game) Config() Config {
	return g.cfg
}
