package game

import (
	"testing"
	"time"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
)

// fakeClock lets tests drive the refresh-interval gating explicitly.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// testGame builds a game on a 10x8 grid (8x6 interior) with a fake clock.
func testGame(t *testing.T, clock *fakeClock) *Game {
	t.Helper()
	g, err := New(Config{
		GridWidth:       10,
		GridHeight:      8,
		RefreshInterval: 150 * time.Millisecond,
		Seed:            1,
		Now:             clock.Now,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{GridWidth: 10, GridHeight: 8, RefreshInterval: 0}); err == nil {
		t.Error("Zero refresh interval should be rejected")
	}
	if _, err := New(Config{GridWidth: 10, GridHeight: 8, RefreshInterval: -time.Second}); err == nil {
		t.Error("Negative refresh interval should be rejected")
	}
	if _, err := New(Config{GridWidth: 3, GridHeight: 8, RefreshInterval: time.Second}); err == nil {
		t.Error("Grid without a playable interior should be rejected")
	}
}

func TestNewSpawnsValidFood(t *testing.T) {
	g := testGame(t, newFakeClock())
	snap := g.Snapshot()

	f := snap.Food
	if f.X <= 0 || f.X >= 9 || f.Y <= 0 || f.Y >= 7 {
		t.Errorf("Initial food on border at (%d, %d)", f.X, f.Y)
	}
	if f == snap.Head() {
		t.Error("Initial food spawned on the snake")
	}
}

func TestStepsAdvanceOneCellPerInterval(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)

	// Keep the food away from the snake's path for this scenario.
	g.food.position = Position{X: 1, Y: 1}

	start := g.Snapshot().Head()
	if start != (Position{X: 5, Y: 4}) {
		t.Fatalf("Expected center start (5, 4), got (%d, %d)", start.X, start.Y)
	}

	for i := 1; i <= 3; i++ {
		clock.Advance(150 * time.Millisecond)
		g.Tick(core.NewInputFrame())

		snap := g.Snapshot()
		want := Position{X: start.X + i, Y: start.Y}
		if snap.Head() != want {
			t.Errorf("After step %d: expected head (%d, %d), got (%d, %d)",
				i, want.X, want.Y, snap.Head().X, snap.Head().Y)
		}
		if len(snap.Body) != 1 {
			t.Errorf("After step %d: body grew to %d without food", i, len(snap.Body))
		}
		if snap.Score != 0 {
			t.Errorf("After step %d: score changed to %d without food", i, snap.Score)
		}
		if snap.Outcome != OutcomeRunning {
			t.Errorf("After step %d: outcome %q, want running", i, snap.Outcome)
		}
	}
}

func TestTickBeforeIntervalDoesNotStep(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 1, Y: 1}

	before := g.Snapshot().Head()

	clock.Advance(50 * time.Millisecond)
	g.Tick(core.NewInputFrame())

	if g.Snapshot().Head() != before {
		t.Error("Head moved before the refresh interval elapsed")
	}
}

func TestInputLatchesAcrossNonStepTicks(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 1, Y: 1}

	// Direction arrives on a tick that performs no simulation step.
	g.Tick(frameWith(core.ActionDown))

	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Head() != (Position{X: 5, Y: 5}) {
		t.Errorf("Latched down input should move head to (5, 5), got (%d, %d)",
			snap.Head().X, snap.Head().Y)
	}
	if snap.Dir != DirDown {
		t.Errorf("Expected facing down, got %v", snap.Dir)
	}
}

func TestAtMostOneDirectionPerTick(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 1, Y: 1}

	// Up and left both pressed: only one is applied.
	g.Tick(frameWith(core.ActionUp, core.ActionLeft))

	if g.Snapshot().Dir != DirUp {
		t.Errorf("Expected a single applied direction (up), got %v", g.Snapshot().Dir)
	}
}

func TestReversalRequestIgnoredByTick(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 1, Y: 1}

	g.Tick(frameWith(core.ActionLeft)) // Facing right; exact reverse

	if g.Snapshot().Dir != DirRight {
		t.Errorf("Reversal should be ignored, facing %v", g.Snapshot().Dir)
	}
}

func TestEatingGrowsScoresAndRespawns(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)

	// Place food exactly where the head will arrive next step.
	head := g.Snapshot().Head()
	g.food.position = Position{X: head.X + 1, Y: head.Y}

	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Score != 10 {
		t.Errorf("Expected score 10 after eating, got %d", snap.Score)
	}
	if snap.Outcome != OutcomeRunning {
		t.Errorf("Expected running after eating, got %q", snap.Outcome)
	}

	// Growth takes effect on the following step.
	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())

	snap = g.Snapshot()
	if len(snap.Body) != 2 {
		t.Errorf("Expected body length 2 after growth step, got %d", len(snap.Body))
	}

	// Respawned food must be outside the new body and off the border.
	for _, segment := range snap.Body {
		if snap.Food == segment {
			t.Errorf("Respawned food overlaps the snake at (%d, %d)", snap.Food.X, snap.Food.Y)
		}
	}
	if snap.Food.X <= 0 || snap.Food.X >= 9 || snap.Food.Y <= 0 || snap.Food.Y >= 7 {
		t.Errorf("Respawned food on border at (%d, %d)", snap.Food.X, snap.Food.Y)
	}
}

func TestWallHitEndsGameAndFreezesSimulation(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 8, Y: 6}

	// Drive the head into the left border.
	g.Tick(frameWith(core.ActionDown)) // Turn off the reverse axis first
	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())
	g.Tick(frameWith(core.ActionLeft))

	for i := 0; i < 10; i++ {
		clock.Advance(150 * time.Millisecond)
		g.Tick(core.NewInputFrame())
		if g.Outcome() == OutcomeGameOver {
			break
		}
	}

	snap := g.Snapshot()
	if snap.Outcome != OutcomeGameOver {
		t.Fatalf("Expected game over after driving into the wall, got %q", snap.Outcome)
	}
	if snap.Head().X != 0 {
		t.Errorf("Expected head clamped onto the left border, got x=%d", snap.Head().X)
	}

	// Terminal state: elapsed time no longer produces steps.
	frozen := snap
	clock.Advance(time.Hour)
	g.Tick(frameWith(core.ActionUp))

	after := g.Snapshot()
	if after.Head() != frozen.Head() || after.Score != frozen.Score || after.Outcome != frozen.Outcome {
		t.Error("Simulation advanced after game over without a restart")
	}
}

func TestRestartYieldsFreshRunningState(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 8, Y: 6}

	// Force a game over, then restart.
	g.snake.body = []Position{{X: 1, Y: 4}}
	g.snake.direction = DirLeft
	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())
	if g.Outcome() != OutcomeGameOver {
		t.Fatalf("Setup failed: expected game over, got %q", g.Outcome())
	}

	g.Tick(frameWith(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Outcome != OutcomeRunning {
		t.Errorf("Expected running after restart, got %q", snap.Outcome)
	}
	if len(snap.Body) != 1 || snap.Head() != (Position{X: 5, Y: 4}) {
		t.Errorf("Expected fresh single-cell snake at center, got %v", snap.Body)
	}
	if snap.Score != 0 {
		t.Errorf("Expected score reset to 0, got %d", snap.Score)
	}
	if snap.Food.X <= 0 || snap.Food.X >= 9 || snap.Food.Y <= 0 || snap.Food.Y >= 7 {
		t.Errorf("Restart food on border at (%d, %d)", snap.Food.X, snap.Food.Y)
	}
}

func TestDirectionInputIgnoredWhileGameOver(t *testing.T) {
	clock := newFakeClock()
	g := testGame(t, clock)
	g.food.position = Position{X: 8, Y: 6}

	g.snake.body = []Position{{X: 1, Y: 4}}
	g.snake.direction = DirLeft
	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())
	if g.Outcome() != OutcomeGameOver {
		t.Fatalf("Setup failed: expected game over, got %q", g.Outcome())
	}

	g.Tick(frameWith(core.ActionDown))
	if g.Snapshot().Dir != DirLeft {
		t.Error("Direction input should be ignored in a terminal state")
	}
}

func TestSpawnExhaustionWinsDistinctFromGameOver(t *testing.T) {
	clock := newFakeClock()
	g, err := New(Config{
		GridWidth:       4,
		GridHeight:      4,
		RefreshInterval: 150 * time.Millisecond,
		Seed:            1,
		Now:             clock.Now,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Three segments plus an armed growing flag: the next step covers the
	// whole 2x2 interior while eating the last food.
	g.snake.body = []Position{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	g.snake.direction = DirRight
	g.snake.Grow()
	g.food.position = Position{X: 2, Y: 2}

	clock.Advance(150 * time.Millisecond)
	g.Tick(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Outcome != OutcomeWon {
		t.Fatalf("Expected won on spawn exhaustion, got %q", snap.Outcome)
	}
	if snap.Food != (Position{X: 2, Y: 2}) {
		t.Errorf("Exhausted spawn must leave food untouched, got (%d, %d)", snap.Food.X, snap.Food.Y)
	}
	if snap.Score != 10 {
		t.Errorf("Final food should still score, got %d", snap.Score)
	}
	if len(snap.Body) != 4 {
		t.Errorf("Expected body to fill the interior (4 cells), got %d", len(snap.Body))
	}
}

func TestDeterminismForIdenticalSeeds(t *testing.T) {
	clock1 := newFakeClock()
	clock2 := newFakeClock()
	g1 := testGame(t, clock1)
	g2 := testGame(t, clock2)

	for i := 0; i < 200; i++ {
		frame := core.NewInputFrame()
		switch i {
		case 10:
			frame.Set(core.ActionDown)
		case 30:
			frame.Set(core.ActionLeft)
		case 31:
			frame.Set(core.ActionUp)
		}

		clock1.Advance(150 * time.Millisecond)
		clock2.Advance(150 * time.Millisecond)
		g1.Tick(frame)
		g2.Tick(frame.Clone())
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Head() != s2.Head() {
		t.Errorf("Head diverged: (%d, %d) vs (%d, %d)", s1.Head().X, s1.Head().Y, s2.Head().X, s2.Head().Y)
	}
	if s1.Score != s2.Score {
		t.Errorf("Score diverged: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Food != s2.Food {
		t.Errorf("Food diverged: (%d, %d) vs (%d, %d)", s1.Food.X, s1.Food.Y, s2.Food.X, s2.Food.Y)
	}
	if s1.Outcome != s2.Outcome {
		t.Errorf("Outcome diverged: %q vs %q", s1.Outcome, s2.Outcome)
	}
}
