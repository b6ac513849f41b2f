package core

// RuntimeConfig is the platform-level configuration handed to the TUI at
// startup: terminal dimensions, frame rate, and the RNG seed used for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render/input frames per second (default 60)
	Seed     int64 // RNG seed; 0 means derive from current time
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
