package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic board generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status the platform needs after every step.
type GameState struct {
	Score     int  // Cumulative run score
	HighScore int  // Best score known to the game
	Stage     int  // Current stage (1-indexed)
	GameOver  bool // Run ended in defeat
	Won       bool // Run ended after the final stage
	Paused    bool // Paused, stage clear overlay or window too small
}

// Finished reports whether the run reached a terminal phase.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step after each simulation tick.
// Contains the updated state and the discrete events raised during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
