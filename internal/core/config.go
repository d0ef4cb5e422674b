package core

// RuntimeConfig is passed to game modes when they start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game mode reports to the platform.
type GameState struct {
	Generation int  // Generations computed since the last reset
	Population int  // Live cells on the current board
	Peak       int  // Highest population seen since the last reset
	BoardW     int  // Board width in cells
	BoardH     int  // Board height in cells
	Paused     bool // Whether the simulation is paused
	Extinct    bool // Whether every cell has died after having been alive
}

// StepResult is returned by Game.Step after each platform tick.
type StepResult struct {
	State GameState
	Err   error // Last engine error surfaced to the HUD, nil when none
}
