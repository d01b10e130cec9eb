package core

// RuntimeConfig contains configuration passed to games at initialization.
// The terminal is measured in cells; the game simulates in pixels, and every
// cell covers CellW x CellH pixels of the viewport.
type RuntimeConfig struct {
	Cols     int   // Terminal width in cells
	Rows     int   // Terminal height in cells
	CellW    int   // Viewport pixels per cell horizontally
	CellH    int   // Viewport pixels per cell vertically
	TickRate int   // Frames per second requested from the presenter
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:     80,
		Rows:     24,
		CellW:    8,
		CellH:    16,
		TickRate: 60,
		Seed:     0,
	}
}

// ViewportW returns the viewport width in pixels.
func (c RuntimeConfig) ViewportW() float64 {
	return float64(c.Cols * c.CellW)
}

// ViewportH returns the viewport height in pixels.
func (c RuntimeConfig) ViewportH() float64 {
	return float64(c.Rows * c.CellH)
}

// GameState is the status a game reports to the platform after each frame.
type GameState struct {
	Phase     string  // Name of the current game phase (e.g. "playing")
	Score     int     // Score of the current run
	HighScore int     // Best score known to the game
	Shots     int     // Projectiles fired in the current run
	Hits      int     // Obstacles destroyed in the current run
	Elapsed   float64 // Seconds spent playing the current run
	GameOver  bool    // Whether the run has ended
	Paused    bool    // Whether the game is paused
	Exit      bool    // Whether the game asked the process to exit
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
