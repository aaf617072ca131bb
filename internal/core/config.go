package core

// RuntimeConfig contains platform settings passed to the simulation at startup.
type RuntimeConfig struct {
	ScreenW  int   // Terminal or window width (cells or pixels)
	ScreenH  int   // Terminal or window height
	TickRate int   // Frames per second requested from the frame clock (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}
