package core

// Color represents a foreground color for a screen cell.
// Adapters map it to ANSI 256-color codes or RGBA.
type Color uint8

// Palette used by the arena renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightCyan
	ColorBrightYellow
	ColorNeonPink
	ColorGrid
	ColorGray
)
