package core

// Color identifies a foreground color for a screen cell. The platform maps
// these to terminal styles; the buffer itself stays terminal-agnostic.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightRed
	ColorBrightWhite
)
