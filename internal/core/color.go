package core

// Color is the foreground color of a screen cell. The front end decides how
// each one maps to the terminal palette.
type Color uint8

const (
	ColorDefault      Color = iota // Terminal foreground; background and plain text
	ColorGreen                     // Top obstacles
	ColorBrightGreen               // Bottom obstacles
	ColorBrightYellow              // Player, banner title
	ColorBrightWhite               // Score
	ColorBrightRed                 // Game over
	ColorCyan                      // Banner frame
)
