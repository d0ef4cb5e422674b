package core

// Color is a logical foreground colour for a screen cell. The platform
// layer maps it to a terminal colour; the board colours come from the
// user's style config through Palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorAlive
	ColorDead
	ColorGrid
	ColorCursor
	ColorHUD
	ColorDim
	ColorWarn
)

// Palette holds terminal colour strings (ANSI codes or #rrggbb) for the
// board colours.
type Palette struct {
	Alive string
	Dead  string
	Grid  string
}
