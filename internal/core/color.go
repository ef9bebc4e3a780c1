package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for screen elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// TileColor is a palette index stored on the board.
type TileColor int8

// Palette entries. The board only ever holds indices below PaletteSize.
const (
	TileRed TileColor = iota
	TileYellow
	TileGreen
	TileBlue
	TilePurple
	PaletteSize = 5
)

// String returns the palette name.
func (c TileColor) String() string {
	switch c {
	case TileRed:
		return "red"
	case TileYellow:
		return "yellow"
	case TileGreen:
		return "green"
	case TileBlue:
		return "blue"
	case TilePurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Screen returns the terminal color used to draw a tile.
func (c TileColor) Screen() Color {
	switch c {
	case TileRed:
		return ColorRed
	case TileYellow:
		return ColorYellow
	case TileGreen:
		return ColorGreen
	case TileBlue:
		return ColorBlue
	case TilePurple:
		return ColorMagenta
	default:
		return ColorDefault
	}
}

// Highlight returns the brighter variant used for selected tiles.
func (c TileColor) Highlight() Color {
	switch c {
	case TileRed:
		return ColorBrightRed
	case TileYellow:
		return ColorBrightYellow
	case TileGreen:
		return ColorBrightGreen
	case TileBlue:
		return ColorBrightBlue
	case TilePurple:
		return ColorBrightMagenta
	default:
		return ColorBrightWhite
	}
}
