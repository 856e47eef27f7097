package core

// Color is the foreground color of a screen cell.
type Color uint8

// Tile and HUD colors, roughly ordered from low to high tile values.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorOrange
	ColorBrightRed
	ColorRed
	ColorBrightYellow
	ColorBrightGreen
	ColorGreen
	ColorBrightCyan
	ColorCyan
	ColorBrightMagenta
	ColorMagenta
	ColorGray
	colorCount
)

// ansiCodes is the 256-color palette index for each Color.
var ansiCodes = [colorCount]string{
	ColorWhite:         "7",
	ColorBrightWhite:   "15",
	ColorYellow:        "3",
	ColorOrange:        "208",
	ColorBrightRed:     "9",
	ColorRed:           "1",
	ColorBrightYellow:  "11",
	ColorBrightGreen:   "10",
	ColorGreen:         "2",
	ColorBrightCyan:    "14",
	ColorCyan:          "6",
	ColorBrightMagenta: "13",
	ColorMagenta:       "5",
	ColorGray:          "245",
}

// ANSI returns the terminal palette index for c.
// It is empty for ColorDefault and unknown colors.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}
