package core

// Color is a 16-entry text-mode palette shared by the engine and its hosts.
// Hosts translate it to whatever their terminal library understands.
type Color uint8

// Palette entries, in classic text-mode order.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorPink
	ColorYellow
	ColorWhite
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorRed:
		return "red"
	case ColorMagenta:
		return "magenta"
	case ColorBrown:
		return "brown"
	case ColorLightGray:
		return "light_gray"
	case ColorDarkGray:
		return "dark_gray"
	case ColorLightBlue:
		return "light_blue"
	case ColorLightGreen:
		return "light_green"
	case ColorLightCyan:
		return "light_cyan"
	case ColorLightRed:
		return "light_red"
	case ColorPink:
		return "pink"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// ansiIndex maps palette order onto the 16 ANSI terminal colors, which put
// red and blue the other way round.
var ansiIndex = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// ANSI returns the terminal color index for c. Unknown values map to light
// gray.
func (c Color) ANSI() int {
	if int(c) >= len(ansiIndex) {
		return 7
	}
	return ansiIndex[c]
}
