package core

// Color represents a foreground color for a screen cell.
// Platforms map these onto ANSI 256-color codes or RGB values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// cyclePalette is walked by color-changing words, one step every few ticks.
var cyclePalette = [...]Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}

// CycleColor returns the palette color for the given animation step.
func CycleColor(step uint64) Color {
	return cyclePalette[step%uint64(len(cyclePalette))]
}
