package core

import "strings"

// Color is the color of a block.
type Color uint8

const (
	ColorBlue Color = iota
	ColorRed
	ColorGreen
	ColorYellow
)

var allColors = [...]Color{ColorBlue, ColorRed, ColorGreen, ColorYellow}

// AllColors returns every block color.
func AllColors() []Color {
	return allColors[:]
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor converts a string to a Color.
// Returns ColorBlue and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "blue", "b":
		return ColorBlue, true
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	default:
		return ColorBlue, false
	}
}

// RandColor draws a color uniformly from the shared source.
func RandColor() Color {
	return RandColorFrom(Shared)
}

// RandColorFrom draws a color uniformly from r.
func RandColorFrom(r Rand) Color {
	return allColors[r.Intn(len(allColors))]
}
