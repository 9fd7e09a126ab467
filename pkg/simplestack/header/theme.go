package header

import "image/color"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Theme defines the appearance of a custom header.
// Themes are plain values handed to renderers; there is no global registry.
type Theme struct {
	BackgroundColor color.RGBA // Header container background
	TitleColor      color.RGBA // Title text and back button glyph
	TitleFontSize   int        // Title size in points
	TitleAlign      TextAlign  // Title alignment within the header
	Padding         Padding    // Container padding
	BackIconSize    int        // Back button glyph size in pixels
}

// DefaultTheme returns the custom header look: green bar, black centered title.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x008000),
		TitleColor:      HexToColor(0x000000),
		TitleFontSize:   18,
		TitleAlign:      TextAlignCenter,
		Padding:         Padding{Top: 44, Right: 10, Left: 10},
		BackIconSize:    24,
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ColorToHex converts a color to its 0xRRGGBB value, dropping alpha.
func ColorToHex(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
