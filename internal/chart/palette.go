package chart

import (
	"fmt"
	"strconv"
)

// RGBA is a colour with 8-bit channels and a fractional alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String renders the colour in CSS rgba() notation.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// MarshalText lets colours appear as plain strings in JSON.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ColorScheme is the styling of one bar: solid fill, border and the two
// gradient stops running top to bottom.
type ColorScheme struct {
	Fill     RGBA
	Border   RGBA
	Gradient [2]RGBA
}

// Palette is applied cyclically by bar index.
var Palette = [6]ColorScheme{
	{ // blue
		Fill:     RGBA{59, 130, 246, 0.8},
		Border:   RGBA{59, 130, 246, 1},
		Gradient: [2]RGBA{{59, 130, 246, 0.9}, {37, 99, 235, 0.9}},
	},
	{ // emerald
		Fill:     RGBA{16, 185, 129, 0.8},
		Border:   RGBA{16, 185, 129, 1},
		Gradient: [2]RGBA{{16, 185, 129, 0.9}, {5, 150, 105, 0.9}},
	},
	{ // violet
		Fill:     RGBA{139, 92, 246, 0.8},
		Border:   RGBA{139, 92, 246, 1},
		Gradient: [2]RGBA{{139, 92, 246, 0.9}, {124, 58, 237, 0.9}},
	},
	{ // pink
		Fill:     RGBA{236, 72, 153, 0.8},
		Border:   RGBA{236, 72, 153, 1},
		Gradient: [2]RGBA{{236, 72, 153, 0.9}, {219, 39, 119, 0.9}},
	},
	{ // orange
		Fill:     RGBA{251, 146, 60, 0.8},
		Border:   RGBA{251, 146, 60, 1},
		Gradient: [2]RGBA{{251, 146, 60, 0.9}, {249, 115, 22, 0.9}},
	},
	{ // green
		Fill:     RGBA{34, 197, 94, 0.8},
		Border:   RGBA{34, 197, 94, 1},
		Gradient: [2]RGBA{{34, 197, 94, 0.9}, {22, 163, 74, 0.9}},
	},
}

// SchemeFor returns the palette entry for bar index i.
func SchemeFor(i int) ColorScheme {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}
