// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/katalvlaran/lvltrace/approx"
	"golang.org/x/image/colornames"
)

// DefaultMaxColorValue is the channel ceiling used by IntegerData and PPM.
const DefaultMaxColorValue = 255

// Color is an RGB triple. Channels are unbounded until quantized.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// Compile-time check that Color can be handed to image encoders.
var _ color.Color = Color{}

// NewColor returns the color (r, g, b).
func NewColor(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Named looks up name (case-insensitive) in the SVG 1.1 palette, e.g.
// "white", "orangered".
func Named(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("Named(%q): %w", name, ErrUnknownColor)
	}

	return Color{
		R: float64(c.R) / DefaultMaxColorValue,
		G: float64(c.G) / DefaultMaxColorValue,
		B: float64(c.B) / DefaultMaxColorValue,
	}, nil
}

// Add returns c + o channel-wise.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns c − o channel-wise.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Hadamard returns the channel-wise (Schur) product c ⊙ o.
func (c Color) Hadamard(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Scale returns s·c.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Equal reports approximate equality on every channel.
func (c Color) Equal(o Color) bool {
	return approx.Equal(c.R, o.R) && approx.Equal(c.G, o.G) && approx.Equal(c.B, o.B)
}

// IntegerData quantizes the channels to [0, 255].
func (c Color) IntegerData() [3]int {
	return c.Quantize(DefaultMaxColorValue)
}

// Quantize clamps every channel to [0, 1], scales by maxValue and rounds half
// away from zero: 1.1 → maxValue, -1 → 0, 0.5 → 128 for 255.
func (c Color) Quantize(maxValue int) [3]int {
	return [3]int{
		quantize(c.R, maxValue),
		quantize(c.G, maxValue),
		quantize(c.B, maxValue),
	}
}

func quantize(v float64, maxValue int) int {
	switch {
	case v > 1 || math.IsInf(v, 1):
		return maxValue
	case v < 0 || math.IsNaN(v):
		return 0
	}

	return int(math.Round(v * float64(maxValue)))
}

// RGBA implements color.Color with 16-bit channels and opaque alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	q := c.Quantize(math.MaxUint16)

	return uint32(q[0]), uint32(q[1]), uint32(q[2]), math.MaxUint16
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}
