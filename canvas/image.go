// SPDX-License-Identifier: MIT

// Package canvas - image.Image adapter and binary encoders.
//
// The adapter exposes a Canvas to the standard image ecosystem: PNG through
// image/png, BMP and TIFF through golang.org/x/image. Pixel values are
// clamped exactly as for PPM, at 16-bit precision.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects an output encoding.
type Format int

// Supported formats.
const (
	FormatPPM Format = iota
	FormatPNG
	FormatBMP
	FormatTIFF
)

var formatNames = [...]string{
	FormatPPM:  "ppm",
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the canonical lowercase name ("ppm", "png", ...).
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// Ext returns the file extension for f, dot included.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat maps a format name (case-insensitive) to a Format.
// "tif" is accepted as an alias of "tiff".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", name, ErrUnsupportedFormat)
}

// FormatFromExt maps a file name's extension to a Format.
func FormatFromExt(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, fmt.Errorf("FormatFromExt(%q): %w", path, ErrUnsupportedFormat)
	}

	return f, nil
}

// canvasImage adapts *Canvas to image.Image without copying pixels.
type canvasImage struct{ c *Canvas }

var _ image.Image = canvasImage{}

func (m canvasImage) ColorModel() color.Model { return color.RGBA64Model }

func (m canvasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.c.width, m.c.height)
}

// At returns black outside the bounds, as image.Image requires.
func (m canvasImage) At(x, y int) color.Color {
	if !m.c.Contains(x, y) {
		return Black
	}

	return m.c.pixels[y*m.c.width+x]
}

// Image returns a read-only image.Image view of c. Later writes to c are
// visible through the view.
func (c *Canvas) Image() image.Image { return canvasImage{c: c} }

// Encode writes c to w in format f. PPM honors opts; the binary formats
// ignore them.
//
// Errors: ErrUnsupportedFormat, or the encoder's error.
func (c *Canvas) Encode(w io.Writer, f Format, opts ...Option) error {
	var err error
	switch f {
	case FormatPPM:
		err = c.WritePPM(w, opts...)
	case FormatPNG:
		err = png.Encode(w, c.Image())
	case FormatBMP:
		err = bmp.Encode(w, c.Image())
	case FormatTIFF:
		err = tiff.Encode(w, c.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("Canvas.Encode(%v): %w", f, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("Canvas.Encode(%v): %w", f, err)
	}

	return nil
}
