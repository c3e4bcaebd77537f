// SPDX-License-Identifier: MIT

package canvas

import "fmt"

const (
	ctxPixelAt    = "PixelAt"
	ctxWritePixel = "WritePixel"
)

// Canvas is a width×height grid of colors stored row-major
// (index = y*width + x). A new canvas is black.
type Canvas struct {
	width, height int
	pixels        []Color // len == width*height
}

// New allocates a black width×height canvas.
//
// Errors: ErrBadShape when width or height is not positive.
// Complexity: O(width*height).
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrBadShape)
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Contains reports whether (x, y) addresses a pixel of c.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) boundsErr(method string, x, y int) error {
	return fmt.Errorf("Canvas.%s(%d,%d) on %dx%d: %w", method, x, y, c.width, c.height, ErrOutOfBounds)
}

// PixelAt returns the color at (x, y).
// Out-of-bounds coordinates are fatal: PixelAt panics with an error
// wrapping ErrOutOfBounds.
func (c *Canvas) PixelAt(x, y int) Color {
	if !c.Contains(x, y) {
		panic(c.boundsErr(ctxPixelAt, x, y))
	}

	return c.pixels[y*c.width+x]
}

// WritePixel sets the color at (x, y). Same precondition as PixelAt.
func (c *Canvas) WritePixel(x, y int, col Color) {
	if !c.Contains(x, y) {
		panic(c.boundsErr(ctxWritePixel, x, y))
	}
	c.pixels[y*c.width+x] = col
}

// TryWritePixel is WritePixel for callers that clip: it returns an error
// wrapping ErrOutOfBounds instead of panicking.
func (c *Canvas) TryWritePixel(x, y int, col Color) error {
	if !c.Contains(x, y) {
		return c.boundsErr(ctxWritePixel, x, y)
	}
	c.pixels[y*c.width+x] = col

	return nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}
