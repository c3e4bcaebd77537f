// SPDX-License-Identifier: MIT

package projectile

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvltrace/canvas"
	"github.com/katalvlaran/lvltrace/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart geometry for Plot.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
	plotFormat = "png"
)

// Render paints every point of path onto c with col. World y points up,
// canvas rows grow down, so (x, y) lands on pixel (int(x), h−1−int(y)).
// Coordinates truncate toward zero and negative ones saturate to 0, which
// puts the landing point (y ≤ 0) on the bottom row. Points right of or
// above the canvas are skipped and counted.
func Render(c *canvas.Canvas, path []geom.Point, col canvas.Color) (skipped int) {
	bottom := c.Height() - 1
	for _, p := range path {
		if err := c.TryWritePixel(pixel(p.X), bottom-pixel(p.Y), col); err != nil {
			skipped++
		}
	}

	return skipped
}

// pixel truncates a world coordinate to a pixel index, saturating at 0.
func pixel(v float64) int {
	if v <= 0 {
		return 0
	}

	return int(v)
}

// Plot writes a PNG line chart of path (x against y) to w.
//
// Errors: ErrEmptyPath, or errors from the plotting backend.
func Plot(path []geom.Point, w io.Writer) error {
	if len(path) == 0 {
		return fmt.Errorf("Plot: %w", ErrEmptyPath)
	}

	pts := make(plotter.XYs, len(path))
	for i, p := range path {
		pts[i].X = p.X
		pts[i].Y = p.Y
	}

	pl := plot.New()
	pl.Title.Text = "Projectile trajectory"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}
	pl.Add(plotter.NewGrid(), line)

	wt, err := pl.WriterTo(plotWidth, plotHeight, plotFormat)
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	return nil
}
