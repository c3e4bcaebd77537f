// SPDX-License-Identifier: MIT

// Package canvas - plain PPM (P3) serialization.
//
// Layout:
//   - header "P3\n<width> <height>\n<maxval>\n";
//   - channel values as decimal integers separated by single spaces,
//     row-major, three per pixel;
//   - a value that would push the line past the budget (current length +
//     separator + value > lineWidth) starts a new line instead;
//   - every canvas row ends with a newline, so the file does too.
package canvas

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const ppmMagic = "P3"

// ToPPM renders c as a P3 document.
// Complexity: O(width*height).
func (c *Canvas) ToPPM(opts ...Option) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = c.WritePPM(&b, opts...)

	return b.String()
}

// WritePPM streams c as a P3 document to w.
//
// Errors: the first write error from w.
// Complexity: O(width*height).
func (c *Canvas) WritePPM(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)

	bw.WriteString(ppmMagic)
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(c.width))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(c.height))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(o.maxValue))
	bw.WriteByte('\n')

	var (
		x, y, k int
		lineLen int
		tok     string
		base    int
	)
	for y = 0; y < c.height; y++ {
		base = y * c.width
		lineLen = 0
		for x = 0; x < c.width; x++ {
			q := c.pixels[base+x].Quantize(o.maxValue)
			for k = 0; k < len(q); k++ {
				tok = strconv.Itoa(q[k])
				switch {
				case lineLen == 0:
					// first value on the line, no separator
				case lineLen+1+len(tok) > o.lineWidth:
					bw.WriteByte('\n')
					lineLen = 0
				default:
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(tok)
				lineLen += len(tok)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
