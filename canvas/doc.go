// Package canvas provides an RGB color type and a pixel canvas that
// serializes to the plain-text PPM (P3) format.
//
// The canvas package provides:
//
//   - Color with channel-wise add/sub, Hadamard product and scaling, and
//     clamped integer quantization for output.
//   - Canvas, a width×height grid of Color (row-major, default black) with
//     fail-fast pixel access.
//   - ToPPM/WritePPM with 70-column line wrapping and configurable maximum
//     channel value.
//   - An image.Image adapter and Encode for PNG, BMP and TIFF output.
//
// Colors are unbounded (channels may exceed [0,1] or go negative) until
// they are clamped at serialization time.
package canvas
