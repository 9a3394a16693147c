// Package filter is the CPU reference of the captured-image effect shader.
//
// It evaluates the same math as the WGSL effect module so that the software
// backend produces the image a GPU would:
//   - Gaussian blur taps (3x3, 5x5 or 7x7), evaluated separably
//   - Tone transforms (grayscale, sepia, negative, pixelation)
//   - Effect colour combination (multiply, fill, add, subtract)
//
// Pixels are read as normalised floats from premultiplied 8-bit buffers and
// written back with round-to-nearest.
package filter
