// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"errors"
	"image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// BytesPerPixel is the size of one RGBA8 texel.
const BytesPerPixel = 4

// Buf is an RGBA8 texel buffer laid out like image.RGBA (alpha-premultiplied).
//
// Buf is not safe for concurrent writes.
type Buf struct {
	img *image.RGBA
}

// NewBuf allocates a zeroed buffer of the given size.
func NewBuf(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buf{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// FromRaw wraps RGBA8 data without copying. A stride smaller than width*4 is
// treated as tightly packed.
func FromRaw(data []byte, width, height, stride int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*BytesPerPixel {
		stride = width * BytesPerPixel
	}
	if len(data) < stride*(height-1)+width*BytesPerPixel {
		return nil, ErrDataTooSmall
	}
	return &Buf{img: &image.RGBA{
		Pix:    data,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}}, nil
}

// Width returns the buffer width in texels.
func (b *Buf) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in texels.
func (b *Buf) Height() int { return b.img.Rect.Dy() }

// Stride returns the number of bytes per row.
func (b *Buf) Stride() int { return b.img.Stride }

// Data returns the raw texel bytes.
func (b *Buf) Data() []byte { return b.img.Pix }

// RGBA returns the buffer as an *image.RGBA sharing the same memory.
func (b *Buf) RGBA() *image.RGBA { return b.img }

// ByteSize returns the size of the texel data in bytes.
func (b *Buf) ByteSize() int { return len(b.img.Pix) }

// offset returns the byte offset of (x, y) or -1 when out of bounds.
func (b *Buf) offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return -1
	}
	return y*b.img.Stride + x*BytesPerPixel
}

// At returns the texel at (x, y). Out-of-bounds reads return transparent black.
func (b *Buf) At(x, y int) (r, g, bl, a uint8) {
	o := b.offset(x, y)
	if o < 0 {
		return 0, 0, 0, 0
	}
	p := b.img.Pix[o : o+4 : o+4]
	return p[0], p[1], p[2], p[3]
}

// Set writes the texel at (x, y). Out-of-bounds writes are ignored.
func (b *Buf) Set(x, y int, r, g, bl, a uint8) {
	o := b.offset(x, y)
	if o < 0 {
		return
	}
	p := b.img.Pix[o : o+4 : o+4]
	p[0], p[1], p[2], p[3] = r, g, bl, a
}

// Fill sets every texel to the given colour.
func (b *Buf) Fill(r, g, bl, a uint8) {
	w, h := b.Width(), b.Height()
	for y := range h {
		row := b.img.Pix[y*b.img.Stride : y*b.img.Stride+w*BytesPerPixel]
		for x := 0; x < len(row); x += BytesPerPixel {
			row[x], row[x+1], row[x+2], row[x+3] = r, g, bl, a
		}
	}
}

// Clear zeroes every texel.
func (b *Buf) Clear() {
	clear(b.img.Pix)
}

// CopyFrom copies src into b. Both buffers must have the same size; when they
// differ only the overlapping region is copied.
func (b *Buf) CopyFrom(src *Buf) {
	w := min(b.Width(), src.Width()) * BytesPerPixel
	h := min(b.Height(), src.Height())
	for y := range h {
		copy(b.img.Pix[y*b.img.Stride:y*b.img.Stride+w], src.img.Pix[y*src.img.Stride:y*src.img.Stride+w])
	}
}
