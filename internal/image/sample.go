// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import "math"

// Texel is a colour in normalised [0,1] float components.
type Texel [4]float32

// SampleNearest returns the texel containing normalised coordinate (u, v).
// Coordinates outside [0,1] clamp to the edge.
func SampleNearest(b *Buf, u, v float32) Texel {
	w, h := b.Width(), b.Height()
	x := clamp(int(math.Floor(float64(u)*float64(w))), 0, w-1)
	y := clamp(int(math.Floor(float64(v)*float64(h))), 0, h-1)
	return texelAt(b, x, y)
}

// SampleBilinear interpolates the four texels around (u, v) with clamp-to-edge
// addressing.
func SampleBilinear(b *Buf, u, v float32) Texel {
	w, h := b.Width(), b.Height()

	fx := float64(u)*float64(w) - 0.5
	fy := float64(v)*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	x1 := clamp(x0+1, 0, w-1)
	y1 := clamp(y0+1, 0, h-1)
	x0 = clamp(x0, 0, w-1)
	y0 = clamp(y0, 0, h-1)

	c00 := texelAt(b, x0, y0)
	c10 := texelAt(b, x1, y0)
	c01 := texelAt(b, x0, y1)
	c11 := texelAt(b, x1, y1)

	var out Texel
	for i := range out {
		top := c00[i] + (c10[i]-c00[i])*tx
		bottom := c01[i] + (c11[i]-c01[i])*tx
		out[i] = top + (bottom-top)*ty
	}
	return out
}

// Store writes a normalised texel to (x, y), clamping each channel.
func Store(b *Buf, x, y int, c Texel) {
	b.Set(x, y, toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3]))
}

func texelAt(b *Buf, x, y int) Texel {
	r, g, bl, a := b.At(x, y)
	const inv = 1.0 / 255
	return Texel{float32(r) * inv, float32(g) * inv, float32(bl) * inv, float32(a) * inv}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
