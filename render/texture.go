// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Texture is a GPU image. The creator owns it; Destroy must be safe to call
// more than once.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// Filter returns the sampling filter of the texture.
	Filter() FilterMode

	// Destroy releases GPU resources associated with this texture.
	Destroy()
}

// FilterMode selects how a texture is sampled.
type FilterMode uint8

const (
	// FilterPoint samples the nearest texel.
	FilterPoint FilterMode = iota

	// FilterBilinear interpolates between the four nearest texels.
	FilterBilinear

	// FilterTrilinear additionally interpolates between mip levels. On a
	// texture without mipmaps it samples like FilterBilinear.
	FilterTrilinear
)

// String returns the filter name.
func (f FilterMode) String() string {
	switch f {
	case FilterPoint:
		return "Point"
	case FilterBilinear:
		return "Bilinear"
	case FilterTrilinear:
		return "Trilinear"
	default:
		return fmt.Sprintf("FilterMode(%d)", f)
	}
}

// ParseFilterMode returns the filter whose String is s.
func ParseFilterMode(s string) (FilterMode, error) {
	for _, f := range []FilterMode{FilterPoint, FilterBilinear, FilterTrilinear} {
		if f.String() == s {
			return f, nil
		}
	}
	return FilterBilinear, fmt.Errorf("render: unknown filter mode %q", s)
}

// SamplerFilters returns the WebGPU mag, min and mipmap filters for f.
func (f FilterMode) SamplerFilters() (mag, minf, mip gputypes.FilterMode) {
	switch f {
	case FilterBilinear:
		return gputypes.FilterModeLinear, gputypes.FilterModeLinear, gputypes.FilterModeNearest
	case FilterTrilinear:
		return gputypes.FilterModeLinear, gputypes.FilterModeLinear, gputypes.FilterModeLinear
	default:
		return gputypes.FilterModeNearest, gputypes.FilterModeNearest, gputypes.FilterModeNearest
	}
}

// WrapMode selects texture addressing outside [0,1].
type WrapMode uint8

const (
	// WrapClamp clamps coordinates to the edge texel.
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat
)

// AddressMode converts to gputypes.AddressMode.
func (w WrapMode) AddressMode() gputypes.AddressMode {
	if w == WrapRepeat {
		return gputypes.AddressModeRepeat
	}
	return gputypes.AddressModeClampToEdge
}
