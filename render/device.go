// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Backends take the handle from the host (e.g. gogpu.App) rather than
// creating their own device. It is an alias for gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// Device allocates GPU textures.
//
// CreateTexture returns an error when the allocation cannot be satisfied,
// for example because a memory budget is exhausted. Callers own the returned
// texture and must Destroy it.
type Device interface {
	CreateTexture(desc TextureDescriptor) (Texture, error)
}

// TextureDescriptor describes parameters for creating a texture.
// This mirrors the WebGPU GPUTextureDescriptor plus sampler state.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width int

	// Height is the texture height in pixels.
	Height int

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// DepthBits is the depth buffer precision; 0 means no depth buffer.
	DepthBits int

	// MipLevelCount is the number of mipmap levels. Use 1 for no mipmaps.
	MipLevelCount uint32

	// Filter is the sampling filter used when the texture is read.
	Filter FilterMode

	// Wrap is the addressing mode used when the texture is read.
	Wrap WrapMode

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be used in a texture binding.
	TextureUsageTextureBinding

	// TextureUsageRenderAttachment allows the texture to be used as a render attachment.
	TextureUsageRenderAttachment
)

// Has reports whether all bits of flag are set.
func (u TextureUsage) Has(flag TextureUsage) bool { return u&flag == flag }

// ToGPU converts to gputypes.TextureUsage.
func (u TextureUsage) ToGPU() gputypes.TextureUsage {
	var out gputypes.TextureUsage
	if u.Has(TextureUsageCopySrc) {
		out |= gputypes.TextureUsageCopySrc
	}
	if u.Has(TextureUsageCopyDst) {
		out |= gputypes.TextureUsageCopyDst
	}
	if u.Has(TextureUsageTextureBinding) {
		out |= gputypes.TextureUsageTextureBinding
	}
	if u.Has(TextureUsageRenderAttachment) {
		out |= gputypes.TextureUsageRenderAttachment
	}
	return out
}

// ColorTextureDescriptor returns the descriptor of a captured image buffer:
// 4-channel 8-bit colour, no depth, no mipmaps, clamped addressing.
func ColorTextureDescriptor(label string, width, height int, filter FilterMode) TextureDescriptor {
	return TextureDescriptor{
		Label:         label,
		Width:         width,
		Height:        height,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		DepthBits:     0,
		MipLevelCount: 1,
		Filter:        filter,
		Wrap:          WrapClamp,
		Usage: TextureUsageCopySrc | TextureUsageCopyDst |
			TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
