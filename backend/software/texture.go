// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	stdimage "image"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/backdrop/internal/image"
	"github.com/gogpu/backdrop/render"
)

// Texture is a CPU texture allocated by a Device.
type Texture struct {
	buf       *image.Buf
	desc      render.TextureDescriptor
	device    *Device
	size      uint64
	destroyed atomic.Bool
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.desc.Width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.desc.Height }

// Format returns the texture pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.desc.Format }

// Filter returns the sampling filter of the texture.
func (t *Texture) Filter() render.FilterMode { return t.desc.Filter }

// Label returns the debug label.
func (t *Texture) Label() string { return t.desc.Label }

// Descriptor returns the descriptor the texture was created with.
func (t *Texture) Descriptor() render.TextureDescriptor { return t.desc }

// Image returns the texture contents as premultiplied RGBA, or nil after
// Destroy.
func (t *Texture) Image() *stdimage.RGBA {
	if t.destroyed.Load() {
		return nil
	}
	return t.buf.RGBA()
}

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool { return t.destroyed.Load() }

// Destroy returns the texture memory to the device. Safe to call more than
// once.
func (t *Texture) Destroy() {
	if t.destroyed.Swap(true) {
		return
	}
	if t.device != nil {
		t.device.release(t)
	}
	slogger().Debug("software: texture destroyed", "label", t.desc.Label)
}

// Ensure Texture implements render.Texture.
var _ render.Texture = (*Texture)(nil)
