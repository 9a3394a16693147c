// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/backdrop/backend"
	"github.com/gogpu/backdrop/internal/image"
	"github.com/gogpu/backdrop/render"
)

func TestDeviceCreateTexture(t *testing.T) {
	d := NewDevice(nil, DeviceConfig{})
	desc := render.ColorTextureDescriptor("out", 64, 32, render.FilterBilinear)

	tex, err := d.CreateTexture(desc)
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	if tex.Width() != 64 || tex.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", tex.Width(), tex.Height())
	}
	if tex.Filter() != render.FilterBilinear {
		t.Errorf("Filter() = %v, want Bilinear", tex.Filter())
	}
	if tex.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", tex.Format())
	}

	stats := d.Stats()
	if stats.TextureCount != 1 {
		t.Errorf("TextureCount = %d, want 1", stats.TextureCount)
	}
	if stats.UsedBytes != 64*32*4 {
		t.Errorf("UsedBytes = %d, want %d", stats.UsedBytes, 64*32*4)
	}
	if stats.TotalBytes != DefaultMaxMemoryMB*1024*1024 {
		t.Errorf("TotalBytes = %d, want default budget", stats.TotalBytes)
	}

	tex.Destroy()
	tex.Destroy()
	if got := d.Stats(); got.TextureCount != 0 || got.UsedBytes != 0 {
		t.Errorf("after Destroy, stats = %v, want empty", got)
	}
	if !tex.(*Texture).Destroyed() {
		t.Error("Destroyed() = false after Destroy")
	}
	if tex.(*Texture).Image() != nil {
		t.Error("Image() after Destroy should be nil")
	}
}

func TestDeviceBudgetExceeded(t *testing.T) {
	d := NewDevice(render.NullDeviceHandle{}, DeviceConfig{MaxMemoryMB: 1})

	// 512x512 RGBA is exactly 1 MB.
	first, err := d.CreateTexture(render.ColorTextureDescriptor("a", 512, 512, render.FilterPoint))
	if err != nil {
		t.Fatalf("CreateTexture(1 MB) error = %v", err)
	}

	_, err = d.CreateTexture(render.ColorTextureDescriptor("b", 1, 1, render.FilterPoint))
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("CreateTexture over budget error = %v, want ErrBudgetExceeded", err)
	}
	if got := d.Stats().TextureCount; got != 1 {
		t.Errorf("TextureCount = %d, want 1 (failed allocation must not count)", got)
	}

	first.Destroy()
	if _, err := d.CreateTexture(render.ColorTextureDescriptor("c", 256, 256, render.FilterPoint)); err != nil {
		t.Errorf("CreateTexture after free error = %v", err)
	}
}

func TestDeviceCreateTextureInvalid(t *testing.T) {
	d := NewDevice(nil, DeviceConfig{})

	tests := []struct {
		name string
		desc render.TextureDescriptor
		want error
	}{
		{"zero width", render.TextureDescriptor{Width: 0, Height: 4}, image.ErrInvalidDimensions},
		{"negative height", render.TextureDescriptor{Width: 4, Height: -1}, image.ErrInvalidDimensions},
		{"depth format", render.TextureDescriptor{Width: 4, Height: 4, Format: gputypes.TextureFormatDepth24PlusStencil8}, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.CreateTexture(tt.desc); !errors.Is(err, tt.want) {
				t.Errorf("CreateTexture() error = %v, want %v", err, tt.want)
			}
		})
	}

	tex, err := d.CreateTexture(render.TextureDescriptor{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("CreateTexture(undefined format) error = %v", err)
	}
	if tex.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm default", tex.Format())
	}
}

func TestDeviceClose(t *testing.T) {
	d := NewDevice(nil, DeviceConfig{})
	tex, _ := d.CreateTexture(render.ColorTextureDescriptor("x", 8, 8, render.FilterPoint))

	d.Close()
	d.Close()
	if !tex.(*Texture).Destroyed() {
		t.Error("Close should destroy live textures")
	}
	if _, err := d.CreateTexture(render.ColorTextureDescriptor("y", 8, 8, render.FilterPoint)); !errors.Is(err, ErrDeviceClosed) {
		t.Errorf("CreateTexture after Close error = %v, want ErrDeviceClosed", err)
	}
}

func TestDeviceHandleDefault(t *testing.T) {
	d := NewDevice(nil, DeviceConfig{})
	if _, ok := d.Handle().(render.NullDeviceHandle); !ok {
		t.Errorf("Handle() = %T, want NullDeviceHandle", d.Handle())
	}
}

func TestMemoryStatsString(t *testing.T) {
	s := MemoryStats{TotalBytes: 2048, UsedBytes: 1024, TextureCount: 3, Utilization: 0.5}
	want := "Memory[50.0% used, 1/2 KB, 3 textures]"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBackendRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendSoftware) {
		t.Fatal("software backend not registered")
	}
	dev, err := backend.Open(backend.BackendSoftware, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := dev.(*Device); !ok {
		t.Errorf("Open() = %T, want *Device", dev)
	}
}
