// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestColorTextureDescriptor(t *testing.T) {
	d := ColorTextureDescriptor("out", 1024, 512, FilterTrilinear)

	if d.Label != "out" {
		t.Errorf("Label = %q, want %q", d.Label, "out")
	}
	if d.Width != 1024 || d.Height != 512 {
		t.Errorf("size = %dx%d, want 1024x512", d.Width, d.Height)
	}
	if d.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", d.Format)
	}
	if d.DepthBits != 0 {
		t.Errorf("DepthBits = %d, want 0", d.DepthBits)
	}
	if d.MipLevelCount != 1 {
		t.Errorf("MipLevelCount = %d, want 1", d.MipLevelCount)
	}
	if d.Wrap != WrapClamp {
		t.Errorf("Wrap = %v, want WrapClamp", d.Wrap)
	}
	if d.Filter != FilterTrilinear {
		t.Errorf("Filter = %v, want Trilinear", d.Filter)
	}
	if !d.Usage.Has(TextureUsageTextureBinding | TextureUsageRenderAttachment) {
		t.Errorf("Usage = %b, want binding and render attachment", d.Usage)
	}
}

func TestTextureUsageToGPU(t *testing.T) {
	tests := []struct {
		name  string
		usage TextureUsage
		want  gputypes.TextureUsage
	}{
		{"none", 0, 0},
		{"copy src", TextureUsageCopySrc, gputypes.TextureUsageCopySrc},
		{"copy dst", TextureUsageCopyDst, gputypes.TextureUsageCopyDst},
		{"binding+attachment", TextureUsageTextureBinding | TextureUsageRenderAttachment,
			gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usage.ToGPU(); got != tt.want {
				t.Errorf("ToGPU() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterModeString(t *testing.T) {
	tests := []struct {
		f    FilterMode
		want string
	}{
		{FilterPoint, "Point"},
		{FilterBilinear, "Bilinear"},
		{FilterTrilinear, "Trilinear"},
		{FilterMode(9), "FilterMode(9)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseFilterMode(t *testing.T) {
	for _, f := range []FilterMode{FilterPoint, FilterBilinear, FilterTrilinear} {
		got, err := ParseFilterMode(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFilterMode(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseFilterMode("Anisotropic"); err == nil {
		t.Error("ParseFilterMode(Anisotropic) error = nil")
	}
}

func TestFilterModeSamplerFilters(t *testing.T) {
	mag, minf, mip := FilterPoint.SamplerFilters()
	if mag != gputypes.FilterModeNearest || minf != gputypes.FilterModeNearest || mip != gputypes.FilterModeNearest {
		t.Errorf("Point.SamplerFilters() = %v,%v,%v, want all nearest", mag, minf, mip)
	}
	mag, minf, mip = FilterBilinear.SamplerFilters()
	if mag != gputypes.FilterModeLinear || minf != gputypes.FilterModeLinear || mip != gputypes.FilterModeNearest {
		t.Errorf("Bilinear.SamplerFilters() = %v,%v,%v, want linear,linear,nearest", mag, minf, mip)
	}
	_, _, mip = FilterTrilinear.SamplerFilters()
	if mip != gputypes.FilterModeLinear {
		t.Errorf("Trilinear mip filter = %v, want linear", mip)
	}
}

func TestWrapModeAddressMode(t *testing.T) {
	if got := WrapClamp.AddressMode(); got != gputypes.AddressModeClampToEdge {
		t.Errorf("WrapClamp.AddressMode() = %v, want ClampToEdge", got)
	}
	if got := WrapRepeat.AddressMode(); got != gputypes.AddressModeRepeat {
		t.Errorf("WrapRepeat.AddressMode() = %v, want Repeat", got)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}
	if h.Device() != nil {
		t.Error("Device() should be nil")
	}
	if h.Queue() != nil {
		t.Error("Queue() should be nil")
	}
	if h.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", h.SurfaceFormat())
	}
}

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(4, 3)

	if target.Width() != 4 || target.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", target.Width(), target.Height())
	}
	if target.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", target.Stride())
	}
	if len(target.Pixels()) != 4*3*4 {
		t.Errorf("len(Pixels()) = %d, want 48", len(target.Pixels()))
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}

	target.Clear(color.NRGBA{R: 255, A: 128})
	got := target.Image().RGBAAt(2, 1)
	want := color.RGBA{R: 128, A: 128}
	if got != want {
		t.Errorf("after Clear, pixel = %v, want %v (premultiplied)", got, want)
	}

	target.Resize(8, 2)
	if target.Width() != 8 || target.Height() != 2 {
		t.Errorf("after Resize, size = %dx%d, want 8x2", target.Width(), target.Height())
	}
	if target.Pixels()[3] != 0 {
		t.Error("Resize should not preserve contents")
	}
}

func TestCameraEventString(t *testing.T) {
	tests := []struct {
		e    CameraEvent
		want string
	}{
		{EventAfterOpaque, "AfterOpaque"},
		{EventAfterTransparent, "AfterTransparent"},
		{EventBeforeOverlay, "BeforeOverlay"},
		{EventAfterEverything, "AfterEverything"},
		{CameraEvent(42), "CameraEvent(42)"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if CameraEvent(42).Valid() {
		t.Error("CameraEvent(42).Valid() = true, want false")
	}
	if !EventBeforeOverlay.Valid() {
		t.Error("EventBeforeOverlay.Valid() = false, want true")
	}
}
