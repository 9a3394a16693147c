// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

func TestLayeredPixmapTargetLayers(t *testing.T) {
	scene := NewLayeredPixmapTarget(4, 4)

	for _, z := range []int{10, -1, 3} {
		if _, err := scene.CreateLayer(z); err != nil {
			t.Fatalf("CreateLayer(%d) error = %v", z, err)
		}
	}
	if _, err := scene.CreateLayer(3); err == nil {
		t.Error("CreateLayer(3) twice should fail")
	}

	if got, want := scene.Layers(), []int{-1, 3, 10}; !slices.Equal(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}

	if err := scene.RemoveLayer(3); err != nil {
		t.Fatalf("RemoveLayer(3) error = %v", err)
	}
	if err := scene.RemoveLayer(3); err == nil {
		t.Error("RemoveLayer(3) twice should fail")
	}
	if scene.Layer(3) != nil {
		t.Error("Layer(3) after removal should be nil")
	}
	if got, want := scene.Layers(), []int{-1, 10}; !slices.Equal(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
}

func TestLayeredPixmapTargetCompositeRange(t *testing.T) {
	scene := NewLayeredPixmapTarget(2, 2)
	scene.Clear(color.RGBA{R: 255, A: 255})

	scene.CreateLayer(1)
	scene.ClearLayer(1, color.RGBA{G: 255, A: 255})
	scene.CreateLayer(100)
	scene.ClearLayer(100, color.RGBA{B: 255, A: 255})

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))

	scene.CompositeBase(dst)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("CompositeBase pixel = %v, want red", got)
	}

	scene.CompositeRange(dst, 0, 100)
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("CompositeRange(0,100) pixel = %v, want green", got)
	}

	scene.CompositeRange(dst, 100, 200)
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("CompositeRange(100,200) pixel = %v, want blue", got)
	}
}

func TestLayeredPixmapTargetHiddenLayer(t *testing.T) {
	scene := NewLayeredPixmapTarget(1, 1)
	scene.Clear(color.RGBA{R: 255, A: 255})
	scene.CreateLayer(5)
	scene.ClearLayer(5, color.RGBA{B: 255, A: 255})
	scene.SetLayerVisible(5, false)

	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	scene.Composite(dst)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Composite with hidden layer = %v, want red", got)
	}

	scene.SetLayerVisible(5, true)
	scene.Composite(dst)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("Composite with visible layer = %v, want blue", got)
	}
}

func TestLayeredPixmapTargetTranslucentOver(t *testing.T) {
	scene := NewLayeredPixmapTarget(1, 1)
	scene.Clear(color.RGBA{R: 200, A: 255})
	scene.CreateLayer(1)
	// Premultiplied half-transparent black.
	scene.ClearLayer(1, color.RGBA{A: 128})

	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	scene.Composite(dst)
	got := dst.RGBAAt(0, 0)
	if got.R < 98 || got.R > 102 || got.A != 255 {
		t.Errorf("source-over result = %v, want R~100 A=255", got)
	}
}

func TestLayeredPixmapTargetClearLayerMissing(t *testing.T) {
	scene := NewLayeredPixmapTarget(1, 1)
	if err := scene.ClearLayer(7, color.Black); err == nil {
		t.Error("ClearLayer on missing layer should fail")
	}
}

func TestLayeredPixmapTargetResize(t *testing.T) {
	scene := NewLayeredPixmapTarget(4, 4)
	scene.CreateLayer(1)
	scene.Clear(color.White)

	scene.Resize(8, 2)
	if scene.Width() != 8 || scene.Height() != 2 {
		t.Errorf("size = %dx%d, want 8x2", scene.Width(), scene.Height())
	}
	if got := scene.Base().Width(); got != 8 {
		t.Errorf("Base().Width() = %d, want 8", got)
	}
	if got := scene.Layer(1).Height(); got != 2 {
		t.Errorf("Layer(1).Height() = %d, want 2", got)
	}
	if got := scene.Base().Image().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("Resize should drop contents, got %v", got)
	}
}
