// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"
)

// LayeredPixmapTarget is a CPU scene made of z-ordered layers: a base layer
// plus UI layers such as panels, popups and dialogs.
//
// It is the source a software camera renders from. Layers below the camera's
// overlay threshold form the scene that gets captured; layers at or above it
// are composited after the capture event, so a dialog never appears in its
// own backdrop.
type LayeredPixmapTarget struct {
	base   *image.RGBA
	layers map[int]*layer
	zOrder []int // cached ascending z-order, nil when stale
	width  int
	height int
}

type layer struct {
	img     *image.RGBA
	visible bool
}

// NewLayeredPixmapTarget creates a new layered CPU scene.
func NewLayeredPixmapTarget(width, height int) *LayeredPixmapTarget {
	return &LayeredPixmapTarget{
		base:   image.NewRGBA(image.Rect(0, 0, width, height)),
		layers: make(map[int]*layer),
		width:  width,
		height: height,
	}
}

// Width returns the scene width in pixels.
func (t *LayeredPixmapTarget) Width() int { return t.width }

// Height returns the scene height in pixels.
func (t *LayeredPixmapTarget) Height() int { return t.height }

// Base returns the base layer as a render target.
func (t *LayeredPixmapTarget) Base() *PixmapTarget {
	return NewPixmapTargetFromImage(t.base)
}

// CreateLayer creates a new layer at the specified z-order.
// Returns an error if a layer with the same z-order already exists.
func (t *LayeredPixmapTarget) CreateLayer(z int) (*PixmapTarget, error) {
	if _, exists := t.layers[z]; exists {
		return nil, fmt.Errorf("render: layer with z=%d already exists", z)
	}
	l := &layer{
		img:     image.NewRGBA(image.Rect(0, 0, t.width, t.height)),
		visible: true,
	}
	t.layers[z] = l
	t.zOrder = nil
	return NewPixmapTargetFromImage(l.img), nil
}

// RemoveLayer removes a layer by z-order.
func (t *LayeredPixmapTarget) RemoveLayer(z int) error {
	if _, exists := t.layers[z]; !exists {
		return fmt.Errorf("render: layer with z=%d does not exist", z)
	}
	delete(t.layers, z)
	t.zOrder = nil
	return nil
}

// SetLayerVisible controls layer visibility without removing it.
func (t *LayeredPixmapTarget) SetLayerVisible(z int, visible bool) {
	if l, exists := t.layers[z]; exists {
		l.visible = visible
	}
}

// Layer returns the render target of layer z, or nil if it does not exist.
func (t *LayeredPixmapTarget) Layer(z int) *PixmapTarget {
	l, exists := t.layers[z]
	if !exists {
		return nil
	}
	return NewPixmapTargetFromImage(l.img)
}

// Layers returns all layer z-orders in ascending order.
func (t *LayeredPixmapTarget) Layers() []int {
	if t.zOrder == nil {
		t.zOrder = make([]int, 0, len(t.layers))
		for z := range t.layers {
			t.zOrder = append(t.zOrder, z)
		}
		slices.Sort(t.zOrder)
	}
	return slices.Clone(t.zOrder)
}

// CompositeBase copies the base layer into dst, replacing its contents.
func (t *LayeredPixmapTarget) CompositeBase(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), t.base, image.Point{}, draw.Src)
}

// CompositeRange blends visible layers with minZ <= z < maxZ onto dst in
// ascending z-order using source-over.
func (t *LayeredPixmapTarget) CompositeRange(dst *image.RGBA, minZ, maxZ int) {
	for _, z := range t.Layers() {
		if z < minZ || z >= maxZ {
			continue
		}
		if l := t.layers[z]; l.visible {
			draw.Draw(dst, dst.Bounds(), l.img, image.Point{}, draw.Over)
		}
	}
}

// Composite renders the full scene (base plus every visible layer) into dst.
func (t *LayeredPixmapTarget) Composite(dst *image.RGBA) {
	t.CompositeBase(dst)
	t.CompositeRange(dst, math.MinInt, math.MaxInt)
}

// Resize reallocates the base and every layer. Contents are not preserved.
func (t *LayeredPixmapTarget) Resize(width, height int) {
	t.width, t.height = width, height
	t.base = image.NewRGBA(image.Rect(0, 0, width, height))
	for _, l := range t.layers {
		l.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
}

// Clear fills the base layer with the given color.
func (t *LayeredPixmapTarget) Clear(c color.Color) {
	fillRGBA(t.base, c)
}

// ClearLayer fills layer z with a color.
func (t *LayeredPixmapTarget) ClearLayer(z int, c color.Color) error {
	l, exists := t.layers[z]
	if !exists {
		return fmt.Errorf("render: layer with z=%d does not exist", z)
	}
	fillRGBA(l.img, c)
	return nil
}
