// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"slices"

	"github.com/gogpu/backdrop/render"
)

// DefaultOverlayZ is the first layer z-order treated as overlay UI.
const DefaultOverlayZ = 1000

// Camera renders a layered CPU scene into its own frame target.
//
// Layers with z below the overlay threshold are part of the scene; layers at
// or above it are overlay UI composited after EventBeforeOverlay.
type Camera struct {
	scene    *render.LayeredPixmapTarget
	overlayZ int
	frame    *render.PixmapTarget
	enabled  bool
	lists    [render.EventAfterEverything + 1][]*render.CommandList
}

// NewCamera creates an enabled camera over scene with the given overlay
// threshold.
func NewCamera(scene *render.LayeredPixmapTarget, overlayZ int) *Camera {
	return &Camera{
		scene:    scene,
		overlayZ: overlayZ,
		frame:    render.NewPixmapTarget(scene.Width(), scene.Height()),
		enabled:  true,
	}
}

// Scene returns the layered scene the camera renders.
func (c *Camera) Scene() *render.LayeredPixmapTarget { return c.scene }

// OverlayZ returns the overlay threshold.
func (c *Camera) OverlayZ() int { return c.overlayZ }

// Frame returns the frame target regardless of whether the camera is enabled.
func (c *Camera) Frame() *render.PixmapTarget { return c.frame }

// SetEnabled toggles rendering. A disabled camera has no target.
func (c *Camera) SetEnabled(enabled bool) { c.enabled = enabled }

// Enabled reports whether the camera renders.
func (c *Camera) Enabled() bool { return c.enabled }

// Target returns the active frame target, or nil when disabled.
func (c *Camera) Target() render.RenderTarget {
	if c == nil || !c.enabled {
		return nil
	}
	return c.frame
}

// AddCommandList attaches cl at evt.
func (c *Camera) AddCommandList(evt render.CameraEvent, cl *render.CommandList) {
	if c == nil || !evt.Valid() || cl == nil || slices.Contains(c.lists[evt], cl) {
		return
	}
	c.lists[evt] = append(c.lists[evt], cl)
	slogger().Debug("software: command list attached", "list", cl.Name(), "event", evt)
}

// RemoveCommandList detaches cl from evt.
func (c *Camera) RemoveCommandList(evt render.CameraEvent, cl *render.CommandList) {
	if c == nil || !evt.Valid() {
		return
	}
	i := slices.Index(c.lists[evt], cl)
	if i < 0 {
		return
	}
	c.lists[evt] = slices.Delete(c.lists[evt], i, i+1)
	slogger().Debug("software: command list detached", "list", cl.Name(), "event", evt)
}

// CommandLists returns a copy of the lists attached at evt.
func (c *Camera) CommandLists(evt render.CameraEvent) []*render.CommandList {
	if c == nil || !evt.Valid() {
		return nil
	}
	return slices.Clone(c.lists[evt])
}

// syncSize resizes the frame target to the scene.
func (c *Camera) syncSize() {
	if c.frame.Width() != c.scene.Width() || c.frame.Height() != c.scene.Height() {
		c.frame.Resize(c.scene.Width(), c.scene.Height())
	}
}

// Ensure Camera implements render.Camera.
var _ render.Camera = (*Camera)(nil)
