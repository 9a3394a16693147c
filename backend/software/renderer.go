// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"math"

	"github.com/gogpu/backdrop/frame"
	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// Renderer draws frames of one camera and drives the frame loop.
type Renderer struct {
	camera *Camera
	loop   *frame.Loop
	exec   *executor
}

// NewRenderer creates a renderer for camera. A nil loop gets a fresh one.
func NewRenderer(camera *Camera, loop *frame.Loop) *Renderer {
	if loop == nil {
		loop = frame.NewLoop()
	}
	return &Renderer{camera: camera, loop: loop, exec: newExecutor()}
}

// Camera returns the rendered camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// Loop returns the frame loop the renderer ends frames on.
func (r *Renderer) Loop() *frame.Loop { return r.loop }

// Global returns the last value set for a global shader vector.
func (r *Renderer) Global(id shader.PropertyID) ([4]float32, bool) {
	return r.exec.Global(id)
}

// RenderFrame draws one frame:
//  1. scene layers below the overlay threshold
//  2. lists at EventAfterOpaque, EventAfterTransparent and EventBeforeOverlay
//  3. overlay layers
//  4. lists at EventAfterEverything
//  5. end-of-frame tasks
//
// A disabled camera draws nothing but still ends the frame. Command list
// failures are logged and returned together after the frame has ended.
func (r *Renderer) RenderFrame() error {
	var errs []error
	c := r.camera
	if c.Enabled() {
		c.syncSize()
		img := c.frame.Image()

		c.scene.CompositeBase(img)
		c.scene.CompositeRange(img, math.MinInt, c.overlayZ)
		errs = r.runEvent(render.EventAfterOpaque, errs)
		errs = r.runEvent(render.EventAfterTransparent, errs)
		errs = r.runEvent(render.EventBeforeOverlay, errs)

		c.scene.CompositeRange(img, c.overlayZ, math.MaxInt)
		errs = r.runEvent(render.EventAfterEverything, errs)
	}

	n := r.loop.EndFrame()
	slogger().Debug("software: frame ended", "frame", r.loop.Frame(), "tasks", n)
	return errors.Join(errs...)
}

func (r *Renderer) runEvent(evt render.CameraEvent, errs []error) []error {
	for _, cl := range r.camera.CommandLists(evt) {
		if cl.Released() {
			continue
		}
		if err := r.exec.execute(cl, r.camera.frame); err != nil {
			slogger().Warn("software: command list failed", "list", cl.Name(), "event", evt, "err", err)
			errs = append(errs, err)
			continue
		}
		cl.MarkExecuted()
	}
	return errs
}
