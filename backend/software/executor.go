// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"
	stdimage "image"

	"golang.org/x/image/draw"

	"github.com/gogpu/backdrop/internal/filter"
	"github.com/gogpu/backdrop/internal/image"
	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// variantMaterial is a material the CPU reference can evaluate.
type variantMaterial interface {
	render.Material
	Variant() shader.Variant
}

// surface is a resolved blit endpoint.
type surface struct {
	buf    *image.Buf
	filter render.FilterMode
}

// executor interprets recorded command lists against CPU buffers.
//
// Global vectors persist across lists and frames, like pipeline-global
// shader state. Temporaries live for one list execution.
type executor struct {
	pool    *image.Pool
	globals map[shader.PropertyID][4]float32
	temps   map[render.TempID]surface
}

func newExecutor() *executor {
	return &executor{
		pool:    image.NewPool(4),
		globals: make(map[shader.PropertyID][4]float32),
		temps:   make(map[render.TempID]surface),
	}
}

// Global returns the current value of a global vector.
func (e *executor) Global(id shader.PropertyID) ([4]float32, bool) {
	v, ok := e.globals[id]
	return v, ok
}

// execute runs every command of cl with active as the current target.
// Temporaries still allocated at the end are returned to the pool.
func (e *executor) execute(cl *render.CommandList, active *render.PixmapTarget) error {
	defer e.releaseLeaked(cl)

	for i, cmd := range cl.Commands() {
		if err := e.run(cmd, active); err != nil {
			return fmt.Errorf("software: %s[%d] %v: %w", cl.Name(), i, cmd.Op, err)
		}
	}
	return nil
}

func (e *executor) run(cmd render.Command, active *render.PixmapTarget) error {
	switch cmd.Op {
	case render.OpGetTemporary:
		if _, ok := e.temps[cmd.Temp]; ok {
			return fmt.Errorf("%w: temporary %d already allocated", ErrInvalidCommand, cmd.Temp)
		}
		w, h := cmd.Width, cmd.Height
		if w <= 0 {
			w = active.Width()
		}
		if h <= 0 {
			h = active.Height()
		}
		buf, err := e.pool.Get(w, h)
		if err != nil {
			return err
		}
		e.temps[cmd.Temp] = surface{buf: buf, filter: cmd.Filter}
		slogger().Debug("software: temporary allocated", "id", cmd.Temp, "width", w, "height", h)
		return nil

	case render.OpReleaseTemporary:
		s, ok := e.temps[cmd.Temp]
		if !ok {
			return fmt.Errorf("%w: temporary %d not allocated", ErrInvalidCommand, cmd.Temp)
		}
		delete(e.temps, cmd.Temp)
		e.pool.Put(s.buf)
		return nil

	case render.OpSetGlobalVector:
		e.globals[cmd.Property] = cmd.Vector
		return nil

	case render.OpBlit:
		src, err := e.resolve(cmd.Src, active)
		if err != nil {
			return err
		}
		dst, err := e.resolve(cmd.Dst, active)
		if err != nil {
			return err
		}
		if cmd.Material == nil {
			blit(src, dst)
			return nil
		}
		return e.blitMaterial(src, dst, cmd.Material, cmd.Pass)

	default:
		return fmt.Errorf("%w: unknown op %v", ErrInvalidCommand, cmd.Op)
	}
}

func (e *executor) resolve(ref render.TargetRef, active *render.PixmapTarget) (surface, error) {
	switch ref.Kind {
	case render.TargetCurrentActive:
		buf, err := image.FromRaw(active.Pixels(), active.Width(), active.Height(), active.Stride())
		if err != nil {
			return surface{}, err
		}
		return surface{buf: buf, filter: render.FilterBilinear}, nil

	case render.TargetTemporary:
		s, ok := e.temps[ref.Temp]
		if !ok {
			return surface{}, fmt.Errorf("%w: temporary %d not allocated", ErrInvalidCommand, ref.Temp)
		}
		return s, nil

	case render.TargetTexture:
		tex, ok := ref.Texture.(*Texture)
		if !ok || tex == nil {
			return surface{}, fmt.Errorf("%w: texture %T not created by the software device", ErrInvalidCommand, ref.Texture)
		}
		if tex.Destroyed() {
			return surface{}, fmt.Errorf("%w: texture %q destroyed", ErrInvalidCommand, tex.Label())
		}
		return surface{buf: tex.buf, filter: tex.Filter()}, nil

	default:
		return surface{}, fmt.Errorf("%w: unknown target kind %d", ErrInvalidCommand, ref.Kind)
	}
}

// blit copies src into dst, scaling with the source filter.
func blit(src, dst surface) {
	d, s := dst.buf.RGBA(), src.buf.RGBA()
	if d.Bounds().Size() == s.Bounds().Size() {
		draw.Draw(d, d.Bounds(), s, stdimage.Point{}, draw.Src)
		return
	}
	var scaler draw.Scaler = draw.BiLinear
	if src.filter == render.FilterPoint {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(d, d.Bounds(), s, s.Bounds(), draw.Src, nil)
}

func (e *executor) blitMaterial(src, dst surface, mat render.Material, pass int) error {
	vm, ok := mat.(variantMaterial)
	if !ok {
		return fmt.Errorf("%w: material %q has no effect variant", ErrInvalidCommand, mat.Name())
	}
	if src.buf == dst.buf || sameMemory(src.buf, dst.buf) {
		return fmt.Errorf("%w: material blit source and destination alias", ErrInvalidCommand)
	}

	props := shader.Properties()
	fx := filter.Effect{
		Variant:      vm.Variant(),
		EffectFactor: e.globals[props.EffectFactor],
		ColorFactor:  e.globals[props.ColorFactor],
		Linear:       src.filter != render.FilterPoint,
	}
	switch pass {
	case shader.PassEffect:
		fx.Apply(src.buf, dst.buf)
	case shader.PassBlur:
		fx.ApplyBlur(src.buf, dst.buf)
	default:
		return fmt.Errorf("%w: material %q has no pass %d", ErrInvalidCommand, mat.Name(), pass)
	}
	return nil
}

func sameMemory(a, b *image.Buf) bool {
	da, db := a.Data(), b.Data()
	return len(da) > 0 && len(db) > 0 && &da[0] == &db[0]
}

func (e *executor) releaseLeaked(cl *render.CommandList) {
	if len(e.temps) == 0 {
		return
	}
	slogger().Warn("software: command list leaked temporaries", "list", cl.Name(), "count", len(e.temps))
	for id, s := range e.temps {
		e.pool.Put(s.buf)
		delete(e.temps, id)
	}
}
