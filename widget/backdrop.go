package widget

import (
	"github.com/gogpu/backdrop"
	"github.com/gogpu/backdrop/render"
)

// Source provides the captured image. *backdrop.Capturer implements it.
type Source interface {
	Texture() render.Texture
	IsTransparent() bool
	Params() backdrop.Params
}

// Backdrop draws the published capture of a Source as a quad.
type Backdrop struct {
	source   Source
	bounds   Rect
	width    int
	height   int
	visible  bool
	uvBounds Rect
}

var _ Renderable = (*Backdrop)(nil)

// NewBackdrop creates a visible backdrop over a width x height viewport.
// The quad covers the whole viewport until SetBounds is called.
func NewBackdrop(src Source, width, height int) *Backdrop {
	return &Backdrop{
		source:   src,
		bounds:   Rect{W: float32(width), H: float32(height)},
		width:    width,
		height:   height,
		visible:  true,
		uvBounds: Rect{W: 1, H: 1},
	}
}

// SetViewport changes the viewport size. Bounds are kept in pixels.
func (b *Backdrop) SetViewport(width, height int) {
	b.width, b.height = width, height
}

// SetBounds sets the quad rectangle in viewport pixels.
func (b *Backdrop) SetBounds(r Rect) { b.bounds = r }

// Bounds returns the quad rectangle.
func (b *Backdrop) Bounds() Rect { return b.bounds }

// SetUVBounds selects the part of the captured image to display, in
// normalised texture coordinates. The default is the whole image.
func (b *Backdrop) SetUVBounds(r Rect) { b.uvBounds = r }

// SetVisible shows or hides the backdrop. Hiding does not affect pending
// captures.
func (b *Backdrop) SetVisible(v bool) { b.visible = v }

// IsVisible reports whether the backdrop is shown.
func (b *Backdrop) IsVisible() bool { return b.visible }

// EmitGeometry appends a textured quad tinted with the source tint. It
// appends nothing when hidden, before the first capture is published, when
// the tint is transparent or when the bounds or viewport are empty.
func (b *Backdrop) EmitGeometry(m *Mesh) {
	if !b.visible || b.source == nil || b.bounds.Empty() || b.width <= 0 || b.height <= 0 {
		return
	}
	if b.source.IsTransparent() {
		return
	}
	tex := b.source.Texture()
	if tex == nil {
		return
	}
	if len(m.Vertices)+4 > 1<<16 {
		return
	}

	params := b.source.Params()
	tint := params.Tint().Premultiply()
	r, g, bl, a := float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A)

	p0 := toNDC(b.bounds.X, b.bounds.Y, b.width, b.height)
	p1 := toNDC(b.bounds.X+b.bounds.W, b.bounds.Y+b.bounds.H, b.width, b.height)
	u0, v0 := b.uvBounds.X, b.uvBounds.Y
	u1, v1 := u0+b.uvBounds.W, v0+b.uvBounds.H

	//nolint:gosec // G115: bounded by the check above
	base := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{p0.X, p0.Y, u0, v0, r, g, bl, a},
		Vertex{p1.X, p0.Y, u1, v0, r, g, bl, a},
		Vertex{p1.X, p1.Y, u1, v1, r, g, bl, a},
		Vertex{p0.X, p1.Y, u0, v1, r, g, bl, a},
	)
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	m.Texture = tex
}
