package widget

import "github.com/gogpu/backdrop/render"

// Vertex is a textured, tinted vertex.
type Vertex struct {
	X, Y       float32 // Position in normalized device coordinates
	U, V       float32 // Texture coordinates
	R, G, B, A float32 // Tint (premultiplied alpha)
}

// Mesh is an indexed triangle list sampling a single texture.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
	Texture  render.Texture
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.Texture = nil
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Renderable is anything the UI renderer can draw.
type Renderable interface {
	// IsVisible reports whether the element takes part in layout and drawing.
	IsVisible() bool

	// EmitGeometry appends the element's triangles to m. It may append
	// nothing.
	EmitGeometry(m *Mesh)
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// point2D is a simple 2D point for internal use.
type point2D struct {
	X, Y float32
}

// toNDC converts pixel coordinates to normalized device coordinates.
// Y grows downward in pixels and upward in NDC.
func toNDC(x, y float32, width, height int) point2D {
	return point2D{
		X: x/float32(width)*2 - 1,
		Y: 1 - y/float32(height)*2,
	}
}
