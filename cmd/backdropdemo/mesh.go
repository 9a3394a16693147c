package main

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/backdrop/widget"
)

// drawMesh rasterises the axis-aligned quads of m into dst, sampling src
// bilinearly and multiplying by the vertex tint.
func drawMesh(dst *image.RGBA, src *image.RGBA, m *widget.Mesh) {
	if src == nil {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	sb := src.Bounds()
	for q := 0; q+3 < len(m.Vertices); q += 4 {
		tl, br := m.Vertices[q], m.Vertices[q+2]
		dr := image.Rect(
			int((tl.X+1)/2*float32(w)), int((1-tl.Y)/2*float32(h)),
			int((br.X+1)/2*float32(w)), int((1-br.Y)/2*float32(h)),
		)
		sr := image.Rect(
			sb.Min.X+int(tl.U*float32(sb.Dx())), sb.Min.Y+int(tl.V*float32(sb.Dy())),
			sb.Min.X+int(br.U*float32(sb.Dx())), sb.Min.Y+int(br.V*float32(sb.Dy())),
		)
		if dr.Empty() || sr.Empty() {
			continue
		}
		xdraw.BiLinear.Scale(dst, dr, src, sr, xdraw.Src, nil)
		tint(dst, dr, [4]float32{tl.R, tl.G, tl.B, tl.A})
	}
}

// tint multiplies premultiplied pixels in r by the premultiplied colour c.
func tint(img *image.RGBA, r image.Rectangle, c [4]float32) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			for ch := range 4 {
				img.Pix[i+ch] = uint8(float32(img.Pix[i+ch])*c[ch] + 0.5)
			}
			i += 4
		}
	}
}
