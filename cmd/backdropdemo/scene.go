package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/backdrop/backend/software"
	"github.com/gogpu/backdrop/render"
)

// Scene layers. Layers from overlayZ up are hidden from captures.
const (
	contentZ  = 1
	backdropZ = 2
	overlayZ  = software.DefaultOverlayZ
)

// buildScene paints a gradient base, a grid of tiles and an overlay panel.
func buildScene(w, h int) (*render.LayeredPixmapTarget, error) {
	scene := render.NewLayeredPixmapTarget(w, h)
	drawGradient(scene.Base().Image())

	content, err := scene.CreateLayer(contentZ)
	if err != nil {
		return nil, err
	}
	drawTiles(content.Image())

	if _, err := scene.CreateLayer(backdropZ); err != nil {
		return nil, err
	}

	overlay, err := scene.CreateLayer(overlayZ)
	if err != nil {
		return nil, err
	}
	drawPanel(overlay.Image())
	return scene, nil
}

func drawGradient(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(max(b.Dy()-1, 1))
		c := color.RGBA{
			R: uint8(25 + t*100),
			G: uint8(50 + t*75),
			B: uint8(100 + t*50),
			A: 255,
		}
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func drawTiles(img *image.RGBA) {
	b := img.Bounds()
	size := max(b.Dx()/12, 4)
	palette := []color.RGBA{
		{R: 230, G: 80, B: 80, A: 255},
		{R: 80, G: 200, B: 100, A: 255},
		{R: 250, G: 200, B: 40, A: 255},
	}
	i := 0
	for y := b.Min.Y + size/2; y+size <= b.Max.Y; y += size * 2 {
		for x := b.Min.X + size/2; x+size <= b.Max.X; x += size * 2 {
			r := image.Rect(x, y, x+size, y+size)
			draw.Draw(img, r, image.NewUniform(palette[i%len(palette)]), image.Point{}, draw.Src)
			i++
		}
	}
}

// panelRect is the overlay panel, centred at half the viewport size.
func panelRect(w, h int) image.Rectangle {
	return image.Rect(w/4, h/4, w*3/4, h*3/4)
}

func drawPanel(img *image.RGBA) {
	b := img.Bounds()
	// Premultiplied white at 25% over the backdrop.
	glass := color.RGBA{R: 64, G: 64, B: 64, A: 64}
	draw.Draw(img, panelRect(b.Dx(), b.Dy()), image.NewUniform(glass), image.Point{}, draw.Src)
}
