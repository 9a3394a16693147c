package filter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/backdrop/internal/image"
	"github.com/gogpu/backdrop/shader"
)

// Effect evaluates one shader variant with its uniform vectors.
type Effect struct {
	// Variant selects tone, colour and blur kernel.
	Variant shader.Variant

	// EffectFactor is (toneLevel, blurRadius/outputWidth, 0, 0).
	EffectFactor [4]float32

	// ColorFactor is the RGBA effect colour.
	ColorFactor [4]float32

	// Linear selects bilinear sampling of the source; nearest otherwise.
	Linear bool
}

// Apply runs the effect pass: blurred sample of src, then tone, then colour,
// written to every pixel of dst. src and dst must not alias.
func (e *Effect) Apply(src, dst *image.Buf) {
	if src == nil || dst == nil {
		return
	}
	cx := pixelCenters(dst.Width())
	cy := pixelCenters(dst.Height())
	if e.Variant.Tone == shader.TonePixel {
		cells := 4 + (1-e.EffectFactor[0])*508
		quantize(cx, cells)
		quantize(cy, cells)
	}

	texels := e.sample(src, cx, cy)
	w := dst.Width()
	for i, c := range texels {
		image.Store(dst, i%w, i/w, e.color(e.tone(c)))
	}
}

// ApplyBlur runs the blur-only pass used for extra iterations over the
// working buffer. src and dst must not alias.
func (e *Effect) ApplyBlur(src, dst *image.Buf) {
	if src == nil || dst == nil {
		return
	}
	texels := e.sample(src, pixelCenters(dst.Width()), pixelCenters(dst.Height()))
	w := dst.Width()
	for i, c := range texels {
		image.Store(dst, i%w, i/w, c)
	}
}

func (e *Effect) sample(src *image.Buf, cx, cy []float32) []image.Texel {
	kernel := CachedGaussianKernel(e.Variant.Blur.KernelRadius())
	s := e.EffectFactor[1]
	stepY := s * float32(src.Width()) / float32(src.Height())
	tapsX := axisTaps(cx, src.Width(), s, kernel, e.Linear)
	tapsY := axisTaps(cy, src.Height(), stepY, kernel, e.Linear)
	return convolve(src, tapsX, tapsY)
}

func quantize(coords []float32, cells float32) {
	for i, c := range coords {
		coords[i] = (math32.Floor(c*cells) + 0.5) / cells
	}
}

var (
	grayscale = GrayscaleMatrix()
	sepia     = SepiaMatrix()
	invert    = InvertMatrix()
)

// ToneMatrix returns the colour matrix of a tone mode. Modes without a
// matrix (None, Pixel) report false.
func ToneMatrix(mode shader.ToneMode) (ColorMatrix, bool) {
	switch mode {
	case shader.ToneGrayscale:
		return grayscale, true
	case shader.ToneSepia:
		return sepia, true
	case shader.ToneNega:
		return invert, true
	default:
		return ColorMatrix{}, false
	}
}

// tone blends towards the toned colour by the tone level.
func (e *Effect) tone(c image.Texel) image.Texel {
	m, ok := ToneMatrix(e.Variant.Tone)
	if !ok {
		return c
	}
	t := m.Transform(c)
	level := e.EffectFactor[0]
	for i := range 3 {
		c[i] = mix(c[i], math32.Min(t[i], 1), level)
	}
	return c
}

// color combines c with the effect colour and clamps to [0,1].
func (e *Effect) color(c image.Texel) image.Texel {
	f := e.ColorFactor
	for i := range 3 {
		v := c[i]
		switch e.Variant.Color {
		case shader.ColorFill:
			v = mix(v, f[i], f[3])
		case shader.ColorAdd:
			v += f[i] * f[3]
		case shader.ColorSubtract:
			v -= f[i] * f[3]
		default:
			v = mix(v, v*f[i], f[3])
		}
		c[i] = math32.Max(0, math32.Min(v, 1))
	}
	return c
}

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}
