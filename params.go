package backdrop

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// Parameter ranges.
const (
	MaxBlurRadius = 4
	MinIterations = 1
	MaxIterations = 8

	// TransparentAlpha is the tint alpha below which the captured image is
	// treated as invisible.
	TransparentAlpha = 0.002
)

// Params is the capture configuration. The zero value is not useful; start
// from DefaultParams.
//
// Tone level, blur radius and iterations are clamped on write, so a Params
// never holds an out-of-range value.
type Params struct {
	toneLevel  float32
	blurRadius float32
	iterations int

	toneMode  shader.ToneMode
	colorMode shader.ColorMode
	blurMode  shader.BlurMode

	effectColor RGBA
	tint        RGBA

	outputDesampling  DesamplingRate
	workingDesampling DesamplingRate
	filter            render.FilterMode
}

// DefaultParams returns full tone level, radius 1 medium blur, white effect
// colour in multiply mode, x1 desampling, bilinear filtering and one
// iteration.
func DefaultParams() Params {
	return Params{
		toneLevel:         1,
		blurRadius:        1,
		iterations:        1,
		toneMode:          shader.ToneNone,
		colorMode:         shader.ColorMultiply,
		blurMode:          shader.BlurMedium,
		effectColor:       White,
		tint:              White,
		outputDesampling:  DesamplingX1,
		workingDesampling: DesamplingX1,
		filter:            render.FilterBilinear,
	}
}

// ToneLevel returns the tone effect strength in [0,1].
func (p *Params) ToneLevel() float32 { return p.toneLevel }

// SetToneLevel sets the tone level clamped to [0,1]. NaN stores 0.
func (p *Params) SetToneLevel(v float32) { p.toneLevel = clampf(v, 0, 1) }

// BlurRadius returns the blur radius in [0,4].
func (p *Params) BlurRadius() float32 { return p.blurRadius }

// SetBlurRadius sets the blur radius clamped to [0,4]. NaN stores 0.
func (p *Params) SetBlurRadius(v float32) { p.blurRadius = clampf(v, 0, MaxBlurRadius) }

// Iterations returns the number of blur passes in [1,8].
func (p *Params) Iterations() int { return p.iterations }

// SetIterations sets the pass count clamped to [1,8].
func (p *Params) SetIterations(n int) { p.iterations = max(MinIterations, min(n, MaxIterations)) }

// ToneMode returns the tone transform.
func (p *Params) ToneMode() shader.ToneMode { return p.toneMode }

// SetToneMode selects the tone transform.
func (p *Params) SetToneMode(m shader.ToneMode) { p.toneMode = m }

// ColorMode returns the colour combination mode.
func (p *Params) ColorMode() shader.ColorMode { return p.colorMode }

// SetColorMode selects the colour combination mode.
func (p *Params) SetColorMode(m shader.ColorMode) { p.colorMode = m }

// BlurMode returns the blur kernel size.
func (p *Params) BlurMode() shader.BlurMode { return p.blurMode }

// SetBlurMode selects the blur kernel size.
func (p *Params) SetBlurMode(m shader.BlurMode) { p.blurMode = m }

// EffectColor returns the colour combined by the colour mode.
func (p *Params) EffectColor() RGBA { return p.effectColor }

// SetEffectColor sets the effect colour.
func (p *Params) SetEffectColor(c RGBA) { p.effectColor = c }

// Tint returns the colour the published image is displayed with.
func (p *Params) Tint() RGBA { return p.tint }

// SetTint sets the display colour.
func (p *Params) SetTint(c RGBA) { p.tint = c }

// OutputDesampling returns the output buffer rate.
func (p *Params) OutputDesampling() DesamplingRate { return p.outputDesampling }

// SetOutputDesampling sets the output buffer rate. Invalid rates are
// ignored.
func (p *Params) SetOutputDesampling(r DesamplingRate) {
	if r.Valid() {
		p.outputDesampling = r
	}
}

// WorkingDesampling returns the working buffer rate.
func (p *Params) WorkingDesampling() DesamplingRate { return p.workingDesampling }

// SetWorkingDesampling sets the working buffer rate. Invalid rates are
// ignored.
func (p *Params) SetWorkingDesampling(r DesamplingRate) {
	if r.Valid() {
		p.workingDesampling = r
	}
}

// Filter returns the sampling filter of the output and working buffers.
func (p *Params) Filter() render.FilterMode { return p.filter }

// SetFilter sets the sampling filter.
func (p *Params) SetFilter(f render.FilterMode) { p.filter = f }

// Variant returns the shader permutation for the current modes.
func (p *Params) Variant() shader.Variant {
	return shader.Variant{Tone: p.toneMode, Color: p.colorMode, Blur: p.blurMode}
}

// EffectFactor returns (toneLevel, blurRadius/outputWidth, 0, 0).
// The division makes blur magnitude independent of buffer resolution.
func (p *Params) EffectFactor(outputWidth int) [4]float32 {
	var blur float32
	if outputWidth > 0 {
		blur = p.blurRadius / float32(outputWidth)
	}
	return [4]float32{p.toneLevel, blur, 0, 0}
}

// ColorFactor returns the effect colour as (r, g, b, a).
func (p *Params) ColorFactor() [4]float32 { return p.effectColor.Vec4() }

// IsTransparent reports whether the tint alpha is below TransparentAlpha.
func (p *Params) IsTransparent() bool { return p.tint.A < TransparentAlpha }

func clampf(v, lo, hi float32) float32 {
	if math32.IsNaN(v) {
		return lo
	}
	return math32.Max(lo, math32.Min(v, hi))
}
