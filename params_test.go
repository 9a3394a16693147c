package backdrop

import (
	"math"
	"testing"

	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.ToneLevel() != 1 || p.BlurRadius() != 1 || p.Iterations() != 1 {
		t.Errorf("DefaultParams() levels = %v/%v/%d, want 1/1/1", p.ToneLevel(), p.BlurRadius(), p.Iterations())
	}
	want := shader.Variant{Tone: shader.ToneNone, Color: shader.ColorMultiply, Blur: shader.BlurMedium}
	if got := p.Variant(); got != want {
		t.Errorf("Variant() = %v, want %v", got, want)
	}
	if p.Filter() != render.FilterBilinear {
		t.Errorf("Filter() = %v, want Bilinear", p.Filter())
	}
	if p.OutputDesampling() != DesamplingX1 || p.WorkingDesampling() != DesamplingX1 {
		t.Error("default desampling should be x1")
	}
	if p.IsTransparent() {
		t.Error("default tint should not be transparent")
	}
}

func TestToneLevelClamp(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{1, 1},
		{5, 1},
		{float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.SetToneLevel(tt.in)
		if got := p.ToneLevel(); got != tt.want {
			t.Errorf("SetToneLevel(%v): ToneLevel() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBlurRadiusClamp(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{2.5, 2.5},
		{10, 4},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.SetBlurRadius(tt.in)
		if got := p.BlurRadius(); got != tt.want {
			t.Errorf("SetBlurRadius(%v): BlurRadius() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIterationsClamp(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 5: 5, 8: 8, 99: 8} {
		p := DefaultParams()
		p.SetIterations(in)
		if got := p.Iterations(); got != want {
			t.Errorf("SetIterations(%d): Iterations() = %d, want %d", in, got, want)
		}
	}
}

func TestDesamplingSettersIgnoreInvalid(t *testing.T) {
	tests := []struct {
		in   DesamplingRate
		want DesamplingRate
	}{
		{DesamplingNone, DesamplingNone},
		{DesamplingX4, DesamplingX4},
		{DesamplingRate(3), DesamplingX2},
		{DesamplingRate(16), DesamplingX2},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.SetOutputDesampling(DesamplingX2)
		p.SetWorkingDesampling(DesamplingX2)
		p.SetOutputDesampling(tt.in)
		p.SetWorkingDesampling(tt.in)
		if got := p.OutputDesampling(); got != tt.want {
			t.Errorf("SetOutputDesampling(%d): OutputDesampling() = %v, want %v", int(tt.in), got, tt.want)
		}
		if got := p.WorkingDesampling(); got != tt.want {
			t.Errorf("SetWorkingDesampling(%d): WorkingDesampling() = %v, want %v", int(tt.in), got, tt.want)
		}
	}
}

func TestEffectFactor(t *testing.T) {
	p := DefaultParams()
	p.SetToneLevel(0.5)
	p.SetBlurRadius(2)

	if got, want := p.EffectFactor(1024), [4]float32{0.5, 2.0 / 1024, 0, 0}; got != want {
		t.Errorf("EffectFactor(1024) = %v, want %v", got, want)
	}
	if got, want := p.EffectFactor(0), [4]float32{0.5, 0, 0, 0}; got != want {
		t.Errorf("EffectFactor(0) = %v, want %v", got, want)
	}
}

func TestColorFactor(t *testing.T) {
	p := DefaultParams()
	p.SetEffectColor(RGBA2(0.25, 0.5, 0.75, 1))
	if got, want := p.ColorFactor(), [4]float32{0.25, 0.5, 0.75, 1}; got != want {
		t.Errorf("ColorFactor() = %v, want %v", got, want)
	}
}

func TestIsTransparent(t *testing.T) {
	tests := []struct {
		alpha float64
		want  bool
	}{
		{0, true},
		{0.001, true},
		{0.002, false},
		{0.5, false},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.SetTint(RGBA2(1, 1, 1, tt.alpha))
		if got := p.IsTransparent(); got != tt.want {
			t.Errorf("alpha %v: IsTransparent() = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestVariantFollowsModes(t *testing.T) {
	p := DefaultParams()
	p.SetToneMode(shader.TonePixel)
	p.SetColorMode(shader.ColorSubtract)
	p.SetBlurMode(shader.BlurDetail)
	want := shader.Variant{Tone: shader.TonePixel, Color: shader.ColorSubtract, Blur: shader.BlurDetail}
	if got := p.Variant(); got != want {
		t.Errorf("Variant() = %v, want %v", got, want)
	}
}
