package backdrop

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     Transparent,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32767, wantG: 0, wantB: 0, wantA: 32767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			// Allow ±1 tolerance for floating point
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestRGBA_Roundtrip(t *testing.T) {
	orig := RGBA{R: 0.2, G: 0.4, B: 0.8, A: 0.6}
	got := FromColor(orig.Color())
	if absDiff(got.R, orig.R) > 0.005 || absDiff(got.G, orig.G) > 0.005 ||
		absDiff(got.B, orig.B) > 0.005 || absDiff(got.A, orig.A) > 0.005 {
		t.Errorf("FromColor(Color()) = %+v, want %+v", got, orig)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", White},
		{"000", Black},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"00ff00", RGBA{0, 1, 0, 1}},
		{"f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"#FFF", White},
		{"nope", RGBA{0, 0, 0, 1}},
		{"12345", RGBA{0, 0, 0, 1}},
		{"", RGBA{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		got := Hex(tt.in)
		if absDiff(got.R, tt.want.R) > 1e-9 || absDiff(got.G, tt.want.G) > 1e-9 ||
			absDiff(got.B, tt.want.B) > 1e-9 || absDiff(got.A, tt.want.A) > 1e-9 {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{in: "#336699", want: RGBA{0.2, 0.4, 0.6, 1}},
		{in: "ffffff80", want: RGBA{1, 1, 1, 128.0 / 255}},
		{in: "0f0", want: RGBA{0, 1, 0, 1}},
		{in: "nope", wantErr: true},
		{in: "#33669g", wantErr: true},
		{in: "#3366", want: RGBA{0.2, 0.2, 0.4, 0.4}},
		{in: "#ff00ff0", wantErr: true},
		{in: "#", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if got != Black {
				t.Errorf("ParseHex(%q) = %+v on error, want Black", tt.in, got)
			}
			continue
		}
		if absDiff(got.R, tt.want.R) > 1e-9 || absDiff(got.G, tt.want.G) > 1e-9 ||
			absDiff(got.B, tt.want.B) > 1e-9 || absDiff(got.A, tt.want.A) > 1e-9 {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRGBA_Vec4(t *testing.T) {
	got := RGBA{0.25, 0.5, 0.75, 1}.Vec4()
	if want := [4]float32{0.25, 0.5, 0.75, 1}; got != want {
		t.Errorf("Vec4() = %v, want %v", got, want)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if absDiff(got.R, 0.5) > 1e-9 || got.A != 1 {
		t.Errorf("Lerp(0.5) = %+v, want mid grey", got)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
