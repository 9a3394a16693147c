package backdrop

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		rate         DesamplingRate
		wantW, wantH int
	}{
		{"none keeps base", 1920, 1080, DesamplingNone, 1920, 1080},
		{"x1 rounds up", 1920, 1080, DesamplingX1, 2048, 1024},
		{"x2", 1920, 1080, DesamplingX2, 1024, 512},
		{"x4", 1920, 1080, DesamplingX4, 512, 256},
		{"x8", 1920, 1080, DesamplingX8, 256, 128},
		{"tie rounds up", 768, 384, DesamplingX1, 1024, 512},
		{"exact power", 512, 256, DesamplingX1, 512, 256},
		{"below one", 3, 5, DesamplingX8, 1, 1},
		{"zero base", 0, 0, DesamplingX2, 1, 1},
		{"none zero base", 0, 0, DesamplingNone, 1, 1},
		{"odd sizes", 1280, 720, DesamplingX2, 512, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Resolve(tt.w, tt.h, tt.rate)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Resolve(%d, %d, %v) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.rate, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolveAlwaysPositive(t *testing.T) {
	for _, rate := range []DesamplingRate{DesamplingNone, DesamplingX1, DesamplingX2, DesamplingX4, DesamplingX8} {
		for base := -2; base < 40; base++ {
			w, h := Resolve(base, base, rate)
			if w < 1 || h < 1 {
				t.Fatalf("Resolve(%d, %d, %v) = %dx%d, want >= 1", base, base, rate, w, h)
			}
			if rate != DesamplingNone && w&(w-1) != 0 {
				t.Fatalf("Resolve(%d, %d, %v) width %d is not a power of two", base, base, rate, w)
			}
		}
	}
}

func TestClosestPowerOfTwo(t *testing.T) {
	tests := map[int]int{-4: 1, 0: 1, 1: 1, 2: 2, 3: 4, 5: 4, 6: 8, 12: 16, 11: 8, 540: 512, 960: 1024}
	for n, want := range tests {
		if got := closestPowerOfTwo(n); got != want {
			t.Errorf("closestPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestDesamplingRateString(t *testing.T) {
	tests := []struct {
		rate DesamplingRate
		want string
	}{
		{DesamplingNone, "None"},
		{DesamplingX1, "x1"},
		{DesamplingX4, "x4"},
	}
	for _, tt := range tests {
		if got := tt.rate.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		parsed, err := ParseDesamplingRate(tt.want)
		if err != nil || parsed != tt.rate {
			t.Errorf("ParseDesamplingRate(%q) = %v, %v, want %v", tt.want, parsed, err, tt.rate)
		}
	}
	if _, err := ParseDesamplingRate("x3"); err == nil {
		t.Error("ParseDesamplingRate(x3) error = nil, want error")
	}
	if DesamplingRate(3).Valid() {
		t.Error("DesamplingRate(3).Valid() = true")
	}
}

func TestResolveSize(t *testing.T) {
	got := ResolveSize(Resolution{Width: 1920, Height: 1080}, DesamplingX2)
	if got.String() != "1024x512" {
		t.Errorf("ResolveSize() = %v, want 1024x512", got)
	}
}
