package backdrop

import (
	"fmt"
	"math/bits"
)

// DesamplingRate is the integer divisor applied to a base resolution before
// power-of-two rounding.
type DesamplingRate int

// Desampling rates.
const (
	// DesamplingNone keeps the base resolution.
	DesamplingNone DesamplingRate = 0
	DesamplingX1   DesamplingRate = 1
	DesamplingX2   DesamplingRate = 2
	DesamplingX4   DesamplingRate = 4
	DesamplingX8   DesamplingRate = 8
)

// Valid reports whether r is one of the defined rates.
func (r DesamplingRate) Valid() bool {
	switch r {
	case DesamplingNone, DesamplingX1, DesamplingX2, DesamplingX4, DesamplingX8:
		return true
	}
	return false
}

// String returns "None" or "x<rate>".
func (r DesamplingRate) String() string {
	if r == DesamplingNone {
		return "None"
	}
	return fmt.Sprintf("x%d", int(r))
}

// ParseDesamplingRate parses the String form ("None", "x1" ... "x8").
func ParseDesamplingRate(s string) (DesamplingRate, error) {
	for _, r := range []DesamplingRate{DesamplingNone, DesamplingX1, DesamplingX2, DesamplingX4, DesamplingX8} {
		if r.String() == s {
			return r, nil
		}
	}
	return DesamplingNone, fmt.Errorf("backdrop: unknown desampling rate %q", s)
}

// Resolution is a buffer size in pixels. Width and Height are always > 0
// when produced by Resolve.
type Resolution struct {
	Width, Height int
}

// String returns "WxH".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Resolve computes the buffer size for a base size and desampling rate.
//
// DesamplingNone returns the base size unchanged. Any other rate divides
// each dimension by the rate and rounds to the nearest power of two by
// linear distance, ties rounding up. The result can exceed the base size:
// 1920 at x1 resolves to 2048. Dimensions below 1 resolve to 1.
func Resolve(baseWidth, baseHeight int, rate DesamplingRate) (w, h int) {
	if rate <= DesamplingNone {
		return max(baseWidth, 1), max(baseHeight, 1)
	}
	return closestPowerOfTwo(baseWidth / int(rate)), closestPowerOfTwo(baseHeight / int(rate))
}

// ResolveSize is Resolve on a Resolution.
func ResolveSize(base Resolution, rate DesamplingRate) Resolution {
	w, h := Resolve(base.Width, base.Height, rate)
	return Resolution{Width: w, Height: h}
}

// closestPowerOfTwo returns the power of two nearest to n, preferring the
// larger on ties. n < 1 returns 1.
func closestPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	lower := 1 << (bits.Len(uint(n)) - 1)
	if lower == n {
		return n
	}
	upper := lower << 1
	if n-lower < upper-n {
		return lower
	}
	return upper
}
