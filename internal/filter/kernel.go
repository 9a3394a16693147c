package filter

import (
	"sync"

	"github.com/chewxy/math32"
)

// MaxRadius is the largest kernel radius of the effect shader.
const MaxRadius = 3

// Sigma returns the Gaussian standard deviation used for a kernel radius.
func Sigma(radius int) float32 {
	return float32(radius)*0.5 + 0.5
}

// GaussianKernel generates the 1D kernel for radius with 2*radius+1 taps.
// The kernel is normalized so all values sum to 1.0.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := Sigma(radius)
	twoSigmaSq := 2 * sigma * sigma
	kernel := make([]float32, radius*2+1)
	var sum float32

	for i := range kernel {
		x := float32(i - radius)
		kernel[i] = math32.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}

	invSum := 1 / sum
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

var kernels = sync.OnceValue(func() [MaxRadius + 1][]float32 {
	var k [MaxRadius + 1][]float32
	for r := range k {
		k[r] = GaussianKernel(r)
	}
	return k
})

// CachedGaussianKernel returns the shared kernel for radius. Radii above
// MaxRadius are clamped. The returned slice must not be modified.
func CachedGaussianKernel(radius int) []float32 {
	radius = max(0, min(radius, MaxRadius))
	return kernels()[radius]
}
