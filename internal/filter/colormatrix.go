package filter

import "github.com/gogpu/backdrop/internal/image"

// ColorMatrix is a 4x5 colour transformation in normalised [0,1] space:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Row-major: [0-4] = R row, [5-9] = G, [10-14] = B, [15-19] = A.
type ColorMatrix [20]float32

// IdentityMatrix passes colours through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// GrayscaleMatrix maps colours to Rec. 601 luminance.
func GrayscaleMatrix() ColorMatrix {
	const (
		lumR = 0.299
		lumG = 0.587
		lumB = 0.114
	)
	return ColorMatrix{
		lumR, lumG, lumB, 0, 0,
		lumR, lumG, lumB, 0, 0,
		lumR, lumG, lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SepiaMatrix applies the classic sepia tone. Results may exceed 1.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertMatrix inverts colour channels and keeps alpha.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 1,
		0, -1, 0, 0, 1,
		0, 0, -1, 0, 1,
		0, 0, 0, 1, 0,
	}
}

// Transform applies m to c without clamping.
func (m *ColorMatrix) Transform(c image.Texel) image.Texel {
	r, g, b, a := c[0], c[1], c[2], c[3]
	return image.Texel{
		m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4],
		m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9],
		m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14],
		m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19],
	}
}

// Multiply returns the matrix that applies m first, then other.
func (m *ColorMatrix) Multiply(other *ColorMatrix) ColorMatrix {
	a := m
	b := other
	var r ColorMatrix

	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += b[row*5+k] * a[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = b[row*5+0]*a[4] + b[row*5+1]*a[9] +
			b[row*5+2]*a[14] + b[row*5+3]*a[19] + b[row*5+4]
	}
	return r
}
