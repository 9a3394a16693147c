package filter

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/gogpu/backdrop/internal/image"
	"github.com/gogpu/backdrop/internal/parallel"
)

// minRowBand is the smallest row band worth handing to another goroutine.
const minRowBand = 32

// tap is one source texel contributing to a destination coordinate.
type tap struct {
	index  int
	weight float32
}

// axisTaps computes, for each destination coordinate along one axis, the
// source texels and weights of a blurred sample.
//
// coords are the normalised sample positions per destination index. Each
// position is sampled at coord + i*step for i in [-r, r] with the Gaussian
// weight of i; every sample reads one texel (nearest) or two (linear) with
// clamp-to-edge addressing.
func axisTaps(coords []float32, srcN int, step float32, kernel []float32, linear bool) [][]tap {
	r := len(kernel) / 2
	n := float32(srcN)
	out := make([][]tap, len(coords))
	per := len(kernel)
	if linear {
		per *= 2
	}

	for d, c := range coords {
		taps := make([]tap, 0, per)
		for k, w := range kernel {
			p := c + float32(k-r)*step
			if !linear {
				i := clampIndex(int(math32.Floor(p*n)), srcN)
				taps = append(taps, tap{index: i, weight: w})
				continue
			}
			f := p*n - 0.5
			x0 := math32.Floor(f)
			t := f - x0
			i0 := int(x0)
			taps = append(taps,
				tap{index: clampIndex(i0, srcN), weight: w * (1 - t)},
				tap{index: clampIndex(i0+1, srcN), weight: w * t},
			)
		}
		out[d] = taps
	}
	return out
}

// convolve evaluates the separable sample defined by tapsX and tapsY over
// src. The result holds len(tapsX)*len(tapsY) normalised RGBA texels in
// row-major order.
//
// Pass 1 resamples rows horizontally into a float buffer, pass 2 resamples
// that buffer vertically. Both passes run in row bands on the shared pool.
func convolve(src *image.Buf, tapsX, tapsY [][]tap) []image.Texel {
	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := len(tapsX), len(tapsY)
	data := src.Data()
	stride := src.Stride()

	temp := getTempBuffer(dstW * srcH)
	defer putTempBuffer(temp)

	const inv = 1.0 / 255
	pool := parallel.Default()
	pool.Rows(srcH, minRowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := data[y*stride : y*stride+srcW*image.BytesPerPixel]
			for x, taps := range tapsX {
				var acc image.Texel
				for _, tp := range taps {
					i := tp.index * image.BytesPerPixel
					acc[0] += float32(row[i+0]) * tp.weight
					acc[1] += float32(row[i+1]) * tp.weight
					acc[2] += float32(row[i+2]) * tp.weight
					acc[3] += float32(row[i+3]) * tp.weight
				}
				temp[y*dstW+x] = image.Texel{acc[0] * inv, acc[1] * inv, acc[2] * inv, acc[3] * inv}
			}
		}
	})

	out := make([]image.Texel, dstW*dstH)
	pool.Rows(dstH, minRowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			taps := tapsY[y]
			for x := range dstW {
				var acc image.Texel
				for _, tp := range taps {
					c := temp[tp.index*dstW+x]
					acc[0] += c[0] * tp.weight
					acc[1] += c[1] * tp.weight
					acc[2] += c[2] * tp.weight
					acc[3] += c[3] * tp.weight
				}
				out[y*dstW+x] = acc
			}
		}
	})
	return out
}

// pixelCenters returns the normalised centre coordinate of each of n pixels.
func pixelCenters(n int) []float32 {
	c := make([]float32, n)
	for i := range c {
		c[i] = (float32(i) + 0.5) / float32(n)
	}
	return c
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// texelBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type texelBuffer struct {
	data []image.Texel
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &texelBuffer{data: make([]image.Texel, 512*512)}
	},
}

// getTempBuffer retrieves a temporary buffer with at least size texels.
// Every texel in the returned slice is overwritten by convolve.
func getTempBuffer(size int) []image.Texel {
	wrapper := tempBufferPool.Get().(*texelBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]image.Texel, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []image.Texel) {
	// Only pool buffers up to 4K x 1K.
	if cap(buf) <= 4096*1024 {
		tempBufferPool.Put(&texelBuffer{data: buf[:cap(buf)]})
	}
}
