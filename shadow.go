// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

import "github.com/gogpu/corners/internal/filter"

// GaussianKernel returns a Gaussian kernel of 2*blurRadius+1 taps with
// sigma blurRadius/3. The weights are the sampled density and are not
// renormalized. For blurRadius <= 0 it returns the identity kernel.
func GaussianKernel(blurRadius int) []float32 {
	return filter.GaussianKernel(blurRadius)
}

// Blur applies kernel horizontally and then vertically to src and returns
// the result as a new buffer. Samples outside src are clamped to the nearest
// edge, and each pass rounds half up to 8 bits.
func Blur(kernel []float32, src *Buffer) *Buffer {
	dst := NewBuffer(src.width, src.height)
	filter.Blur(kernel, dst.data, src.data, src.width, src.height)
	return dst
}

// BlurredCorner returns a soft corner shadow mask.
//
// The result is square with side radius+2*blurRadius. Before blurring, the
// plane is fully covered except for a blurRadius-wide band along the right
// and bottom edges, and the radius×radius block at (blurRadius, blurRadius)
// holds the analytic corner coverage of CornerMask. The whole plane is then
// blurred with GaussianKernel(blurRadius), which softens the curved corner
// and the outer edges while the interior stays solid.
//
// radius must be positive and blurRadius non-negative.
func BlurredCorner(radius, blurRadius int) *Buffer {
	size := radius + 2*blurRadius
	buf := NewBuffer(size, size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x-blurRadius < radius && y-blurRadius < radius {
				buf.data[y*size+x] = 255
			}
		}
	}

	r := float32(radius)
	for y := 0; y < radius; y++ {
		row := buf.data[(y+blurRadius)*size+blurRadius:]
		for x := 0; x < radius; x++ {
			row[x] = coverageToAlpha(PixelCoverage(r, x, y))
		}
	}

	filter.BlurInPlace(filter.CachedGaussianKernel(blurRadius), buf.data, size, size)
	return buf
}
