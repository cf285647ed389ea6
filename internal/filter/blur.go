// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import "sync"

// Blur convolves the width×height plane src with kernel, first along rows and
// then along columns, and writes the result to dst.
//
// Both passes clamp out-of-range sample indices to the nearest edge.
// Each pass rounds its weighted sum half up to 8 bits. dst and src may be
// the same slice: the horizontal pass completes into a temporary plane
// before the vertical pass writes dst.
//
// len(src) and len(dst) must be at least width*height.
func Blur(kernel []float32, dst, src []uint8, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	temp := getTempPlane(width * height)
	defer putTempPlane(temp)

	blurHorizontal(kernel, temp, src, width, height)
	blurVertical(kernel, dst, temp, width, height)
}

// BlurInPlace blurs data in place. See Blur.
func BlurInPlace(kernel []float32, data []uint8, width, height int) {
	Blur(kernel, data, data, width, height)
}

// blurHorizontal applies 1D convolution along each row of src into dst.
func blurHorizontal(kernel []float32, dst, src []uint8, width, height int) {
	center := KernelCenter(len(kernel))

	for y := 0; y < height; y++ {
		row := src[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				kx := clampIndex(x+k-center, width)
				sum += float32(row[kx]) * weight
			}
			dst[y*width+x] = quantize(sum)
		}
	}
}

// blurVertical applies 1D convolution along each column of src into dst.
func blurVertical(kernel []float32, dst, src []uint8, width, height int) {
	center := KernelCenter(len(kernel))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				ky := clampIndex(y+k-center, height)
				sum += float32(src[ky*width+x]) * weight
			}
			dst[y*width+x] = quantize(sum)
		}
	}
}

// clampIndex clamps i to [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// quantize rounds a weighted sum half up to 8 bits.
// Sums are truncated after adding 0.5; results outside [0, 255] saturate.
func quantize(sum float32) uint8 {
	v := sum + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// planeBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type planeBuffer struct {
	data []uint8
}

var tempPlanePool = sync.Pool{
	New: func() interface{} {
		return &planeBuffer{data: make([]uint8, 256*256)}
	},
}

// getTempPlane returns a scratch plane of exactly size bytes.
// Contents are unspecified; every byte is written by the horizontal pass.
func getTempPlane(size int) []uint8 {
	wrapper := tempPlanePool.Get().(*planeBuffer)
	if len(wrapper.data) < size {
		tempPlanePool.Put(wrapper)
		return make([]uint8, size)
	}
	return wrapper.data[:size]
}

// putTempPlane returns a scratch plane to the pool.
func putTempPlane(buf []uint8) {
	if cap(buf) <= 4*1024*1024 {
		tempPlanePool.Put(&planeBuffer{data: buf[:cap(buf)]})
	}
}
