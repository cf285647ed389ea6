// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"sync"

	"github.com/chewxy/math32"
)

// GaussianKernel generates a 1D Gaussian kernel for the given blur radius.
//
// The kernel has 2*radius+1 taps; tap i corresponds to offset i-radius.
// Sigma is radius/3, so the kernel spans three standard deviations.
// Weights are the Gaussian density sampled at integer offsets:
//
//	G(x) = exp(-x²/(2σ²)) / sqrt(2πσ²)
//
// The result is not renormalized, so the weights sum to slightly less than
// 1.0 for most radii. For radius <= 0, returns the identity kernel [1.0].
func GaussianKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	kernel := make([]float32, radius*2+1)
	sigma := float32(radius) / 3
	twoSigmaSq := 2 * sigma * sigma
	factor := 1 / math32.Sqrt(math32.Pi*twoSigmaSq)

	for i := range kernel {
		x := float32(i - radius)
		kernel[i] = factor * math32.Exp(-x*x/twoSigmaSq)
	}

	return kernel
}

// kernelCache keeps Gaussian kernels by integer radius.
// Kernels are shared between callers and must not be modified.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(radius int) []float32 {
	c.mu.RLock()
	if kernel, ok := c.cache[radius]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half of the entries; radii are usually a handful of
		// theme constants so this rarely triggers.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[radius] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a shared Gaussian kernel for the radius.
// The returned slice is read-only.
func CachedGaussianKernel(radius int) []float32 {
	return defaultKernelCache.get(radius)
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
