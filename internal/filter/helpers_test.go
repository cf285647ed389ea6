// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import "strconv"

// Test helper functions shared across filter tests.

// uniformPlane creates a width×height plane filled with value.
func uniformPlane(width, height int, value uint8) []uint8 {
	p := make([]uint8, width*height)
	for i := range p {
		p[i] = value
	}
	return p
}

// kernelSum returns the sum of all kernel weights.
func kernelSum(kernel []float32) float32 {
	var sum float32
	for _, v := range kernel {
		sum += v
	}
	return sum
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func fmtRadius(r int) string {
	return "r=" + strconv.Itoa(r)
}
