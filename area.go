// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

import "github.com/chewxy/math32"

// circle returns the x coordinate of the unit circle at height y.
func circle(y float32) float32 {
	return math32.Sqrt(1 - y*y)
}

// circleIntegral is the antiderivative of sqrt(1-t²).
func circleIntegral(t float32) float32 {
	return 0.5 * (math32.Sqrt(1-t*t)*t + math32.Asin(t))
}

// CornerArea computes the exact area of the intersection of the unit circle
// centered at the origin with the rectangle (x, y, w, h).
//
// x, y, w and h must be non-negative. The result is exact up to float32
// rounding: the part of the rectangle left of the circle's boundary at its
// far edge is added as a plain rectangle and the rest is integrated
// analytically.
func CornerArea(x, y, w, h float32) float32 {
	if x*x+y*y >= 1 {
		return 0
	}

	x1 := math32.Min(x+w, 1)
	y1 := math32.Min(y+h, 1)
	var area float32

	cy1 := circle(y1)
	if cy1 >= x1 {
		// completely inside
		return w * h
	}
	if cy1 > x {
		area += (cy1 - x) * h
		x = cy1
	}

	if cy := circle(y); cy < x1 {
		x1 = cy
	}

	area += circleIntegral(x1) - circleIntegral(x) - (x1-x)*y
	return area
}

// Coverage returns the fraction in [0, 1] of the rectangle (x, y, w, h) that
// lies inside the circle of the given radius centered at the origin.
func Coverage(radius, x, y, w, h float32) float32 {
	w /= radius
	h /= radius
	return CornerArea(x/radius, y/radius, w, h) / (w * h)
}

// PixelCoverage returns the coverage of the unit pixel cell
// [x, x+1) × [y, y+1) by the circle of the given radius.
func PixelCoverage(radius float32, x, y int) float32 {
	return Coverage(radius, float32(x), float32(y), 1, 1)
}

// coverageToAlpha quantizes coverage to 8 bits, rounding half up.
// Coverage outside [0, 1] is not clamped.
func coverageToAlpha(c float32) uint8 {
	return uint8(c*255 + 0.5)
}
