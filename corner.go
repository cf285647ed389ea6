// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

// CornerMask returns the coverage mask of one rounded corner.
//
// The mask is radius×radius. Pixel (0, 0) sits at the circle's center and is
// fully covered; coverage falls to zero towards (radius-1, radius-1). Callers
// mirror the mask to obtain the other three corners of a rounded rectangle.
//
// radius must be positive.
func CornerMask(radius int) *Buffer {
	buf := NewBuffer(radius, radius)
	r := float32(radius)

	for y := 0; y < radius; y++ {
		row := buf.data[y*radius : (y+1)*radius]
		for x := range row {
			row[x] = coverageToAlpha(PixelCoverage(r, x, y))
		}
	}

	return buf
}

// BorderMask returns the coverage mask of a rounded border ring of the given
// width: the corner coverage of radius minus the corner coverage of
// radius-borderWidth.
//
// The mask is radius×radius. borderWidth must be in (0, radius]; when it
// equals radius the inner circle is empty and the result equals CornerMask.
func BorderMask(radius, borderWidth int) *Buffer {
	buf := NewBuffer(radius, radius)
	outer := float32(radius)
	inner := float32(radius - borderWidth)

	for y := 0; y < radius; y++ {
		row := buf.data[y*radius : (y+1)*radius]
		for x := range row {
			c := PixelCoverage(outer, x, y)
			if inner > 0 {
				c -= PixelCoverage(inner, x, y)
			}
			row[x] = coverageToAlpha(c)
		}
	}

	return buf
}
