// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

// sampleArea estimates the area of the unit disc inside (x, y, w, h) by
// midpoint sampling on a fine grid.
func sampleArea(x, y, w, h float64) float64 {
	const n = 400
	inside := 0
	for j := 0; j < n; j++ {
		py := y + (float64(j)+0.5)*h/n
		for i := 0; i < n; i++ {
			px := x + (float64(i)+0.5)*w/n
			if px*px+py*py <= 1 {
				inside++
			}
		}
	}
	return float64(inside) / (n * n) * w * h
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
