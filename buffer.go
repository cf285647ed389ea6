// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

import "image"

// Buffer is an owned single-channel intensity plane.
// Values range from 0 (uncovered) to 255 (fully covered), stored row-major
// top to bottom.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// NewBuffer creates a new buffer with the given dimensions.
// All values are initialized to 0.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the buffer dimensions as an image.Rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.height }

// At returns the value at (x, y).
// Returns 0 for coordinates outside the buffer.
func (b *Buffer) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// Set sets the value at (x, y).
// Coordinates outside the buffer are ignored.
func (b *Buffer) Set(x, y int, value uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[y*b.width+x] = value
}

// Data returns the underlying row-major slice.
// It is the byte layout expected by a TextureSink with one channel.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Alpha returns a copy of the buffer as an *image.Alpha.
func (b *Buffer) Alpha() *image.Alpha {
	img := image.NewAlpha(b.Bounds())
	copy(img.Pix, b.data)
	return img
}
