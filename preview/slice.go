// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"

	"github.com/gogpu/corners"
)

// ErrTooSmall is returned when the target cannot hold two quadrants per side.
var ErrTooSmall = errors.New("preview: target smaller than two quadrants")

// NineSlice assembles a width x height coverage image from a square
// quadrant mask. width and height must each be at least twice the quadrant
// size.
func NineSlice(quadrant *corners.Buffer, width, height int) (*image.Alpha, error) {
	s := quadrant.Width()
	if s == 0 || quadrant.Height() != s {
		return nil, fmt.Errorf("preview: quadrant must be square and non-empty, got %dx%d",
			quadrant.Width(), quadrant.Height())
	}
	if width < 2*s || height < 2*s {
		return nil, fmt.Errorf("%w: %dx%d for quadrant %d", ErrTooSmall, width, height, s)
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	q := quadrant.Alpha()

	// Interior takes the quadrant's innermost value.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(q.At(0, 0)), image.Point{}, draw.Src)

	// Corners. The quadrant as stored belongs at the bottom right.
	left := transform.FlipH(q)
	placed := []struct {
		img image.Image
		at  image.Point
	}{
		{transform.FlipV(left), image.Pt(0, 0)},
		{transform.FlipV(q), image.Pt(width-s, 0)},
		{left, image.Pt(0, height-s)},
		{q, image.Pt(width-s, height-s)},
	}
	for _, c := range placed {
		draw.Draw(dst, image.Rectangle{Min: c.at, Max: c.at.Add(image.Pt(s, s))}, c.img, image.Point{}, draw.Src)
	}

	// Edges repeat the quadrant's first row (vertical edges) and first
	// column (horizontal edges).
	if inner := height - 2*s; inner > 0 {
		right := transform.Resize(edgeRow(quadrant), s, inner, transform.NearestNeighbor)
		draw.Draw(dst, image.Rect(width-s, s, width, s+inner), right, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(0, s, s, s+inner), transform.FlipH(right), image.Point{}, draw.Src)
	}
	if inner := width - 2*s; inner > 0 {
		bottom := transform.Resize(edgeColumn(quadrant), inner, s, transform.NearestNeighbor)
		draw.Draw(dst, image.Rect(s, height-s, s+inner, height), bottom, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(s, 0, s+inner, s), transform.FlipV(bottom), image.Point{}, draw.Src)
	}

	return dst, nil
}

func edgeRow(q *corners.Buffer) *image.Alpha {
	row := corners.NewBuffer(q.Width(), 1)
	for x := 0; x < q.Width(); x++ {
		row.Set(x, 0, q.At(x, 0))
	}
	return row.Alpha()
}

func edgeColumn(q *corners.Buffer) *image.Alpha {
	col := corners.NewBuffer(1, q.Height())
	for y := 0; y < q.Height(); y++ {
		col.Set(0, y, q.At(0, y))
	}
	return col.Alpha()
}

// Magnify scales img by an integer factor without smoothing, so single mask
// pixels stay visible.
func Magnify(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	if factor < 1 {
		factor = 1
	}
	return transform.Resize(img, b.Dx()*factor, b.Dy()*factor, transform.NearestNeighbor)
}
