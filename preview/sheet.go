// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/corners/layout"
)

// Sheet defaults.
const (
	DefaultColumns = 4
	DefaultPadding = 8
)

// SheetOptions configures Compose. Zero values select the defaults;
// a negative Padding places cells edge to edge.
type SheetOptions struct {
	Columns    int
	Padding    int
	Background color.Color
	Foreground color.Color
}

func (o SheetOptions) withDefaults() SheetOptions {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Padding < 0 {
		o.Padding = 0
	} else if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.Background == nil {
		o.Background = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	}
	if o.Foreground == nil {
		o.Foreground = color.White
	}
	return o
}

// Compose paints coverage masks onto a grid of equal cells. Each mask's
// alpha channel modulates the foreground color, and the mask is centered in
// its padded cell.
func Compose(masks []image.Image, opts SheetOptions) *image.RGBA {
	opts = opts.withDefaults()
	if len(masks) == 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	var maxW, maxH int
	for _, m := range masks {
		b := m.Bounds()
		maxW = max(maxW, b.Dx())
		maxH = max(maxH, b.Dy())
	}

	cols := min(opts.Columns, len(masks))
	rows := (len(masks) + cols - 1) / cols
	cellW := maxW + 2*opts.Padding
	cellH := maxH + 2*opts.Padding

	dst := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	fg := image.NewUniform(opts.Foreground)

	tile := layout.NewBox(0, 0)
	center := layout.NewAlignment(layout.HCenter, layout.VCenter)
	center.SetChild(tile)
	cell := layout.NewPadding(float32(opts.Padding))
	cell.SetChild(center)

	for i, m := range masks {
		b := m.Bounds()
		tile.SetSize(float32(b.Dx()), float32(b.Dy()))
		cell.SetSize(float32(cellW), float32(cellH))

		// Layout coordinates grow upward from the cell's bottom edge.
		x := int(center.X() + tile.X())
		y := cellH - int(center.Y()+tile.Y()) - b.Dy()

		origin := image.Pt((i%cols)*cellW+x, (i/cols)*cellH+y)
		r := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}
		draw.DrawMask(dst, r, fg, image.Point{}, m, b.Min, draw.Over)
	}

	return dst
}
