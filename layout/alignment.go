// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"

	"github.com/chewxy/math32"
)

// HAlign is a horizontal alignment.
type HAlign uint8

// Horizontal alignments.
const (
	Left HAlign = iota
	HCenter
	Right
)

// String returns the alignment name.
func (a HAlign) String() string {
	switch a {
	case Left:
		return "left"
	case HCenter:
		return "center"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("HAlign(%d)", a)
	}
}

// VAlign is a vertical alignment. Bottom is y = 0.
type VAlign uint8

// Vertical alignments.
const (
	Bottom VAlign = iota
	VCenter
	Top
)

// String returns the alignment name.
func (a VAlign) String() string {
	switch a {
	case Bottom:
		return "bottom"
	case VCenter:
		return "center"
	case Top:
		return "top"
	default:
		return fmt.Sprintf("VAlign(%d)", a)
	}
}

// Alignment positions its child without resizing it.
// Offsets are rounded to whole pixels.
type Alignment struct {
	Single
	horizontal HAlign
	vertical   VAlign
}

// NewAlignment returns an empty alignment container.
func NewAlignment(h HAlign, v VAlign) *Alignment {
	return &Alignment{horizontal: h, vertical: v}
}

// Alignment returns the horizontal and vertical alignment.
func (a *Alignment) Alignment() (HAlign, VAlign) {
	return a.horizontal, a.vertical
}

// SetAlignment changes the alignment and lays out again if it differs.
func (a *Alignment) SetAlignment(h HAlign, v VAlign) {
	if h == a.horizontal && v == a.vertical {
		return
	}
	a.horizontal, a.vertical = h, v
	a.Layout()
}

// SetChild replaces the child and positions it.
func (a *Alignment) SetChild(child Node) {
	a.setChild(child)
	a.Layout()
}

// SetSize resizes the container and positions the child.
func (a *Alignment) SetSize(width, height float32) {
	a.Box.SetSize(width, height)
	a.Layout()
}

// Layout moves the child according to the alignment.
func (a *Alignment) Layout() {
	child := a.child
	if child == nil {
		return
	}

	var x, y float32
	switch a.horizontal {
	case HCenter:
		x = math32.Round((a.width - child.Width()) / 2)
	case Right:
		x = math32.Round(a.width - child.Width())
	}
	switch a.vertical {
	case VCenter:
		y = math32.Round((a.height - child.Height()) / 2)
	case Top:
		y = math32.Round(a.height - child.Height())
	}
	child.SetLocation(x, y)
}
