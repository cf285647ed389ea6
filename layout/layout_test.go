// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "testing"

// countingBox records how often it is placed.
type countingBox struct {
	Box
	moves   int
	resizes int
}

func (c *countingBox) SetLocation(x, y float32) {
	c.Box.SetLocation(x, y)
	c.moves++
}

func (c *countingBox) SetSize(width, height float32) {
	c.Box.SetSize(width, height)
	c.resizes++
}

func checkRect(t *testing.T, n Node, x, y, w, h float32) {
	t.Helper()
	if n.X() != x || n.Y() != y || n.Width() != w || n.Height() != h {
		t.Errorf("rect = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
			n.X(), n.Y(), n.Width(), n.Height(), x, y, w, h)
	}
}

func TestPadding(t *testing.T) {
	child := NewBox(0, 0)
	p := NewPadding(5)
	p.SetChild(child)
	p.SetSize(40, 30)

	checkRect(t, child, 5, 5, 30, 20)

	p.SetPadding(2)
	checkRect(t, child, 2, 2, 36, 26)

	if p.Padding() != 2 {
		t.Errorf("Padding() = %v, want 2", p.Padding())
	}
}

func TestPaddingUnchangedSkipsLayout(t *testing.T) {
	child := &countingBox{}
	p := NewPadding(4)
	p.SetChild(child)
	p.SetSize(20, 20)
	moves := child.moves

	p.SetPadding(4)
	if child.moves != moves {
		t.Errorf("SetPadding with the same value laid out again (%d moves, want %d)", child.moves, moves)
	}

	p.SetPadding(3)
	if child.moves != moves+1 {
		t.Errorf("SetPadding with a new value: %d moves, want %d", child.moves, moves+1)
	}
}

func TestPaddingWithoutChild(t *testing.T) {
	p := NewPadding(3)
	p.SetSize(10, 10)
	p.SetPadding(1)
	if p.Child() != nil {
		t.Error("Child() should be nil")
	}
	checkRect(t, p, 0, 0, 10, 10)
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		name string
		h    HAlign
		v    VAlign
		x, y float32
	}{
		{"bottom left", Left, Bottom, 0, 0},
		{"center", HCenter, VCenter, 35, 15},
		{"top right", Right, Top, 70, 30},
		{"top left", Left, Top, 0, 30},
		{"bottom right", Right, Bottom, 70, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := NewBox(30, 20)
			a := NewAlignment(tt.h, tt.v)
			a.SetChild(child)
			a.SetSize(100, 50)
			checkRect(t, child, tt.x, tt.y, 30, 20)
		})
	}
}

func TestAlignmentRounds(t *testing.T) {
	child := NewBox(10, 10)
	a := NewAlignment(HCenter, VCenter)
	a.SetChild(child)

	// (25-10)/2 = 7.5 rounds half away from zero; 20.6-10 = 10.6 rounds up.
	a.SetSize(25, 20.6)
	if child.X() != 8 {
		t.Errorf("X() = %v, want 8", child.X())
	}
	if child.Y() != 5 {
		t.Errorf("Y() = %v, want 5", child.Y())
	}

	a.SetAlignment(Right, Top)
	if child.X() != 15 || child.Y() != 11 {
		t.Errorf("location = (%v, %v), want (15, 11)", child.X(), child.Y())
	}
}

func TestAlignmentDoesNotResizeChild(t *testing.T) {
	child := &countingBox{Box: Box{width: 4, height: 4}}
	a := NewAlignment(HCenter, VCenter)
	a.SetChild(child)
	a.SetSize(10, 10)

	if child.resizes != 0 {
		t.Errorf("child resized %d times", child.resizes)
	}

	moves := child.moves
	a.SetAlignment(HCenter, VCenter)
	if child.moves != moves {
		t.Error("SetAlignment with unchanged values laid out again")
	}

	h, v := a.Alignment()
	if h != HCenter || v != VCenter {
		t.Errorf("Alignment() = %v, %v", h, v)
	}
}

func TestNested(t *testing.T) {
	tile := NewBox(24, 24)
	center := NewAlignment(HCenter, VCenter)
	center.SetChild(tile)
	pad := NewPadding(8)
	pad.SetChild(center)
	pad.SetSize(100, 60)

	checkRect(t, center, 8, 8, 84, 44)
	checkRect(t, tile, 30, 10, 24, 24)
}

func TestAlignString(t *testing.T) {
	if Left.String() != "left" || HCenter.String() != "center" || Right.String() != "right" {
		t.Error("HAlign names")
	}
	if Bottom.String() != "bottom" || VCenter.String() != "center" || Top.String() != "top" {
		t.Error("VAlign names")
	}
	if HAlign(9).String() != "HAlign(9)" || VAlign(9).String() != "VAlign(9)" {
		t.Error("unknown alignment names")
	}
}
