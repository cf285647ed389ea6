// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// Node is a rectangle that can be placed and resized by its parent.
type Node interface {
	X() float32
	Y() float32
	Width() float32
	Height() float32

	// SetLocation moves the node relative to its parent.
	SetLocation(x, y float32)

	// SetSize resizes the node. Containers lay out their child afterwards.
	SetSize(width, height float32)

	// Layout positions the node's children within its current bounds.
	Layout()
}

// Box is a leaf node holding only geometry.
type Box struct {
	x, y          float32
	width, height float32
}

// NewBox returns a box of the given size at the origin.
func NewBox(width, height float32) *Box {
	return &Box{width: width, height: height}
}

// X returns the horizontal offset within the parent.
func (b *Box) X() float32 { return b.x }

// Y returns the vertical offset within the parent.
func (b *Box) Y() float32 { return b.y }

// Width returns the box width.
func (b *Box) Width() float32 { return b.width }

// Height returns the box height.
func (b *Box) Height() float32 { return b.height }

// SetLocation moves the box.
func (b *Box) SetLocation(x, y float32) {
	b.x, b.y = x, y
}

// SetSize resizes the box.
func (b *Box) SetSize(width, height float32) {
	b.width, b.height = width, height
}

// Layout is a no-op for leaf boxes.
func (b *Box) Layout() {}

// Single is the geometry and child slot shared by one-child containers.
type Single struct {
	Box
	child Node
}

// Child returns the child node, or nil.
func (s *Single) Child() Node { return s.child }

func (s *Single) setChild(child Node) { s.child = child }

var (
	_ Node = (*Box)(nil)
	_ Node = (*Padding)(nil)
	_ Node = (*Alignment)(nil)
)
