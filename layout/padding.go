// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// Padding insets its child by the same amount on every side.
type Padding struct {
	Single
	padding float32
}

// NewPadding returns an empty padding container.
func NewPadding(padding float32) *Padding {
	return &Padding{padding: padding}
}

// Padding returns the inset.
func (p *Padding) Padding() float32 { return p.padding }

// SetPadding changes the inset and lays out again if it differs.
func (p *Padding) SetPadding(padding float32) {
	if padding == p.padding {
		return
	}
	p.padding = padding
	p.Layout()
}

// SetChild replaces the child and lays it out.
func (p *Padding) SetChild(child Node) {
	p.setChild(child)
	p.Layout()
}

// SetSize resizes the container and lays out the child.
func (p *Padding) SetSize(width, height float32) {
	p.Box.SetSize(width, height)
	p.Layout()
}

// Layout places the child at (padding, padding) and shrinks it by twice the
// padding in each dimension.
func (p *Padding) Layout() {
	child := p.child
	if child == nil {
		return
	}
	child.SetLocation(p.padding, p.padding)
	child.SetSize(p.width-2*p.padding, p.height-2*p.padding)
}
