// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStyle is returned for style parameters outside the generators'
// preconditions.
var ErrInvalidStyle = errors.New("corners: invalid style")

// Kind selects which mask a Style generates.
type Kind uint8

const (
	// KindCorner is an anti-aliased rounded corner (CornerMask).
	KindCorner Kind = iota
	// KindBorder is a rounded border ring (BorderMask).
	KindBorder
	// KindShadow is a blurred corner shadow (BlurredCorner).
	KindShadow
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindBorder:
		return "border"
	case KindShadow:
		return "shadow"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind parses the name returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corner":
		return KindCorner, nil
	case "border":
		return KindBorder, nil
	case "shadow":
		return KindShadow, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidStyle, s)
}

// Style is one parameterization of a mask. Styles are comparable and serve
// as texture cache keys; fields a kind does not use must be zero.
type Style struct {
	Kind        Kind
	Radius      int
	BorderWidth int
	BlurRadius  int
}

// CornerStyle returns the style of CornerMask(radius).
func CornerStyle(radius int) Style {
	return Style{Kind: KindCorner, Radius: radius}
}

// BorderStyle returns the style of BorderMask(radius, width).
func BorderStyle(radius, width int) Style {
	return Style{Kind: KindBorder, Radius: radius, BorderWidth: width}
}

// ShadowStyle returns the style of BlurredCorner(radius, blurRadius).
func ShadowStyle(radius, blurRadius int) Style {
	return Style{Kind: KindShadow, Radius: radius, BlurRadius: blurRadius}
}

// String returns a compact description such as "border r=8 w=2".
func (s Style) String() string {
	switch s.Kind {
	case KindBorder:
		return fmt.Sprintf("%s r=%d w=%d", s.Kind, s.Radius, s.BorderWidth)
	case KindShadow:
		return fmt.Sprintf("%s r=%d blur=%d", s.Kind, s.Radius, s.BlurRadius)
	default:
		return fmt.Sprintf("%s r=%d", s.Kind, s.Radius)
	}
}

// Validate reports whether the style satisfies the preconditions of its
// generator.
func (s Style) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("%w: %s: radius must be positive", ErrInvalidStyle, s)
	}

	switch s.Kind {
	case KindCorner:
		if s.BorderWidth != 0 || s.BlurRadius != 0 {
			return fmt.Errorf("%w: %s: corner takes no border width or blur", ErrInvalidStyle, s)
		}
	case KindBorder:
		if s.BorderWidth <= 0 || s.BorderWidth > s.Radius {
			return fmt.Errorf("%w: %s: border width must be in (0, radius]", ErrInvalidStyle, s)
		}
		if s.BlurRadius != 0 {
			return fmt.Errorf("%w: %s: border takes no blur", ErrInvalidStyle, s)
		}
	case KindShadow:
		if s.BlurRadius < 0 {
			return fmt.Errorf("%w: %s: blur radius must not be negative", ErrInvalidStyle, s)
		}
		if s.BorderWidth != 0 {
			return fmt.Errorf("%w: %s: shadow takes no border width", ErrInvalidStyle, s)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidStyle, s.Kind)
	}

	return nil
}

// Generate builds the mask described by the style.
// The style must be valid.
func (s Style) Generate() *Buffer {
	switch s.Kind {
	case KindBorder:
		return BorderMask(s.Radius, s.BorderWidth)
	case KindShadow:
		return BlurredCorner(s.Radius, s.BlurRadius)
	default:
		return CornerMask(s.Radius)
	}
}

// Size returns the side length of the square mask the style generates.
func (s Style) Size() int {
	if s.Kind == KindShadow {
		return s.Radius + 2*s.BlurRadius
	}
	return s.Radius
}
