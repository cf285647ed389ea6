// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"errors"
	"testing"

	"github.com/gogpu/corners"
)

func TestNineSliceCorner(t *testing.T) {
	q := corners.CornerMask(4)
	img, err := NineSlice(q, 12, 10)
	if err != nil {
		t.Fatalf("NineSlice() error = %v", err)
	}

	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 12x10", b)
	}

	tests := []struct {
		name   string
		x, y   int
		qx, qy int
	}{
		{"top left", 0, 0, 3, 3},
		{"top right", 11, 0, 3, 3},
		{"bottom left", 0, 9, 3, 3},
		{"bottom right", 11, 9, 3, 3},
		{"bottom right inner", 8, 6, 0, 0},
		{"right edge", 11, 5, 3, 0},
		{"left edge", 0, 5, 3, 0},
		{"top edge", 5, 0, 0, 3},
		{"bottom edge", 6, 9, 0, 3},
		{"interior", 6, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.AlphaAt(tt.x, tt.y).A
			want := q.At(tt.qx, tt.qy)
			if got != want {
				t.Errorf("pixel (%d,%d) = %d, want quadrant (%d,%d) = %d",
					tt.x, tt.y, got, tt.qx, tt.qy, want)
			}
		})
	}
}

func TestNineSliceSymmetric(t *testing.T) {
	const w, h = 20, 16
	img, err := NineSlice(corners.BorderMask(6, 2), w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := img.AlphaAt(x, y).A
			if m := img.AlphaAt(w-1-x, y).A; m != a {
				t.Fatalf("(%d,%d)=%d but mirror x gives %d", x, y, a, m)
			}
			if m := img.AlphaAt(x, h-1-y).A; m != a {
				t.Fatalf("(%d,%d)=%d but mirror y gives %d", x, y, a, m)
			}
		}
	}

	// A border ring leaves the interior empty.
	if a := img.AlphaAt(w/2, h/2).A; a != 0 {
		t.Errorf("ring interior = %d, want 0", a)
	}
}

func TestNineSliceExactFit(t *testing.T) {
	q := corners.BlurredCorner(3, 2)
	s := q.Width()
	img, err := NineSlice(q, 2*s, 2*s)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.AlphaAt(s, s).A; got != q.At(0, 0) {
		t.Errorf("pixel (%d,%d) = %d, want %d", s, s, got, q.At(0, 0))
	}
}

func TestNineSliceErrors(t *testing.T) {
	if _, err := NineSlice(corners.CornerMask(5), 9, 20); !errors.Is(err, ErrTooSmall) {
		t.Errorf("narrow target error = %v, want ErrTooSmall", err)
	}
	if _, err := NineSlice(corners.NewBuffer(3, 2), 10, 10); err == nil {
		t.Error("non-square quadrant should fail")
	}
	if _, err := NineSlice(corners.NewBuffer(0, 0), 10, 10); err == nil {
		t.Error("empty quadrant should fail")
	}
}

func TestMagnify(t *testing.T) {
	q := corners.CornerMask(4)
	big := Magnify(q.Alpha(), 3)
	if b := big.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("bounds = %v, want 12x12", b)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if got, want := big.RGBAAt(x, y).A, q.At(x/3, y/3); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if b := Magnify(q.Alpha(), 0).Bounds(); b.Dx() != 4 {
		t.Errorf("factor 0 should keep the size, got %v", b)
	}
}
