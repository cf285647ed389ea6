// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview turns quadrant masks into viewable images.
//
// A mask from package corners covers one quadrant: pixel (0, 0) faces the
// shape's interior and coverage falls off toward the far edges. NineSlice
// mirrors the quadrant into all four corners and stretches its first row
// and column along the edges, producing the coverage of a whole rounded
// rectangle, border ring or shadow. Compose lays several such images out on
// a contact sheet, and Save writes the result as PNG, JPEG, BMP or TIFF.
package preview
