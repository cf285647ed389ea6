// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout positions a single child inside a parent rectangle.
//
// Coordinates are float32 pixels with the origin at the bottom-left corner
// of the parent and y growing upward. Containers re-run Layout whenever their
// own size, child or parameters change, so callers only set sizes:
//
//	tile := layout.NewBox(24, 24)
//	center := layout.NewAlignment(layout.HCenter, layout.VCenter)
//	center.SetChild(tile)
//	pad := layout.NewPadding(8)
//	pad.SetChild(center)
//	pad.SetSize(100, 60) // tile is now at (30, 10) inside center
package layout
