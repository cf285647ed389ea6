// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package corners generates single-channel coverage textures for drawing
// anti-aliased rounded corners, rounded borders and soft corner shadows.
//
// # Overview
//
// All masks are built on one primitive, CornerArea, which computes the exact
// area of the intersection of the unit circle with an axis-aligned rectangle.
// Exact integration keeps small radii free of the stair-stepping that
// point-sampled or supersampled masks show.
//
//	mask := corners.CornerMask(8)          // 8×8 corner
//	ring := corners.BorderMask(8, 2)       // 2px border ring
//	soft := corners.BlurredCorner(8, 6)    // 20×20 shadow corner
//
// A mask covers one quadrant: pixel (0, 0) is the circle's center. Mirror it
// horizontally and vertically to draw the other corners of a rectangle.
//
// # Textures
//
// A Factory turns masks into textures through a TextureSink and caches one
// texture per Style:
//
//	f := corners.NewFactory(corners.NewMemorySink())
//	tex, err := f.Shadow(8, 6)
//
// Warm generates a set of styles concurrently ahead of first use.
//
// The gpusink sub-package provides a sink that uploads to a GPU through
// gpucontext.
//
// # Precision
//
// Geometry is evaluated in float32 and quantized by adding 0.5 and
// truncating, which reproduces existing reference textures bit for bit.
// The Gaussian kernel is the sampled density without renormalization.
//
// # Preconditions
//
// The generator functions do not validate their arguments: radii must be
// positive, border widths in (0, radius] and blur radii non-negative.
// Style.Validate checks these for parameters that come from outside the
// program.
package corners
