// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filter implements the Gaussian kernel and separable blur used to
// soften single-channel coverage planes.
//
// Planes are row-major []uint8 slices with an explicit width and height.
// Sampling outside the plane is clamped to the nearest edge row or column.
// Intermediate results are quantized to 8 bits after each pass, so the
// output matches textures produced by the reference two-pass implementation.
package filter
