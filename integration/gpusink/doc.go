// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpusink uploads coverage masks to the GPU through gpucontext.
//
// Masks are single-channel coverage. GPU texture creators accept RGBA only,
// so the sink expands each coverage byte c to premultiplied white
// (c, c, c, c). Tinting happens at draw time by multiplying with the fill
// color, the same way the host renderer composites premultiplied textures.
//
// # Usage
//
//	sink, err := gpusink.FromDrawer(dc.AsTextureDrawer())
//	if err != nil {
//	    return err
//	}
//	factory := corners.NewFactory(sink)
//	tex, err := factory.Shadow(8, 6)
//	if err != nil {
//	    return err
//	}
//	return gpusink.Draw(dc.AsTextureDrawer(), tex, 10, 10)
//
// # Thread Safety
//
// Sink is safe for concurrent use when the underlying TextureCreator is.
package gpusink
