// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpusink

import (
	"errors"
	"fmt"

	"github.com/gogpu/corners"
	"github.com/gogpu/gpucontext"
)

// Sink errors.
var (
	// ErrNilCreator is returned when a nil TextureCreator is passed.
	ErrNilCreator = errors.New("gpusink: nil TextureCreator")

	// ErrUnsupportedChannels is returned for pixel layouts other than
	// one-channel coverage or four-channel RGBA.
	ErrUnsupportedChannels = errors.New("gpusink: unsupported channel count")

	// ErrForeignTexture is returned when Draw is given a texture that was
	// not created by a Sink.
	ErrForeignTexture = errors.New("gpusink: texture was not created by gpusink")
)

// textureDestroyer matches the Destroy method of host textures.
type textureDestroyer interface {
	Destroy()
}

// Sink is a corners.TextureSink that creates GPU textures.
type Sink struct {
	creator gpucontext.TextureCreator
}

// New returns a Sink that creates textures with creator.
func New(creator gpucontext.TextureCreator) (*Sink, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	return &Sink{creator: creator}, nil
}

// FromDrawer returns a Sink using the texture creator of dc, so that the
// created textures can be drawn by dc.
func FromDrawer(dc gpucontext.TextureDrawer) (*Sink, error) {
	if dc == nil {
		return nil, ErrNilCreator
	}
	return New(dc.TextureCreator())
}

// CreateTexture uploads width*height pixels of channels bytes each.
// One-channel data is expanded to premultiplied RGBA before upload.
func (s *Sink) CreateTexture(width, height, channels int, data []byte) (corners.Texture, error) {
	if err := corners.CheckTextureData(width, height, channels, data); err != nil {
		return nil, err
	}

	var rgba []byte
	switch channels {
	case 1:
		rgba = ExpandCoverage(data)
	case 4:
		rgba = data
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	gpuTex, err := s.creator.NewTextureFromRGBA(width, height, rgba)
	if err != nil {
		return nil, fmt.Errorf("gpusink: NewTextureFromRGBA failed: %w", err)
	}

	// Expanded coverage is premultiplied; mark the texture so the host picks
	// the BlendFactorOne pipeline.
	if pt, ok := gpuTex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	corners.Logger().Debug("gpusink: texture uploaded",
		"width", width, "height", height, "channels", channels)

	return &Texture{
		gpu:      gpuTex,
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// ExpandCoverage converts coverage bytes to premultiplied white RGBA.
func ExpandCoverage(coverage []byte) []byte {
	rgba := make([]byte, 4*len(coverage))
	for i, c := range coverage {
		j := 4 * i
		rgba[j] = c
		rgba[j+1] = c
		rgba[j+2] = c
		rgba[j+3] = c
	}
	return rgba
}

// Texture is a GPU texture created by a Sink.
type Texture struct {
	gpu      gpucontext.Texture
	width    int
	height   int
	channels int
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Channels returns the channel count of the source data, which is 1 for
// coverage masks even though the GPU copy is RGBA.
func (t *Texture) Channels() int { return t.channels }

// GPU returns the underlying host texture, or nil after Destroy.
func (t *Texture) GPU() gpucontext.Texture { return t.gpu }

// Destroy releases the host texture if it supports explicit destruction.
// Destroy is idempotent.
func (t *Texture) Destroy() {
	if t.gpu == nil {
		return
	}
	if d, ok := t.gpu.(textureDestroyer); ok {
		d.Destroy()
	}
	t.gpu = nil
}

// Draw draws a texture created by a Sink at (x, y) with dc.
// (0, 0) is the top-left corner of the target.
func Draw(dc gpucontext.TextureDrawer, tex corners.Texture, x, y float32) error {
	t, ok := tex.(*Texture)
	if !ok || t.gpu == nil {
		return ErrForeignTexture
	}
	return dc.DrawTexture(t.gpu, x, y)
}

var _ corners.TextureSink = (*Sink)(nil)
