// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// Texture errors.
var (
	// ErrInvalidDimensions is returned for non-positive width, height or
	// channel count.
	ErrInvalidDimensions = errors.New("corners: texture dimensions must be positive")

	// ErrDataSize is returned when the pixel data does not hold exactly
	// width*height*channels bytes.
	ErrDataSize = errors.New("corners: texture data size does not match dimensions")
)

// Texture is an immutable renderable handle created from a finished buffer.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Channels returns the number of 8-bit channels per pixel.
	Channels() int
}

// TextureSink turns finished pixel data into textures.
//
// data holds width*height*channels bytes, row-major, top to bottom.
// CreateTexture copies or consumes the bytes before returning; callers must
// not rely on data afterwards.
type TextureSink interface {
	CreateTexture(width, height, channels int, data []byte) (Texture, error)
}

// CheckTextureData validates texture dimensions against the data length.
func CheckTextureData(width, height, channels int, data []byte) error {
	if width <= 0 || height <= 0 || channels <= 0 {
		return fmt.Errorf("%w: %dx%d with %d channels", ErrInvalidDimensions, width, height, channels)
	}
	if want := width * height * channels; len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(data), want)
	}
	return nil
}

// TextureFormat returns the WebGPU format matching an 8-bit unorm texture
// with the given channel count, or TextureFormatUndefined.
func TextureFormat(channels int) gputypes.TextureFormat {
	switch channels {
	case 1:
		return gputypes.TextureFormatR8Unorm
	case 2:
		return gputypes.TextureFormatRG8Unorm
	case 4:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// MemorySink is a TextureSink that keeps texture pixels in memory.
// It is safe for concurrent use.
type MemorySink struct {
	created atomic.Int64
}

// NewMemorySink creates an in-memory texture sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// CreateTexture copies data into a new MemoryTexture.
func (s *MemorySink) CreateTexture(width, height, channels int, data []byte) (Texture, error) {
	if err := CheckTextureData(width, height, channels, data); err != nil {
		return nil, err
	}

	pix := make([]byte, len(data))
	copy(pix, data)
	s.created.Add(1)

	return &MemoryTexture{
		width:    width,
		height:   height,
		channels: channels,
		pix:      pix,
	}, nil
}

// Created returns the number of textures created so far.
func (s *MemorySink) Created() int {
	return int(s.created.Load())
}

// MemoryTexture is a texture held in main memory.
type MemoryTexture struct {
	width    int
	height   int
	channels int
	pix      []byte
}

// Width returns the texture width in pixels.
func (t *MemoryTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *MemoryTexture) Height() int { return t.height }

// Channels returns the number of channels per pixel.
func (t *MemoryTexture) Channels() int { return t.channels }

// Format returns the WebGPU texture format of the pixels.
func (t *MemoryTexture) Format() gputypes.TextureFormat { return TextureFormat(t.channels) }

// Pix returns the texture bytes. The slice must not be modified.
func (t *MemoryTexture) Pix() []byte { return t.pix }

// Buffer returns a copy of a single-channel texture as a Buffer,
// or nil for multi-channel textures.
func (t *MemoryTexture) Buffer() *Buffer {
	if t.channels != 1 {
		return nil
	}
	buf := NewBuffer(t.width, t.height)
	copy(buf.data, t.pix)
	return buf
}

var _ TextureSink = (*MemorySink)(nil)
