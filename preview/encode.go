// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for image formats other than PNG, JPEG, BMP
// and TIFF.
var ErrUnknownFormat = errors.New("preview: unknown image format")

// Format is an output image encoding.
type Format uint8

// Supported formats.
const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 95

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// ParseFormat parses a format name or file extension.
// The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encoder returns the encoder for the format.
func (f Format) Encoder() (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case JPEG:
		return imgio.JPEGEncoder(JPEGQuality), nil
	case BMP:
		return imgio.BMPEncoder(), nil
	case TIFF:
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	enc, err := f.Encoder()
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("preview: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to the named file in the given format.
func Save(filename string, img image.Image, f Format) error {
	enc, err := f.Encoder()
	if err != nil {
		return err
	}
	if err := imgio.Save(filename, img, enc); err != nil {
		return fmt.Errorf("preview: save %s: %w", filename, err)
	}
	return nil
}
