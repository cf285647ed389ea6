// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads style sheets describing which mask textures to build.
//
// A sheet is YAML or TOML with the same schema:
//
//	output: out
//	format: png
//	columns: 4
//	preview: {width: 160, height: 96}
//	styles:
//	  - {name: button, kind: corner, radius: 8}
//	  - {name: field, kind: border, radius: 6, width: 2}
//	  - {name: card, kind: shadow, radius: 8, blur: 6}
//
// Environment variables override the output settings at load time.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/corners"
	"github.com/gogpu/corners/preview"
)

// ErrUnknownFormat is returned for style sheet files that are neither YAML
// nor TOML.
var ErrUnknownFormat = errors.New("config: unknown style sheet format")

// ErrInvalidSheet is returned when a style sheet fails validation.
var ErrInvalidSheet = errors.New("config: invalid style sheet")

// Output file names. Each style writes <name><ext> and
// <name>MaskSuffix<ext>; the contact sheet is SheetName<ext>.
const (
	SheetName  = "sheet"
	MaskSuffix = "_mask"
)

// Env var names used as overrides.
const (
	EnvOutput = "CORNERTEX_OUTPUT"
	EnvFormat = "CORNERTEX_FORMAT"
)

// Encoding is a style sheet file encoding.
type Encoding uint8

// Supported encodings.
const (
	YAML Encoding = iota
	TOML
)

// EncodingFor picks the encoding from a file extension.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// StyleEntry is one named style in a sheet.
type StyleEntry struct {
	Name   string `yaml:"name" toml:"name"`
	Kind   string `yaml:"kind" toml:"kind"`
	Radius int    `yaml:"radius" toml:"radius"`
	Width  int    `yaml:"width,omitempty" toml:"width,omitempty"`
	Blur   int    `yaml:"blur,omitempty" toml:"blur,omitempty"`
}

// Style converts the entry to a corners.Style and validates it.
func (e StyleEntry) Style() (corners.Style, error) {
	kind, err := corners.ParseKind(e.Kind)
	if err != nil {
		return corners.Style{}, err
	}
	s := corners.Style{
		Kind:        kind,
		Radius:      e.Radius,
		BorderWidth: e.Width,
		BlurRadius:  e.Blur,
	}
	if err := s.Validate(); err != nil {
		return corners.Style{}, err
	}
	return s, nil
}

// PreviewConfig sizes the assembled full-shape previews.
// Zero values select four quadrants per side. Magnify scales the written
// quadrant masks by an integer factor; 0 and 1 keep them at size.
type PreviewConfig struct {
	Width   int `yaml:"width" toml:"width"`
	Height  int `yaml:"height" toml:"height"`
	Magnify int `yaml:"magnify,omitempty" toml:"magnify,omitempty"`
}

// Sheet is a parsed style sheet.
type Sheet struct {
	Output  string        `yaml:"output" toml:"output"`
	Format  string        `yaml:"format" toml:"format"`
	Columns int           `yaml:"columns,omitempty" toml:"columns,omitempty"`
	Preview PreviewConfig `yaml:"preview" toml:"preview"`
	Styles  []StyleEntry  `yaml:"styles" toml:"styles"`
}

// Defaults returns a sheet with default output settings and no styles.
func Defaults() Sheet {
	return Sheet{
		Output:  "out",
		Format:  preview.PNG.String(),
		Columns: preview.DefaultColumns,
	}
}

// Load reads and validates the style sheet at path.
func Load(path string) (Sheet, error) {
	enc, err := EncodingFor(path)
	if err != nil {
		return Sheet{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("config: %w", err)
	}
	sheet, err := Parse(data, enc)
	if err != nil {
		return Sheet{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return sheet, nil
}

// Parse decodes data, merges it over Defaults, applies environment
// overrides and validates the result. Unknown fields are rejected.
func Parse(data []byte, enc Encoding) (Sheet, error) {
	var file Sheet
	switch enc {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return Sheet{}, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return Sheet{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Sheet{}, fmt.Errorf("%w: encoding %d", ErrUnknownFormat, enc)
	}

	sheet := Defaults()
	mergeInto(&sheet, &file)
	applyEnvOverrides(&sheet)

	if err := sheet.Validate(); err != nil {
		return Sheet{}, err
	}
	return sheet, nil
}

func mergeInto(dst, src *Sheet) {
	if v := strings.TrimSpace(src.Output); v != "" {
		dst.Output = v
	}
	if v := strings.TrimSpace(src.Format); v != "" {
		dst.Format = strings.ToLower(v)
	}
	if src.Columns != 0 {
		dst.Columns = src.Columns
	}
	dst.Preview = src.Preview
	dst.Styles = src.Styles
}

func applyEnvOverrides(s *Sheet) {
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		s.Output = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		s.Format = strings.ToLower(v)
	}
}

// Validate checks the output settings and every style entry.
func (s Sheet) Validate() error {
	if _, err := preview.ParseFormat(s.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSheet, err)
	}
	if s.Columns < 0 {
		return fmt.Errorf("%w: columns must not be negative", ErrInvalidSheet)
	}
	if s.Preview.Width < 0 || s.Preview.Height < 0 {
		return fmt.Errorf("%w: preview size must not be negative", ErrInvalidSheet)
	}
	if s.Preview.Magnify < 0 {
		return fmt.Errorf("%w: preview magnify must not be negative", ErrInvalidSheet)
	}
	if len(s.Styles) == 0 {
		return fmt.Errorf("%w: no styles", ErrInvalidSheet)
	}

	// Output stems are compared case-insensitively so sheets behave the
	// same on case-insensitive file systems. An empty owner is the sheet.
	owners := map[string]string{SheetName: ""}
	for i, e := range s.Styles {
		if err := checkName(e.Name); err != nil {
			return fmt.Errorf("%w: style %d: %w", ErrInvalidSheet, i, err)
		}
		for _, stem := range []string{e.Name, e.Name + MaskSuffix} {
			key := strings.ToLower(stem)
			if owner, ok := owners[key]; ok {
				return fmt.Errorf("%w: style %q: output %q collides with %s",
					ErrInvalidSheet, e.Name, stem, describeOwner(owner))
			}
			owners[key] = e.Name
		}

		st, err := e.Style()
		if err != nil {
			return fmt.Errorf("%w: style %q: %w", ErrInvalidSheet, e.Name, err)
		}
		if w, h := s.PreviewSize(st); w < 2*st.Size() || h < 2*st.Size() {
			return fmt.Errorf("%w: style %q: preview %dx%d cannot hold a %d px quadrant twice",
				ErrInvalidSheet, e.Name, w, h, st.Size())
		}
	}
	return nil
}

// checkName rejects style names that are unusable as a file name in the
// output directory.
func checkName(name string) error {
	switch {
	case name == "":
		return errors.New("no name")
	case strings.ContainsAny(name, `/\:`):
		return fmt.Errorf("name %q contains a path separator", name)
	case strings.Contains(name, ".."):
		return fmt.Errorf("name %q contains %q", name, "..")
	}
	return nil
}

func describeOwner(name string) string {
	if name == "" {
		return "the contact sheet"
	}
	return fmt.Sprintf("style %q", name)
}

// OutputFormat returns the parsed output image format.
func (s Sheet) OutputFormat() preview.Format {
	f, _ := preview.ParseFormat(s.Format)
	return f
}

// PreviewSize returns the preview dimensions for a style.
func (s Sheet) PreviewSize(st corners.Style) (width, height int) {
	width, height = s.Preview.Width, s.Preview.Height
	if width == 0 {
		width = 4 * st.Size()
	}
	if height == 0 {
		height = 4 * st.Size()
	}
	return width, height
}

// Marshal encodes the sheet in the given encoding.
func (s Sheet) Marshal(enc Encoding) ([]byte, error) {
	switch enc {
	case YAML:
		return yaml.Marshal(s)
	case TOML:
		return toml.Marshal(s)
	}
	return nil, fmt.Errorf("%w: encoding %d", ErrUnknownFormat, enc)
}
