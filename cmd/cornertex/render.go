// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/corners"
	"github.com/gogpu/corners/config"
	"github.com/gogpu/corners/preview"
)

type renderer struct {
	configPath string
	outDir     string
	format     string
	factory    *corners.Factory
	logger     *slog.Logger
}

// run loads the style sheet and writes every output file.
func (r *renderer) run(ctx context.Context) error {
	sheet, err := config.Load(r.configPath)
	if err != nil {
		return err
	}
	// Stats are logged per run.
	r.factory.ResetStats()
	if r.outDir != "" {
		sheet.Output = r.outDir
	}
	if r.format != "" {
		sheet.Format = r.format
		if err := sheet.Validate(); err != nil {
			return err
		}
	}
	format := sheet.OutputFormat()

	if err := os.MkdirAll(sheet.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	styles := make([]corners.Style, len(sheet.Styles))
	for i, e := range sheet.Styles {
		if styles[i], err = e.Style(); err != nil {
			return fmt.Errorf("style %q: %w", e.Name, err)
		}
	}
	if err := r.factory.Warm(ctx, styles...); err != nil {
		return err
	}

	previews := make([]image.Image, 0, len(sheet.Styles))
	for i, e := range sheet.Styles {
		if err := ctx.Err(); err != nil {
			return err
		}

		full, err := r.renderStyle(sheet, e, styles[i], format)
		if err != nil {
			return fmt.Errorf("style %q: %w", e.Name, err)
		}
		previews = append(previews, full)
	}

	contact := preview.Compose(previews, preview.SheetOptions{Columns: sheet.Columns})
	path := filepath.Join(sheet.Output, config.SheetName+format.Ext())
	if err := preview.Save(path, contact, format); err != nil {
		return err
	}

	st := r.factory.Stats()
	r.logger.Info("rendered style sheet",
		"config", r.configPath,
		"styles", len(sheet.Styles),
		"output", sheet.Output,
		"format", format.String(),
		"cache_hits", st.Hits,
		"cache_misses", st.Misses)
	return nil
}

// renderStyle writes the quadrant mask and the assembled preview of one
// style and returns the preview.
func (r *renderer) renderStyle(sheet config.Sheet, e config.StyleEntry, st corners.Style, format preview.Format) (image.Image, error) {
	tex, err := r.factory.Texture(st)
	if err != nil {
		return nil, err
	}
	mt, ok := tex.(*corners.MemoryTexture)
	if !ok {
		return nil, fmt.Errorf("unexpected texture type %T", tex)
	}
	quadrant := mt.Buffer()

	var mask image.Image = quadrant.Alpha()
	if sheet.Preview.Magnify > 1 {
		mask = preview.Magnify(mask, sheet.Preview.Magnify)
	}
	maskPath := filepath.Join(sheet.Output, e.Name+config.MaskSuffix+format.Ext())
	if err := preview.Save(maskPath, mask, format); err != nil {
		return nil, err
	}

	w, h := sheet.PreviewSize(st)
	full, err := preview.NineSlice(quadrant, w, h)
	if err != nil {
		return nil, err
	}
	if err := preview.Save(filepath.Join(sheet.Output, e.Name+format.Ext()), full, format); err != nil {
		return nil, err
	}

	r.logger.Debug("rendered style", "name", e.Name, "style", st.String(), "preview_w", w, "preview_h", h)
	return full, nil
}
