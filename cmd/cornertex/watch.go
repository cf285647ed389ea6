// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchConfig calls render each time the file at path is written or
// created, until ctx is done. Editors often replace files instead of writing
// them, so the parent directory is watched.
func watchConfig(ctx context.Context, path string, render func(context.Context) error, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching style sheet", "config", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isChange(event, abs) {
				continue
			}
			logger.Debug("style sheet changed", "op", event.Op.String())
			if err := render(ctx); err != nil {
				logger.Error("render failed", "config", abs, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

func isChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
