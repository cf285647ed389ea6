// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger returns a text logger on stderr, or a JSON logger writing to a
// rotating file when path is set. The returned func closes the file.
func newLogger(path string, verbose bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if path == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(w, opts)), func() { _ = w.Close() }
}
