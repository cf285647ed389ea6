// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command cornertex renders the mask textures of a style sheet to image
// files: the raw quadrant of each style, an assembled full-shape preview and
// a contact sheet of all previews.
//
// Usage:
//
//	cornertex -config styles.yaml [-out dir] [-format png|jpeg|bmp|tiff] [-watch]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/corners"
)

func main() {
	var (
		configPath = flag.String("config", "styles.yaml", "style sheet (.yaml, .yml or .toml)")
		outDir     = flag.String("out", "", "output directory (overrides the sheet)")
		format     = flag.String("format", "", "image format: png, jpeg, bmp or tiff (overrides the sheet)")
		watch      = flag.Bool("watch", false, "re-render whenever the style sheet changes")
		logFile    = flag.String("log-file", "", "write JSON logs to a rotating file instead of stderr")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger, closeLog := newLogger(*logFile, *verbose)
	defer closeLog()
	corners.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &renderer{
		configPath: *configPath,
		outDir:     *outDir,
		format:     *format,
		factory:    corners.NewFactory(corners.NewMemorySink()),
		logger:     logger,
	}

	if err := r.run(ctx); err != nil {
		logger.Error("render failed", "config", *configPath, "err", err)
		if !*watch {
			fmt.Fprintf(os.Stderr, "cornertex: %v\n", err)
			os.Exit(1)
		}
	}

	if *watch {
		if err := watchConfig(ctx, *configPath, r.run, logger); err != nil {
			fmt.Fprintf(os.Stderr, "cornertex: %v\n", err)
			os.Exit(1)
		}
	}
}
