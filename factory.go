// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/corners/cache"
	"github.com/gogpu/corners/internal/parallel"
)

// Factory generates mask textures and hands them to a TextureSink.
//
// Each distinct Style is generated once; later requests return the cached
// Texture. A Factory is safe for concurrent use.
type Factory struct {
	sink     TextureSink
	textures *cache.ShardedCache[Style, Texture]
	workers  int
}

// NewFactory creates a factory that creates textures through sink.
func NewFactory(sink TextureSink, opts ...Option) *Factory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Factory{sink: sink, workers: o.workers}
	if !o.noCache {
		f.textures = cache.NewSharded[Style, Texture](o.cacheCapacity, hashStyle, func(s Style, _ Texture) {
			Logger().Debug("corners: texture evicted", slog.String("style", s.String()))
		})
	}
	return f
}

func hashStyle(s Style) uint64 {
	return cache.IntsHasher(int(s.Kind), s.Radius, s.BorderWidth, s.BlurRadius)
}

// Texture returns the texture for style, generating it on first use.
func (f *Factory) Texture(style Style) (Texture, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if f.textures == nil {
		return f.create(style)
	}
	return f.textures.GetOrCreate(style, func() (Texture, error) {
		return f.create(style)
	})
}

// Corner returns the rounded corner texture of the given radius.
func (f *Factory) Corner(radius int) (Texture, error) {
	return f.Texture(CornerStyle(radius))
}

// Border returns the rounded border texture of the given radius and width.
func (f *Factory) Border(radius, width int) (Texture, error) {
	return f.Texture(BorderStyle(radius, width))
}

// Shadow returns the blurred corner texture of the given radius and blur.
func (f *Factory) Shadow(radius, blurRadius int) (Texture, error) {
	return f.Texture(ShadowStyle(radius, blurRadius))
}

// Warm generates the textures of styles concurrently so that later requests
// hit the cache. Every style is attempted; the errors of failing styles are
// joined in order.
func (f *Factory) Warm(ctx context.Context, styles ...Style) error {
	if len(styles) == 0 {
		return nil
	}
	workers := f.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewPool(min(workers, len(styles)))
	defer pool.Close()
	Logger().Debug("corners: warming textures",
		slog.Int("styles", len(styles)),
		slog.Int("workers", pool.Workers()))

	return pool.Run(ctx, len(styles), func(i int) error {
		_, err := f.Texture(styles[i])
		return err
	})
}

// Stats returns texture cache statistics. The zero value is returned when
// caching is disabled.
func (f *Factory) Stats() cache.Stats {
	if f.textures == nil {
		return cache.Stats{}
	}
	return f.textures.Stats()
}

// ResetStats zeroes the cache hit, miss and eviction counters. Cached
// textures are kept.
func (f *Factory) ResetStats() {
	if f.textures != nil {
		f.textures.ResetStats()
	}
}

// Purge drops every cached texture.
func (f *Factory) Purge() {
	if f.textures != nil {
		f.textures.Clear()
	}
}

func (f *Factory) create(style Style) (Texture, error) {
	buf := style.Generate()
	Logger().Debug("corners: texture generated",
		slog.String("style", style.String()),
		slog.Int("width", buf.Width()),
		slog.Int("height", buf.Height()))

	tex, err := f.sink.CreateTexture(buf.Width(), buf.Height(), 1, buf.Data())
	if err != nil {
		Logger().Warn("corners: sink rejected texture",
			slog.String("style", style.String()),
			slog.String("err", err.Error()))
		return nil, fmt.Errorf("corners: create %s texture: %w", style, err)
	}
	return tex, nil
}
