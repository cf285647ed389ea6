// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package corners

// Option configures a Factory during creation.
//
// Example:
//
//	f := corners.NewFactory(sink, corners.WithCacheCapacity(16))
type Option func(*factoryOptions)

type factoryOptions struct {
	cacheCapacity int
	noCache       bool
	workers       int
}

func defaultOptions() factoryOptions {
	return factoryOptions{
		cacheCapacity: 0, // cache.DefaultCapacity
	}
}

// WithCacheCapacity sets the per-shard capacity of the texture cache.
// Values <= 0 select the default.
func WithCacheCapacity(n int) Option {
	return func(o *factoryOptions) {
		o.cacheCapacity = n
	}
}

// WithoutCache disables texture caching: every request generates and
// uploads a new texture.
func WithoutCache() Option {
	return func(o *factoryOptions) {
		o.noCache = true
	}
}

// WithWorkers sets how many goroutines Factory.Warm uses.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *factoryOptions) {
		o.workers = n
	}
}
