// SPDX-License-Identifier: MIT
package analytics

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/socnet/recommend"
)

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger   *slog.Logger
	provider trace.TracerProvider
	cache    bool
	recOpts  []recommend.Option
}

// WithLogger sets the structured logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracerProvider sets the provider spans are created from. nil keeps the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *engineConfig) {
		if tp != nil {
			c.provider = tp
		}
	}
}

// WithReachabilityCache memoizes reachable sets per source vertex, keyed by
// the graph version.
func WithReachabilityCache() Option {
	return func(c *engineConfig) { c.cache = true }
}

// WithRecommendOptions sets the defaults applied by RecommendPairs.
func WithRecommendOptions(opts ...recommend.Option) Option {
	return func(c *engineConfig) {
		c.recOpts = append(c.recOpts, opts...)
	}
}
