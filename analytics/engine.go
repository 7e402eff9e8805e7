// SPDX-License-Identifier: MIT
package analytics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/recommend"
)

// TracerName is the instrumentation scope of Engine spans.
const TracerName = "github.com/katalvlaran/socnet/analytics"

// ErrNilGraph is returned by NewEngine for a nil graph.
var ErrNilGraph = errors.New("analytics: graph is nil")

// Engine runs analyses over one injected graph.
//
// Thread Safety: safe for concurrent use as long as the graph itself is only
// mutated through its own thread-safe methods.
type Engine struct {
	g       *core.Graph
	logger  *slog.Logger
	tracer  trace.Tracer
	cache   *reachCache
	recOpts []recommend.Option
}

// NewEngine wires g with the given options.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := engineConfig{logger: slog.Default(), provider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		g:       g,
		logger:  cfg.logger,
		tracer:  cfg.provider.Tracer(TracerName),
		recOpts: cfg.recOpts,
	}
	if cfg.cache {
		e.cache = newReachCache()
	}

	return e, nil
}

// Graph returns the analyzed graph.
func (e *Engine) Graph() *core.Graph { return e.g }

// CacheStats reports the reachability cache counters; ok is false when the
// cache is disabled.
func (e *Engine) CacheStats() (CacheStats, bool) {
	if e.cache == nil {
		return CacheStats{}, false
	}

	return e.cache.stats(), true
}

// op tracks one traced, logged Engine call.
type op struct {
	name  string
	span  trace.Span
	start time.Time
	log   *slog.Logger
}

// begin opens the span "analytics.<name>" with graph size attributes.
func (e *Engine) begin(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *op) {
	if ctx == nil {
		ctx = context.Background()
	}
	n, m := e.g.VertexCount(), e.g.EdgeCount()
	base := []attribute.KeyValue{
		attribute.Int("node_count", n),
		attribute.Int("edge_count", m),
		attribute.Bool("directed", e.g.Directed()),
	}
	ctx, span := e.tracer.Start(ctx, "analytics."+name, trace.WithAttributes(append(base, attrs...)...))

	return ctx, &op{name: name, span: span, start: time.Now(), log: e.logger}
}

// end records err and result attributes, logs, and closes the span.
func (o *op) end(err error, attrs ...attribute.KeyValue) {
	o.span.SetAttributes(attrs...)
	elapsed := time.Since(o.start)
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
		o.log.Warn("analysis failed",
			slog.String("op", o.name),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
	} else {
		args := []any{slog.String("op", o.name), slog.Duration("elapsed", elapsed)}
		for _, a := range attrs {
			args = append(args, slog.Any(string(a.Key), a.Value.AsInterface()))
		}
		o.log.Debug("analysis completed", args...)
	}
	o.span.End()
}
