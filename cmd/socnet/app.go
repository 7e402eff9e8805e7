// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/socnet/analytics"
	"github.com/katalvlaran/socnet/config"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/loader"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out, errOut io.Writer

	configPath string
	cfg        config.Config
	logger     *slog.Logger
	tp         *sdktrace.TracerProvider

	graph  *core.Graph
	engine *analytics.Engine
}

// setup loads configuration, applies flag overrides and builds the logger.
// The graph itself is loaded lazily by analysisEngine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err = applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := cfg.Logging.SlogLevel()
	if err != nil {
		return err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(a.errOut, hopts)
	if strings.EqualFold(cfg.Logging.Format, "json") {
		h = slog.NewJSONHandler(a.errOut, hopts)
	}
	a.logger = slog.New(h)

	if cfg.Tracing.Enabled {
		a.tp = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(newLogSpanProcessor(a.logger)))
	}

	return nil
}

// teardown flushes the tracer provider.
func (a *app) teardown(ctx context.Context) error {
	if a.tp == nil {
		return nil
	}

	return a.tp.Shutdown(ctx)
}

// analysisEngine loads the configured graph, reduces it to TopN members and
// wraps it in an Engine. Subsequent calls reuse the first result.
func (a *app) analysisEngine() (*analytics.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}
	gc := a.cfg.Graph
	if gc.Path == "" {
		return nil, fmt.Errorf("no graph: pass --graph or set graph.path")
	}

	full, err := loader.Load(gc.Path, loader.Format(strings.ToLower(gc.Format)), gc.LoaderOptions()...)
	if err != nil {
		return nil, err
	}
	g, err := loader.TopDegree(full, gc.TopN)
	if err != nil {
		return nil, err
	}
	a.logger.Info("graph loaded",
		slog.String("path", gc.Path),
		slog.Int("nodes", full.VertexCount()),
		slog.Int("edges", full.EdgeCount()),
		slog.Int("kept_nodes", g.VertexCount()),
		slog.Int("kept_edges", g.EdgeCount()),
	)

	recOpts, err := a.cfg.Recommend.RecommendOptions()
	if err != nil {
		return nil, err
	}
	opts := []analytics.Option{
		analytics.WithLogger(a.logger),
		analytics.WithRecommendOptions(recOpts...),
	}
	if a.tp != nil {
		opts = append(opts, analytics.WithTracerProvider(a.tp))
	}
	if a.cfg.Analysis.ReachabilityCache {
		opts = append(opts, analytics.WithReachabilityCache())
	}
	if a.engine, err = analytics.NewEngine(g, opts...); err != nil {
		return nil, err
	}
	a.graph = g

	return a.engine, nil
}

// deadline derives the per-command context bounded by analysis.timeout.
func (a *app) deadline(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Analysis.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Analysis.Timeout)
	}

	return context.WithCancel(parent)
}

// print writes v as indented JSON.
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
