// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// logSpanProcessor reports every finished span through slog, which turns
// --trace into a per-operation timing log on stderr.
type logSpanProcessor struct {
	logger *slog.Logger
}

var _ sdktrace.SpanProcessor = (*logSpanProcessor)(nil)

func newLogSpanProcessor(l *slog.Logger) *logSpanProcessor {
	return &logSpanProcessor{logger: l}
}

func (p *logSpanProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	args := []any{
		slog.String("span", s.Name()),
		slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
		slog.String("status", s.Status().Code.String()),
	}
	for _, kv := range s.Attributes() {
		args = append(args, slog.String(string(kv.Key), kv.Value.Emit()))
	}
	p.logger.Info("span", args...)
}

func (p *logSpanProcessor) Shutdown(context.Context) error   { return nil }
func (p *logSpanProcessor) ForceFlush(context.Context) error { return nil }
