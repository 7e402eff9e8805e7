// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socnet/analytics"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/community"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/recommend"
)

// report is the end-to-end analysis printed by `socnet report`.
type report struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Elapsed     string                `json:"elapsed"`
	Graph       *core.GraphStats      `json:"graph"`
	Important   []centrality.Score    `json:"important"`
	Cliques     int                   `json:"cliques"`
	Largest     []string              `json:"largest_clique"`
	Bridge      *community.Bridge     `json:"bridge"`
	Recommended []recommend.Pair      `json:"recommended"`
	Cache       *analytics.CacheStats `json:"cache,omitempty"`
}

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every analysis concurrently and print one JSON report",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			r, err := a.buildReport(cmd)
			if err != nil {
				return err
			}

			return a.print(r)
		}),
	}
	addRecommendFlags(cmd)

	return cmd
}

// buildReport runs the independent analyses on separate goroutines over the
// same read-only graph; the first failure cancels the rest.
func (a *app) buildReport(cmd *cobra.Command) (*report, error) {
	start := time.Now()
	r := &report{
		RunID:       uuid.New().String(),
		GeneratedAt: start.UTC(),
		Graph:       a.graph.Stats(),
	}
	logger := a.logger.With(slog.String("run_id", r.RunID))
	logger.Info("report started")

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() (err error) {
		r.Important, err = a.engine.FindImportantNodes(ctx)
		return err
	})
	g.Go(func() error {
		cs, err := a.engine.FindAllMaximalCliques(ctx)
		if err != nil {
			return err
		}
		r.Cliques = len(cs)
		r.Largest = []string{}
		if len(cs) > 0 {
			r.Largest = cs[len(cs)-1]
		}

		return nil
	})
	g.Go(func() error {
		b, err := a.engine.Bridge(ctx)
		if err != nil && !errors.Is(err, community.ErrInsufficientCliques) {
			return err
		}
		r.Bridge = b

		return nil
	})
	g.Go(func() (err error) {
		r.Recommended, err = a.recommend(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Warn("report failed", slog.String("error", err.Error()))
		return nil, err
	}

	if st, ok := a.engine.CacheStats(); ok {
		r.Cache = &st
	}
	r.Elapsed = time.Since(start).String()
	logger.Info("report finished", slog.String("elapsed", r.Elapsed))

	return r, nil
}

// recommend runs RecommendPairs in the variant selected by configuration.
func (a *app) recommend(ctx context.Context) ([]recommend.Pair, error) {
	if a.cfg.Recommend.Reachability {
		return a.engine.RecommendPairsReachable(ctx)
	}

	return a.engine.RecommendPairs(ctx)
}

// rankedScores orders a centrality map for printing.
func rankedScores(m map[string]float64) []centrality.Score {
	return centrality.Ranked(m)
}
