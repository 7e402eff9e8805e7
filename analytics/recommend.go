// SPDX-License-Identifier: MIT
package analytics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/socnet/recommend"
)

// RecommendPairs ranks unconnected co-neighbor pairs and applies the cutoff.
// opts are applied after the Engine's WithRecommendOptions defaults.
func (e *Engine) RecommendPairs(ctx context.Context, opts ...recommend.Option) ([]recommend.Pair, error) {
	ctx, o := e.begin(ctx, "RecommendPairs")
	pairs, err := recommend.Pairs(e.g, e.recommendOptions(ctx, opts)...)
	o.end(err, attribute.Int("pairs", len(pairs)))

	return pairs, err
}

// RecommendPairsReachable is RecommendPairs where "already connected" means
// any path exists, not just a direct edge. It shares the reachability cache.
func (e *Engine) RecommendPairsReachable(ctx context.Context, opts ...recommend.Option) ([]recommend.Pair, error) {
	ctx, o := e.begin(ctx, "RecommendPairsReachable")
	reach := func(a, b string) (bool, error) {
		ok, _, err := e.pathExists(a, b)
		if err != nil || ok || !e.g.Directed() {
			return ok, err
		}
		ok, _, err = e.pathExists(b, a)

		return ok, err
	}
	all := append(e.recommendOptions(ctx, opts), recommend.WithReachability(reach))
	pairs, err := recommend.Pairs(e.g, all...)
	o.end(err, attribute.Int("pairs", len(pairs)))

	return pairs, err
}

func (e *Engine) recommendOptions(ctx context.Context, opts []recommend.Option) []recommend.Option {
	all := make([]recommend.Option, 0, len(e.recOpts)+len(opts)+1)
	all = append(all, recommend.WithContext(ctx))
	all = append(all, e.recOpts...)

	return append(all, opts...)
}
