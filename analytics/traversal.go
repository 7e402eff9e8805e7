// SPDX-License-Identifier: MIT
package analytics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/socnet/bfs"
	"github.com/katalvlaran/socnet/dfs"
	"github.com/katalvlaran/socnet/dijkstra"
)

// PathExists reports whether end is reachable from start (BFS). With the
// reachability cache enabled the answer comes from the memoized reachable
// set of start.
func (e *Engine) PathExists(ctx context.Context, start, end string) (bool, error) {
	_, o := e.begin(ctx, "PathExists", attribute.String("start", start), attribute.String("end", end))
	ok, cached, err := e.pathExists(start, end)
	o.end(err, attribute.Bool("exists", ok), attribute.Bool("cached", cached))

	return ok, err
}

func (e *Engine) pathExists(start, end string) (ok, cached bool, err error) {
	if e.cache == nil {
		ok, err = bfs.PathExists(e.g, start, end)

		return ok, false, err
	}
	set, cached, err := e.cache.reachable(e.g, start)
	if err != nil {
		return false, cached, err
	}

	return set[end], cached, nil
}

// PathExistsDFS is PathExists through the depth-first walker.
func (e *Engine) PathExistsDFS(ctx context.Context, start, end string) (bool, error) {
	_, o := e.begin(ctx, "PathExistsDFS", attribute.String("start", start), attribute.String("end", end))
	ok, err := dfs.PathExists(e.g, start, end)
	o.end(err, attribute.Bool("exists", ok))

	return ok, err
}

// Distance returns the hop distance start→end, or -1 when none exists.
func (e *Engine) Distance(ctx context.Context, start, end string) int {
	_, o := e.begin(ctx, "Distance", attribute.String("start", start), attribute.String("end", end))
	d := dijkstra.Distance(e.g, start, end)
	o.end(nil, attribute.Int("distance", d))

	return d
}

// ShortestPath returns one shortest route start→end and its length
// (nil, -1 when unreachable).
func (e *Engine) ShortestPath(ctx context.Context, start, end string) ([]string, int) {
	_, o := e.begin(ctx, "ShortestPath", attribute.String("start", start), attribute.String("end", end))
	path, d := dijkstra.ShortestPath(e.g, start, end)
	o.end(nil, attribute.Int("distance", d))

	return path, d
}

// FriendCircles returns the connected groups of the graph, largest first,
// ignoring edge direction.
func (e *Engine) FriendCircles(ctx context.Context) ([][]string, error) {
	ctx, o := e.begin(ctx, "FriendCircles")
	circles, err := dfs.Components(ctx, e.g)
	o.end(err, attribute.Int("circles", len(circles)))

	return circles, err
}
