// SPDX-License-Identifier: MIT
// Package analytics is the single entry point for social-graph analysis.
//
// An Engine is constructed once over a *core.Graph and answers every
// question the lower packages can: path existence (BFS and DFS), hop
// distance, degree and betweenness centrality, important members, maximal
// cliques and their ego networks, the bridge between the two largest
// communities, and recommended connections.
//
// Every method takes a context, opens an OpenTelemetry span named
// "analytics.<Method>" and logs its outcome at debug level through slog.
// The graph is never mutated; results are recomputed on every call except
// for reachability sets, which WithReachabilityCache memoizes per source and
// drops whenever the graph's Version changes.
package analytics
