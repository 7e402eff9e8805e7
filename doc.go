// SPDX-License-Identifier: MIT
// Package socnet is an in-memory analytics engine for social graphs: who can
// reach whom, how far apart two people are, which tight groups exist and who
// holds them together, and which unconnected people should be introduced.
//
// The module is organized as small packages that all consume core.Reader:
//
//	core/        Graph store: vertices with attributes, unweighted edges, version counter
//	bfs/, dfs/   traversal walkers and PathExists
//	dijkstra/    unit-weight hop distances and shortest paths
//	centrality/  degree and Brandes betweenness, ranking helpers
//	clique/      Bron–Kerbosch maximal cliques, one-hop ego expansion
//	community/   bridge between the two largest cliques, bottleneck members
//	recommend/   co-neighbour pair scoring with strict or top-k cutoff
//	analytics/   Engine facade with slog logging, OpenTelemetry spans and a reachability cache
//	builder/     deterministic topologies (Path, Cycle, Star, Complete, Barbell, ...)
//	loader/      JSON, YAML and edge-list documents, top-N degree reduction
//	config/      YAML configuration for the CLI
//	cmd/socnet/  cobra command line front end
//
// Quick example:
//
//	A───B
//	│ ╲ │
//	C───D───E
//
// The triangles {A,B,D} and {A,C,D} share the edge A–D and E hangs off D.
// B and C have two friends in common, so they head the suggested
// introductions.
//
//	go install github.com/katalvlaran/socnet/cmd/socnet@latest
package socnet
