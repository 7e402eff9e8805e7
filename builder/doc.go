// SPDX-License-Identifier: MIT
// Package builder provides reusable “functional-options”-style graph
// constructors for social-network fixtures: tests, examples and the CLI's
// synthetic datasets all come from here.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies
//     constructors in order.
//   - Configuration primitives:
//     – BuilderOption: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – LetterIDFn:        spreadsheet letters ("A",…,"Z","AA",…).
//     – PersonIDFn:        "p0","p1",….
//     – ParseIDScheme resolves "default", "letters" or "person" by name.
//   - Topologies: Path, Cycle, Star, Complete, CompleteBipartite,
//     RandomSparse, Barbell.
//
// Guarantees:
//
//   - Idempotent construction: re-running the same constructor on g will not
//     duplicate vertices or edges (core.AddEdge is idempotent).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
//   - Determinism: identical inputs, seeds and constructor order give
//     identical graphs.
package builder
