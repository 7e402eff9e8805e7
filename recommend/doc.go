// SPDX-License-Identifier: MIT
// Package recommend suggests new connections between members who share
// friends but are not yet connected.
//
// For every member n, every unordered pair {a, b} of n's distinct neighbors
// is a candidate. When a and b are not already connected the pair's
// co-occurrence count grows by one, so the final count is the number of
// common neighbors through which the pair was discovered. "Connected" means a
// direct edge in either direction by default; WithReachability swaps in any
// path check (for example bfs.PathExists).
//
// Scores returns every candidate ranked by count desc, then A, then B.
// Pairs applies a cutoff:
//
//   - CutoffStrict (default): with at least k candidates, the cutoff is the
//     count at position len-k of the ascending count list and only pairs
//     strictly above it are returned; ties at the cutoff are all dropped and
//     ties above it are all kept. With fewer than k candidates every
//     candidate is returned.
//   - CutoffTopK: exactly the first k ranked candidates.
//
// k defaults to 10 (WithLimit). Pairs are unordered and always stored with
// A < B.
package recommend
