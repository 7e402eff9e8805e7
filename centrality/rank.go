// SPDX-License-Identifier: MIT
package centrality

import "sort"

// Ranked sorts a centrality map by value descending, breaking ties by ID.
func Ranked(m map[string]float64) []Score {
	out := make([]Score, 0, len(m))
	for id, v := range m {
		out = append(out, Score{ID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// Max returns the highest-scoring member, preferring the smallest ID on ties.
// ok is false for an empty map.
func Max(m map[string]float64) (best Score, ok bool) {
	for id, v := range m {
		if !ok || v > best.Value || (v == best.Value && id < best.ID) {
			best, ok = Score{ID: id, Value: v}, true
		}
	}

	return best, ok
}
