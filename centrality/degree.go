// SPDX-License-Identifier: MIT
package centrality

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Degree returns the normalized degree centrality of every vertex:
// degree(v) / (|V|-1). A single-vertex graph scores 0 and an empty graph
// yields an empty map. Directed graphs count in- plus out-degree, so a vertex
// that both follows and is followed by everyone scores 2.
func Degree(g core.Reader) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	scores := make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return scores, nil
	}
	if len(ids) == 1 {
		scores[ids[0]] = 0

		return scores, nil
	}

	norm := float64(len(ids) - 1)
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: degree of %q: %w", id, err)
		}
		scores[id] = float64(d) / norm
	}

	return scores, nil
}

// Important returns every vertex whose degree centrality equals the maximum,
// sorted by ID. Ties are all kept. An empty graph yields an empty slice.
func Important(g core.Reader) ([]Score, error) {
	scores, err := Degree(g)
	if err != nil {
		return nil, err
	}

	ranked := Ranked(scores)
	if len(ranked) == 0 {
		return []Score{}, nil
	}

	top := ranked[0].Value
	i := 1
	for i < len(ranked) && ranked[i].Value == top {
		i++
	}

	return ranked[:i], nil
}
