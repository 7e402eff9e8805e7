// SPDX-License-Identifier: MIT
package loader

import (
	"sort"

	"github.com/katalvlaran/socnet/core"
)

// TopDegree returns the subgraph induced by the n vertices with the highest
// degree, ties broken by ID. n <= 0 or n >= |V| returns a full copy.
func TopDegree(g *core.Graph, n int) (*core.Graph, error) {
	ids := g.Vertices()
	if n <= 0 || n >= len(ids) {
		return g.Clone(), nil
	}

	deg := make(map[string]int, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		deg[id] = d
	}
	sort.SliceStable(ids, func(i, j int) bool { return deg[ids[i]] > deg[ids[j]] })

	return g.Subgraph(ids[:n]...), nil
}
