package clique_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/clique"
	"github.com/katalvlaran/socnet/core"
)

func edges(t *testing.T, g *core.Graph, pairs ...[2]string) *core.Graph {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestMaximalCliques_FiveNode(t *testing.T) {
	g := edges(t, core.NewGraph(),
		[2]string{"1", "2"}, [2]string{"1", "3"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "5"})

	got, err := clique.MaximalCliques(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3", "4"}, {"4", "5"}, {"1", "2", "3"}}, got)

	largest, ok, err := clique.Largest(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, largest)
}

func TestMaximalCliques_Shapes(t *testing.T) {
	ctx := context.Background()

	k4, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	got, err := clique.MaximalCliques(ctx, k4)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1", "2", "3"}}, got)

	empty, err := clique.MaximalCliques(ctx, core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)
	_, ok, err := clique.Largest(ctx, core.NewGraph())
	require.NoError(t, err)
	assert.False(t, ok)

	iso := core.NewGraph()
	require.NoError(t, iso.AddVertex("a"))
	require.NoError(t, iso.AddVertex("b"))
	got, err = clique.MaximalCliques(ctx, iso)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, got)
}

func TestMaximalCliques_DirectedIsSymmetrized(t *testing.T) {
	g := edges(t, core.NewGraph(core.WithDirected(true), core.WithLoops()),
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}, [2]string{"a", "a"})

	got, err := clique.MaximalCliques(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, got)
}

func TestMaximalCliques_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(25, 0.3))
	require.NoError(t, err)

	a, err := clique.MaximalCliques(context.Background(), g)
	require.NoError(t, err)
	b, err := clique.MaximalCliques(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestMaximalCliques_AgreesWithGonum cross-checks enumeration against
// gonum's Bron–Kerbosch on random graphs.
func TestMaximalCliques_AgreesWithGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIDScheme(builder.PersonIDFn)},
			builder.RandomSparse(30, 0.25))
		require.NoError(t, err)

		got, err := clique.MaximalCliques(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, gonumCliques(g), canonical(got), "seed %d", seed)
	}
}

func gonumCliques(g *core.Graph) []string {
	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	ug := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(index[e.From]), simple.Node(index[e.To])))
	}

	var out [][]string
	for _, c := range topo.BronKerbosch(ug) {
		members := make([]string, 0, len(c))
		for _, n := range c {
			members = append(members, ids[n.ID()])
		}
		sort.Strings(members)
		out = append(out, members)
	}

	return canonical(out)
}

// canonical renders cliques as sorted strings for order-free comparison.
func canonical(cs [][]string) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, strings.Join(c, ","))
	}
	sort.Strings(out)

	return out
}

func TestMaximalCliques_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.MaximalCliques(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = clique.MaximalCliques(context.Background(), nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}

func TestExpandByOneHop(t *testing.T) {
	g := edges(t, core.NewGraph(),
		[2]string{"1", "2"}, [2]string{"1", "3"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "5"},
		[2]string{"2", "6"}, [2]string{"6", "4"})
	require.NoError(t, g.SetAttribute("4", "name", "dana"))
	before := g.Version()

	ego, err := clique.ExpandByOneHop(g, []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "6"}, ego.Vertices())
	assert.True(t, ego.HasEdge("1", "2"))
	assert.True(t, ego.HasEdge("3", "4"))
	assert.True(t, ego.HasEdge("2", "6"))
	assert.False(t, ego.HasEdge("6", "4"), "edges between outer neighbors are not copied")
	assert.Equal(t, 5, ego.EdgeCount())

	v, err := ego.Vertex("4")
	require.NoError(t, err)
	assert.Equal(t, "dana", v.Metadata["name"])

	assert.Equal(t, before, g.Version(), "source untouched")
	assert.Equal(t, 7, g.EdgeCount())
}

func TestExpandByOneHop_PrivateAttributes(t *testing.T) {
	g := edges(t, core.NewGraph(),
		[2]string{"1", "2"}, [2]string{"1", "3"}, [2]string{"2", "3"}, [2]string{"3", "4"})
	require.NoError(t, g.SetAttribute("1", "name", "ana"))
	require.NoError(t, g.SetAttribute("4", "name", "dana"))
	before := g.Version()

	ego, err := clique.ExpandByOneHop(g, []string{"1", "2", "3"})
	require.NoError(t, err)
	require.NoError(t, ego.SetAttribute("1", "name", "mutated"))
	require.NoError(t, ego.SetAttribute("4", "name", "mutated"))

	for id, want := range map[string]string{"1": "ana", "4": "dana"} {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		assert.Equal(t, want, v.Metadata["name"], "vertex %s", id)
	}
	assert.Equal(t, before, g.Version())
}

func TestMaximalCliques_EmptyGraph(t *testing.T) {
	ctx := context.Background()
	all, err := clique.MaximalCliques(ctx, core.NewGraph())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	members, ok, err := clique.Largest(ctx, core.NewGraph())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, members)
}

func TestExpandByOneHop_Errors(t *testing.T) {
	g := edges(t, core.NewGraph(), [2]string{"a", "b"})

	_, err := clique.ExpandByOneHop(g, nil)
	assert.ErrorIs(t, err, clique.ErrEmptyClique)

	_, err = clique.ExpandByOneHop(g, []string{"a", "zz"})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = clique.ExpandByOneHop(nil, []string{"a"})
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}
