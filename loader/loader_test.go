package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/loader"
)

func TestDecode_JSON(t *testing.T) {
	doc := `{
	  "directed": false,
	  "nodes": [{"id": 1, "attributes": {"name": "ana"}}, {"id": "bob"}],
	  "edges": [{"from": 1, "to": 2}, {"from": 2, "to": "bob"}]
	}`
	g, err := loader.Decode(strings.NewReader(doc), loader.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "bob"}, g.Vertices())
	assert.True(t, g.HasEdge("bob", "2"))

	v, err := g.Vertex("1")
	require.NoError(t, err)
	assert.Equal(t, "ana", v.Metadata["name"])

	_, err = loader.Decode(strings.NewReader(`{"edges":[{"from":1.5,"to":2}]}`), loader.FormatJSON)
	assert.ErrorIs(t, err, loader.ErrBadDocument)
}

func TestDecode_YAML(t *testing.T) {
	doc := `
directed: true
edges:
  - {from: 1, to: 2}
  - {from: 2, to: 3}
`
	g, err := loader.Decode(strings.NewReader(doc), loader.FormatYAML)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("1", "2"))
	assert.False(t, g.HasEdge("2", "1"))

	_, err = loader.Decode(strings.NewReader("edges: {"), loader.FormatYAML)
	assert.ErrorIs(t, err, loader.ErrBadDocument)

	_, err = loader.Decode(strings.NewReader(`{"edges":[{"from":"a","to":"a"}]}`), loader.FormatJSON)
	assert.ErrorIs(t, err, loader.ErrBadDocument, "self-loop without loops flag")
}

func TestDecode_EdgeList(t *testing.T) {
	in := "# SNAP style\n0 1\n0\t2\n1,2\n\n% comment\n3 3\n7\n"
	g, err := loader.Decode(strings.NewReader(in), loader.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "7"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	dg, err := loader.Decode(strings.NewReader(in), loader.FormatEdgeList, loader.WithDirected(true), loader.WithLoops())
	require.NoError(t, err)
	assert.True(t, dg.HasEdge("3", "3"))
	assert.False(t, dg.HasEdge("1", "0"))
}

func TestLoad_RoundTripThroughFiles(t *testing.T) {
	src, err := builder.BuildGraph(nil, nil, builder.Barbell(3, 1))
	require.NoError(t, err)
	require.NoError(t, src.SetAttribute("3", "role", "bridge"))

	dir := t.TempDir()
	data, err := yaml.Marshal(loader.FromGraph(src))
	require.NoError(t, err)
	path := filepath.Join(dir, "barbell.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	g, err := loader.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, src.Vertices(), g.Vertices())
	assert.Equal(t, src.EdgeCount(), g.EdgeCount())
	v, err := g.Vertex("3")
	require.NoError(t, err)
	assert.Equal(t, "bridge", v.Metadata["role"])

	_, err = loader.Load(filepath.Join(dir, "graph.bin"), "")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
	_, err = loader.Load(filepath.Join(dir, "missing.json"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	f, err := loader.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatYAML, f)
	_, err = loader.ParseFormat("pickle")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestTopDegree(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2")
	require.NoError(t, err)

	top, err := loader.TopDegree(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", builder.CenterVertexID}, top.Vertices())
	assert.Equal(t, 3, top.EdgeCount())

	all, err := loader.TopDegree(g, 0)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), all.VertexCount())
	assert.Equal(t, g.EdgeCount(), all.EdgeCount())
}
