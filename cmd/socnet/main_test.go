package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/recommend"
)

// execute runs socnet with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// barbellFile writes a generated barbell graph and returns its path.
func barbellFile(t *testing.T) string {
	t.Helper()
	out, _, err := execute(t, "generate", "barbell", "--k", "4", "--bridge", "1")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "barbell.json")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	return path
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "generate", "star", "--n", "4", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Center")

	_, _, err = execute(t, "generate", "torus")
	assert.Error(t, err)

	out, _, err = execute(t, "generate", "path", "--n", "3", "--ids", "letters")
	require.NoError(t, err)
	assert.Contains(t, out, `"C"`)

	_, _, err = execute(t, "generate", "path", "--ids", "roman")
	assert.ErrorIs(t, err, builder.ErrUnknownIDScheme)
}

func TestPathCommand(t *testing.T) {
	path := barbellFile(t)

	out, _, err := execute(t, "path", "0", "8", "--graph", path)
	require.NoError(t, err)
	var res pathResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Exists)
	assert.Equal(t, 4, res.Distance)
	assert.Equal(t, []string{"0", "3", "4", "5", "8"}, res.Path)

	out, _, err = execute(t, "path", "0", "8", "--graph", path, "--dfs")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Exists)

	_, _, err = execute(t, "path", "0", "nobody", "--graph", path)
	require.NoError(t, err, "absent target is a negative answer")

	_, _, err = execute(t, "path", "nobody", "0", "--graph", path)
	assert.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	path := barbellFile(t)

	out, logs, err := execute(t, "report", "--graph", path, "--trace", "--log-level", "debug")
	require.NoError(t, err)

	var r struct {
		RunID     string `json:"run_id"`
		Cliques   int    `json:"cliques"`
		Largest   []string
		Important []struct {
			ID string `json:"id"`
		} `json:"important"`
		Bridge struct {
			Distance  int  `json:"distance"`
			Connected bool `json:"connected"`
		} `json:"bridge"`
		Recommended []recommend.Pair `json:"recommended"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Len(t, r.RunID, 36)
	assert.Equal(t, 4, r.Cliques)
	assert.True(t, r.Bridge.Connected)
	assert.Equal(t, 3, r.Bridge.Distance)
	assert.NotEmpty(t, r.Recommended)
	require.NotEmpty(t, r.Important)
	assert.Contains(t, logs, "span=analytics.FindImportantNodes")
	assert.Contains(t, logs, "report finished")
}

func TestAnalysisCommands(t *testing.T) {
	path := barbellFile(t)

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"stats"}, `"vertex_count": 9`},
		{[]string{"stats"}, `"friend_circles": 1`},
		{[]string{"important"}, `"id": "3"`},
		{[]string{"centrality", "--betweenness"}, `"id": "4"`},
		{[]string{"cliques", "--largest"}, `"8"`},
		{[]string{"community"}, `"id": "4"`},
		{[]string{"community", "--members", "4"}, `"from": "4"`},
		{[]string{"bridge"}, `"distance": 3`},
		{[]string{"recommend", "--limit", "1", "--cutoff", "topk"}, `"count"`},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, "_"), func(t *testing.T) {
			out, _, err := execute(t, append(tc.args, "--graph", path)...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestConfigAndFlagErrors(t *testing.T) {
	_, _, err := execute(t, "stats")
	assert.ErrorContains(t, err, "no graph")

	_, _, err = execute(t, "stats", "--graph", "g.json", "--log-format", "xml")
	assert.Error(t, err)

	cfgPath := filepath.Join(t.TempDir(), "socnet.yaml")
	graph := barbellFile(t)
	require.NoError(t, os.WriteFile(cfgPath, []byte("graph:\n  path: "+graph+"\n  top_n: 5\n"), 0o600))
	out, _, err := execute(t, "stats", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"vertex_count": 5`)
}
