package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/bellmanford"
	"github.com/katalvlaran/pathlab/cli"
	"github.com/katalvlaran/pathlab/floydwarshall"
	"github.com/katalvlaran/pathlab/gridgraph"
)

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// run executes cmd with args and returns everything it printed.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

const triangle = "3 3\n1 2 1\n2 3 1\n1 3 5\n"

func TestFloyd_Report(t *testing.T) {
	p := writeFile(t, "graph1.txt", triangle)

	out, err := run(t, cli.NewCmdFloyd("floydcentral"), p, "--from=1", "--to=3")
	require.NoError(t, err)
	assert.Contains(t, out, "read 3 vertices and 3 edges (undirected)\n")
	assert.Contains(t, out, "central vertex: 2 (distance sum 2)\n")
	assert.Contains(t, out, "distances from 2: 1:1 2:0 3:1\n")
	assert.Contains(t, out, "farthest from 2: 1 (distance 1)\n")
	assert.Contains(t, out, "path 1 -> 3: 1 -> 2 -> 3 (cost 2)\n")
	assert.Contains(t, out, "distance matrix:\n")
}

func TestFloyd_NoMatrix(t *testing.T) {
	p := writeFile(t, "graph1.txt", triangle)

	out, err := run(t, cli.NewCmdFloyd("floydcentral"), p, "--matrix=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "distance matrix:")
}

func TestFloyd_MatrixFromEnv(t *testing.T) {
	p := writeFile(t, "graph1.txt", triangle)
	t.Setenv("PATHLAB_MATRIX", "false")

	out, err := run(t, cli.NewCmdFloyd("floydcentral"), p)
	require.NoError(t, err)
	assert.NotContains(t, out, "distance matrix:")
}

func TestFloyd_Errors(t *testing.T) {
	out, err := run(t, cli.NewCmdFloyd("floydcentral"))
	require.Error(t, err, "missing file argument")
	assert.Contains(t, out, "Usage:")

	p := writeFile(t, "graph1.txt", triangle)
	_, err = run(t, cli.NewCmdFloyd("floydcentral"), p, "--from=1")
	assert.Error(t, err, "--from without --to")

	_, err = run(t, cli.NewCmdFloyd("floydcentral"), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFloyd_QueryOutOfRangeWritesNothing(t *testing.T) {
	p := writeFile(t, "graph1.txt", triangle)

	for _, args := range [][]string{{"--from=9", "--to=1"}, {"--from=1", "--to=4"}, {"--from=-2", "--to=1"}} {
		out, err := run(t, cli.NewCmdFloyd("floydcentral"), append([]string{p}, args...)...)
		assert.ErrorIs(t, err, floydwarshall.ErrVertexOutOfRange, "%v", args)
		assert.NotContains(t, out, "central vertex", "%v", args)
	}
}

const digraph = "3\t3\n0\t1\t4\n1\t2\t-2\n0\t2\t5\n"

func TestBellmanFord_Report(t *testing.T) {
	p := writeFile(t, "g.txt", digraph)

	out, err := run(t, cli.NewCmdBellmanFord("bellmanford"), p)
	require.NoError(t, err)
	assert.Equal(t, "Path: 0 -> 1 -> 2\nTotal cost: 2\n", out)
}

func TestBellmanFord_DestFlagAndEnv(t *testing.T) {
	p := writeFile(t, "g.txt", digraph)

	out, err := run(t, cli.NewCmdBellmanFord("bellmanford"), p, "--dest=1")
	require.NoError(t, err)
	assert.Equal(t, "Path: 0 -> 1\nTotal cost: 4\n", out)

	t.Setenv("PATHLAB_DEST", "1")
	out, err = run(t, cli.NewCmdBellmanFord("bellmanford"), p)
	require.NoError(t, err)
	assert.Equal(t, "Path: 0 -> 1\nTotal cost: 4\n", out)

	// explicit flag beats the environment
	out, err = run(t, cli.NewCmdBellmanFord("bellmanford"), p, "--dest=2")
	require.NoError(t, err)
	assert.Equal(t, "Path: 0 -> 1 -> 2\nTotal cost: 2\n", out)
}

func TestBellmanFord_DefaultFile(t *testing.T) {
	dir := filepath.Dir(writeFile(t, cli.DefaultBellmanFordFile, digraph))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := run(t, cli.NewCmdBellmanFord("bellmanford"))
	require.NoError(t, err)
	assert.Equal(t, "Path: 0 -> 1 -> 2\nTotal cost: 2\n", out)
}

func TestBellmanFord_Unreachable(t *testing.T) {
	p := writeFile(t, "g.txt", "3\t1\n1\t2\t1\n")

	out, err := run(t, cli.NewCmdBellmanFord("bellmanford"), p)
	require.NoError(t, err)
	assert.Equal(t, "Path: (no path)\nTotal cost: inf\n", out)
}

func TestBellmanFord_Errors(t *testing.T) {
	p := writeFile(t, "g.txt", digraph)

	_, err := run(t, cli.NewCmdBellmanFord("bellmanford"), p, "--dest=7")
	assert.ErrorIs(t, err, bellmanford.ErrVertexOutOfRange)

	_, err = run(t, cli.NewCmdBellmanFord("bellmanford"), p, "--source=5")
	assert.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)

	_, err = run(t, cli.NewCmdBellmanFord("bellmanford"), p, "--source=-1")
	assert.Error(t, err)

	truncated := writeFile(t, "short.txt", "3\t3\n0\t1\t4\n")
	_, err = run(t, cli.NewCmdBellmanFord("bellmanford"), truncated)
	assert.ErrorIs(t, err, bellmanford.ErrTruncatedInput)
}

func TestGrid_Report(t *testing.T) {
	p := writeFile(t, "map.txt", "1 4\nS..G\n")

	out, err := run(t, cli.NewCmdGrid("gridroute"), p)
	require.NoError(t, err)
	assert.Equal(t,
		"Path found! [Dijkstra]\n"+
			"Total cost: 3\n"+
			"Steps (moves): 3\n"+
			"Expanded nodes: 4\n"+
			"\nGrid with path '*':\n\n"+
			"S**G\n",
		out)
}

func TestGrid_Mark(t *testing.T) {
	p := writeFile(t, "map.txt", "1 4\nS..G\n")

	out, err := run(t, cli.NewCmdGrid("gridroute"), p, "--mark=+")
	require.NoError(t, err)
	assert.Contains(t, out, "S++G\n")

	_, err = run(t, cli.NewCmdGrid("gridroute"), p, "--mark=ab")
	assert.Error(t, err)
}

func TestGrid_Errors(t *testing.T) {
	_, err := run(t, cli.NewCmdGrid("gridroute"))
	assert.Error(t, err)

	p := writeFile(t, "map.txt", "1 3\n..G\n")
	_, err = run(t, cli.NewCmdGrid("gridroute"), p)
	assert.ErrorIs(t, err, gridgraph.ErrMissingStart)
}
