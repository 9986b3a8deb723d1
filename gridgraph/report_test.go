package gridgraph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/gridgraph"
)

func TestWriteReport_Found(t *testing.T) {
	g := mustGrid(t, "S~~G", "....")
	r, err := gridgraph.ShortestPath(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	gridgraph.WriteReport(&buf, g, r, gridgraph.PathMark)

	want := "Path found! [Dijkstra]\n" +
		"Total cost: 5\n" +
		"Steps (moves): 5\n" +
		"Expanded nodes: 7\n" +
		"\nGrid with path '*':\n\n" +
		"S~~G\n" +
		"****\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_NotFound(t *testing.T) {
	g := mustGrid(t, "S#G")
	r, err := gridgraph.ShortestPath(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	gridgraph.WriteReport(&buf, g, r, gridgraph.PathMark)
	assert.Equal(t, "No path found.\nTotal cost: inf\nExpanded nodes: 1\n", buf.String())
}
