package floydwarshall_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/floydwarshall"
)

func TestWriteReport_Sections(t *testing.T) {
	g := buildTriangle(t)
	res, err := floydwarshall.Compute(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, floydwarshall.WriteReport(&buf, g, res, floydwarshall.ReportOptions{Matrix: true, From: 1, To: 3}))
	out := buf.String()

	assert.Contains(t, out, "read 3 vertices and 3 edges (undirected)\n")
	assert.Contains(t, out, "central vertex: 2 (distance sum 2)\n")
	assert.Contains(t, out, "distances from 2: 1:1 2:0 3:1\n")
	assert.Contains(t, out, "farthest from 2: 1 (distance 1)\n")
	assert.Contains(t, out, "path 1 -> 3: 1 -> 2 -> 3 (cost 2)\n")
	assert.Contains(t, out, "distance matrix:\n")
}

func TestWriteReport_NoPathAndInf(t *testing.T) {
	g, err := floydwarshall.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))
	res, err := floydwarshall.Compute(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, floydwarshall.WriteReport(&buf, g, res, floydwarshall.ReportOptions{Matrix: true, From: 1, To: 3}))
	out := buf.String()

	assert.Contains(t, out, "path 1 -> 3: (no path)\n")
	assert.Contains(t, out, "∞")
	assert.False(t, strings.Contains(out, "+Inf"), "raw +Inf must not leak into output")
}

func TestWriteReport_BadQuery(t *testing.T) {
	g := buildTriangle(t)
	res, err := floydwarshall.Compute(g)
	require.NoError(t, err)

	err = floydwarshall.WriteReport(&bytes.Buffer{}, g, res, floydwarshall.ReportOptions{From: 1, To: 9})
	assert.ErrorIs(t, err, floydwarshall.ErrVertexOutOfRange)
}
