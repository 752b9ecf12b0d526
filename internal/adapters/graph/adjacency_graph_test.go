package graph_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/adapters/graph"
)

func writeGraphFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adjacency.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestAdjacencyGraph_LoadAndNeighbours(t *testing.T) {
	path := writeGraphFile(t, `{
		"30000142": [30000144, 30000144, 30000145],
		"30000144": [30000142]
	}`)

	g, err := graph.LoadFromFile(path)
	require.NoError(t, err)

	neighbours, err := g.Neighbours(context.Background(), 30000142)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{30000144, 30000145}, neighbours)
}

func TestAdjacencyGraph_UnknownSystemHasNoNeighbours(t *testing.T) {
	path := writeGraphFile(t, `{"30000142": [30000144]}`)

	g, err := graph.LoadFromFile(path)
	require.NoError(t, err)

	neighbours, err := g.Neighbours(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, neighbours)
}

func TestAdjacencyGraph_SkipsMalformedKeys(t *testing.T) {
	path := writeGraphFile(t, `{"not-a-number": [1, 2], "30000142": [30000144]}`)

	g, err := graph.LoadFromFile(path)
	require.NoError(t, err)

	neighbours, err := g.Neighbours(context.Background(), 30000142)
	require.NoError(t, err)
	assert.Equal(t, []int{30000144}, neighbours)
}

func TestAdjacencyGraph_MissingFile(t *testing.T) {
	_, err := graph.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
