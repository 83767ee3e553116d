package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"movie_recommend/internal/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleYAML = `
movies:
  - Snatch
  - "Lock, Stock and Two Smoking Barrels"
  - "Pain & Gain"
similarities:
  - [Snatch, "Lock, Stock and Two Smoking Barrels"]
  - [Snatch, "Pain & Gain"]
peers:
  - id: p1
    seen: [Snatch]
  - id: p2
    seen: ["Lock, Stock and Two Smoking Barrels", "Pain & Gain"]
watched: ["Pain & Gain"]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleYAML), 0644))

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Snatch", "Lock, Stock and Two Smoking Barrels", "Pain & Gain"}, ds.Movies)
	assert.Equal(t, []string{"Pain & Gain"}, ds.Watched)

	pairs, err := ds.Pairs()
	require.NoError(t, err)
	assert.Equal(t, graph.Pair{A: "Snatch", B: "Pain & Gain"}, pairs[1])

	assert.Equal(t, [][]string{
		{"Snatch"},
		{"Lock, Stock and Two Smoking Barrels", "Pain & Gain"},
	}, ds.Histories())

	in, err := ds.Input()
	require.NoError(t, err)
	assert.Len(t, in.Similarities, 2)
	assert.Len(t, in.Peers, 2)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_InvalidPair(t *testing.T) {
	_, err := Parse([]byte("movies: [a, b, c]\nsimilarities:\n  - [a, b, c]\n"))
	assert.ErrorIs(t, err, ErrInvalidPair)

	_, err = Parse([]byte("similarities: [[a]]"))
	assert.ErrorIs(t, err, ErrInvalidPair)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("movies: {"))
	assert.Error(t, err)
}

func TestExample(t *testing.T) {
	ds := Example()
	in, err := ds.Input()
	require.NoError(t, err)

	assert.Len(t, in.Movies, 5)
	assert.Len(t, in.Similarities, 3)
	assert.Len(t, in.Peers, 6)
	assert.Empty(t, in.Watched)
}
