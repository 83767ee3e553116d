package graph

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testMovies = []string{
		"Snatch",
		"Lock, Stock and Two Smoking Barrels",
		"The Hateful Eight",
		"Pain & Gain",
		"Reservoir Dogs",
	}
	testPairs = []Pair{
		{A: "Snatch", B: "Lock, Stock and Two Smoking Barrels"},
		{A: "Snatch", B: "Pain & Gain"},
		{A: "Reservoir Dogs", B: "The Hateful Eight"},
	}
)

func TestBuild(t *testing.T) {
	g := Build(testMovies, testPairs)

	assert.Equal(t, 5, g.Len())
	for _, m := range testMovies {
		assert.True(t, g.Contains(m), "missing node %s", m)
	}

	n, err := g.neighbors("Snatch")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lock, Stock and Two Smoking Barrels", "Pain & Gain"}, n)

	// 邻接表不保存自环
	n, err = g.neighbors("Reservoir Dogs")
	require.NoError(t, err)
	assert.Equal(t, []string{"The Hateful Eight"}, n)
}

func TestBuild_IsolatedAndUnlistedItems(t *testing.T) {
	g := Build([]string{"A", "Lonely"}, []Pair{{A: "A", B: "Outside"}, {A: "Self", B: "Self"}})

	assert.Equal(t, []string{"A", "Outside", "Self", "Lonely"}, g.items())

	n, err := g.neighbors("Lonely")
	require.NoError(t, err)
	assert.Empty(t, n)

	n, err = g.neighbors("Self")
	require.NoError(t, err)
	assert.Empty(t, n)
}

func TestBuild_Empty(t *testing.T) {
	g := Build(nil, nil)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.items())
}

func TestCluster(t *testing.T) {
	g := Build(testMovies, testPairs)

	tests := []struct {
		start string
		want  []string
	}{
		{"Snatch", []string{"Lock, Stock and Two Smoking Barrels", "Pain & Gain", "Snatch"}},
		{"Pain & Gain", []string{"Lock, Stock and Two Smoking Barrels", "Pain & Gain", "Snatch"}},
		{"The Hateful Eight", []string{"Reservoir Dogs", "The Hateful Eight"}},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			c, err := g.Cluster(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Sorted())
		})
	}
}

func TestCluster_SelfInclusionAndSymmetry(t *testing.T) {
	g := Build(append(testMovies, "Isolated"), testPairs)

	for _, m := range g.items() {
		c, err := g.Cluster(m)
		require.NoError(t, err)
		assert.True(t, c.Contains(m), "cluster of %s must contain itself", m)
	}

	for _, p := range testPairs {
		ca, err := g.Cluster(p.A)
		require.NoError(t, err)
		cb, err := g.Cluster(p.B)
		require.NoError(t, err)
		assert.True(t, ca.Contains(p.B))
		assert.True(t, cb.Contains(p.A))
	}

	c, err := g.Cluster("Isolated")
	require.NoError(t, err)
	assert.Equal(t, []string{"Isolated"}, c.Sorted())
}

func TestCluster_Cycle(t *testing.T) {
	g := Build(nil, []Pair{
		{A: "a", B: "b"},
		{A: "b", B: "c"},
		{A: "c", B: "a"},
		{A: "c", B: "d"},
	})

	c, err := g.Cluster("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, c.Sorted())
}

func TestCluster_LongChain(t *testing.T) {
	const n = 100000
	names := make([]string, n)
	pairs := make([]Pair, 0, n-1)
	for i := range names {
		names[i] = fmt.Sprintf("movie-%d", i)
		if i > 0 {
			pairs = append(pairs, Pair{A: names[i-1], B: names[i]})
		}
	}
	g := Build(names, pairs)

	c, err := g.Cluster(names[n-1])
	require.NoError(t, err)
	assert.Len(t, c, n)
}

func TestCluster_UnknownItem(t *testing.T) {
	g := Build(testMovies, testPairs)

	c, err := g.Cluster("Heat")
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrUnknownItem))

	_, err = g.neighbors("Heat")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestSet_Overlap(t *testing.T) {
	a := NewSet("x", "y", "z", "x")
	b := NewSet("y", "z", "w")

	assert.Len(t, a, 3)
	assert.Equal(t, 2, a.Overlap(b))
	assert.Equal(t, 2, b.Overlap(a))
	assert.Equal(t, 0, a.Overlap(NewSet()))
}
