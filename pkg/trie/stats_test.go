package trie

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTrie(bits ...int) *Trie {
	tr := NewTrie()
	for _, bit := range bits {
		tr.Insert(bit)
	}
	return tr
}

// TestEmptyTrieStats verifies that an empty trie reports no data instead of dividing by zero.
func TestEmptyTrieStats(t *testing.T) {
	tr := NewTrie()

	assert.Equal(t, 0, tr.Depth(), "Nothing is deeper than the root")

	mean, err := tr.Mean()
	assert.ErrorIs(t, err, ErrEmptyTrie)
	assertNaN(t, mean)

	deviance, err := tr.Deviance()
	assert.ErrorIs(t, err, ErrEmptyTrie)
	assertNaN(t, deviance)

	stats, err := tr.Stats()
	assert.ErrorIs(t, err, ErrEmptyTrie)
	assert.Equal(t, 0, stats.Nodes)
	assert.Equal(t, 0, stats.Leaves)
	assertNaN(t, stats.Mean)
	assertNaN(t, stats.Deviance)
}

// TestSingleLeaf checks that one leaf at depth d has mean d and no deviation.
func TestSingleLeaf(t *testing.T) {
	tr := buildTrie(ZERO)

	mean, err := tr.Mean()
	require.NoError(t, err)
	assert.Equal(t, 1.0, mean)

	deviance, err := tr.Deviance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, deviance)

	chain := NewTrie()
	chain.InsertByte(0xFF)
	mean, err = chain.Mean()
	require.NoError(t, err)
	assert.Equal(t, 3.0, mean)
	deviance, err = chain.Deviance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, deviance)
}

// TestWorkedExampleStats verifies the statistics of the 1,0,1,1,0 trie:
// leaves at depth 2 and 1.
func TestWorkedExampleStats(t *testing.T) {
	tr := buildTrie(1, 0, 1, 1, 0)

	assert.Equal(t, 2, tr.Depth())

	mean, err := tr.Mean()
	require.NoError(t, err)
	assert.Equal(t, 1.5, mean)

	deviance, err := tr.Deviance()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.5), deviance, 1e-12)
}

// TestStats checks the bundle against a trie with leaves at depths 1, 2 and 2.
func TestStats(t *testing.T) {
	// codewords 0, 1, 00, 01
	tr := buildTrie(0, 1, 0, 0, 0, 1)

	stats, err := tr.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 3, stats.Leaves)
	assert.Equal(t, 2, stats.Depth)
	assert.InDelta(t, 5.0/3.0, stats.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/3.0), stats.Deviance, 1e-12)

	mean, _ := tr.Mean()
	deviance, _ := tr.Deviance()
	assert.Equal(t, mean, stats.Mean)
	assert.Equal(t, deviance, stats.Deviance)
}

// TestStatsAreRepeatable makes sure traversals keep no state between calls.
func TestStatsAreRepeatable(t *testing.T) {
	tr := buildTrie(generateRandomBits(4096, 5)...)

	first, err := tr.Stats()
	require.NoError(t, err)
	second, err := tr.Stats()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
