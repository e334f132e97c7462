package trie

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLines(tr *Trie) []string {
	lines := []string{}
	for line := range tr.Lines() {
		lines = append(lines, line)
	}
	return lines
}

// TestRenderEmpty renders a lone root.
func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, []string{"---/(0)"}, collectLines(NewTrie()))
}

// TestRenderOnesAboveZeros verifies the one subtree, node, zero subtree order.
func TestRenderOnesAboveZeros(t *testing.T) {
	tr := buildTrie(1, 0, 1, 1, 0)

	assert.Equal(t, []string{
		"---------1(2)",
		"------1(1)",
		"---/(0)",
		"------0(1)",
	}, collectLines(tr))
}

// TestRenderDeeperZeros checks the indentation below a zero branch.
func TestRenderDeeperZeros(t *testing.T) {
	tr := buildTrie(0, 1, 0, 0, 0, 1)

	assert.Equal(t, []string{
		"------1(1)",
		"---/(0)",
		"---------1(2)",
		"------0(1)",
		"---------0(2)",
	}, collectLines(tr))
}

// TestLinesStopEarly verifies that the iterator honours a break.
func TestLinesStopEarly(t *testing.T) {
	tr := buildTrie(generateRandomBits(512, 9)...)

	count := 0
	for range tr.Lines() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

// TestWriteTo checks the written text and the reported length.
func TestWriteTo(t *testing.T) {
	tr := buildTrie(1, 0, 1, 1, 0)

	var buf bytes.Buffer
	n, err := tr.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "---------1(2)\n------1(1)\n---/(0)\n------0(1)\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, buf.String(), tr.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteToError verifies that write failures are surfaced.
func TestWriteToError(t *testing.T) {
	tr := buildTrie(generateRandomBits(4096, 2)...)
	_, err := tr.WriteTo(failingWriter{})
	assert.EqualError(t, err, "disk full")
}

// TestCodewords verifies the leaf paths and their bit access.
func TestCodewords(t *testing.T) {
	tr := buildTrie(0, 1, 0, 0, 0, 1)

	codewords := tr.Codewords()
	require.Len(t, codewords, 3)

	paths := []string{}
	for _, c := range codewords {
		paths = append(paths, c.String())
	}
	assert.Equal(t, []string{"1", "01", "00"}, paths)

	assert.Equal(t, uint(2), codewords[1].Len)
	assert.Equal(t, ZERO, codewords[1].At(0))
	assert.Equal(t, ONE, codewords[1].At(1))
	assert.Empty(t, NewTrie().Codewords())
}
