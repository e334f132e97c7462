package trie

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Codeword is the path from the root to a leaf. Bit i is the edge taken at depth i+1.
type Codeword struct {
	Bits *bitset.BitSet
	Len  uint
}

// At returns the edge taken at position i of the path.
func (c Codeword) At(i uint) ChildPos {
	if c.Bits.Test(i) {
		return ONE
	}
	return ZERO
}

// String renders the codeword as a string of '0' and '1'.
func (c Codeword) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := uint(0); i < c.Len; i++ {
		sb.WriteByte('0' + byte(c.At(i)))
	}
	return sb.String()
}

// Codewords generates the path of every leaf below the root, in the order the
// leaves are rendered (one subtree first). An empty trie has no codewords.
func (t *Trie) Codewords() []Codeword {
	type frame struct {
		node *Node
		path *bitset.BitSet
		len  uint
	}

	codewords := []Codeword{}
	if t.IsEmpty() {
		return codewords
	}

	stack := []frame{{node: &t.root, path: bitset.New(0)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.IsLeaf() {
			codewords = append(codewords, Codeword{Bits: f.path, Len: f.len})
			continue
		}
		if c := f.node.Children[ZERO]; c != nil {
			stack = append(stack, frame{node: c, path: f.path.Clone().Clear(f.len), len: f.len + 1})
		}
		if c := f.node.Children[ONE]; c != nil {
			stack = append(stack, frame{node: c, path: f.path.Clone().Set(f.len), len: f.len + 1})
		}
	}
	return codewords
}
