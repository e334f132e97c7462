package trie

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// DepthMarker is repeated once per level in front of each rendered node.
const DepthMarker = "---"

// formats one rendered line, level counts the root as 1
func renderLine(n *Node, level int) string {
	var sb strings.Builder
	sb.Grow(level*len(DepthMarker) + 8)
	for i := 0; i < level; i++ {
		sb.WriteString(DepthMarker)
	}
	sb.WriteByte(n.label)
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(level - 1))
	sb.WriteByte(')')
	return sb.String()
}

// Lines lazily renders the trie as an indented tree. For every node the one
// subtree comes first, then the node itself, then the zero subtree, so ones
// read above zeros. Each call walks from the root again.
//
//	------1(1)
//	---/(0)
//	------0(1)
func (t *Trie) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		stack := []visit{}
		current, level := &t.root, 1
		for current != nil || len(stack) > 0 {
			for current != nil {
				stack = append(stack, visit{node: current, depth: level})
				current = current.Children[ONE]
				level++
			}
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(renderLine(v.node, v.depth)) {
				return
			}
			current, level = v.node.Children[ZERO], v.depth+1
		}
	}
}

// WriteTo writes the rendered trie to w, one line per node.
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for line := range t.Lines() {
		n, err := bw.WriteString(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written, err
		}
		written++
	}
	return written, bw.Flush()
}

// String renders the whole trie.
func (t *Trie) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)
	return sb.String()
}
