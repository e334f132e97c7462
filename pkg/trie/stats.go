package trie

import (
	"errors"
	"math"
)

// ErrEmptyTrie is returned by the leaf statistics when nothing was inserted,
// there is no leaf below the root to measure.
var ErrEmptyTrie = errors.New("trie: no leaves below the root")

// Stats bundles the shape statistics of a trie.
type Stats struct {
	Nodes    int     // nodes below the root
	Leaves   int     // nodes without children
	Depth    int     // edges on the longest root-to-node path
	Mean     float64 // mean leaf depth, NaN when empty
	Deviance float64 // sample standard deviation of the leaf depth, NaN when empty
}

// visit is a node on the traversal stack with its depth in edges from the root.
type visit struct {
	node  *Node
	depth int
}

// walk visits every node in pre-order, one child first, without recursion.
func (t *Trie) walk(f func(n *Node, depth int)) {
	stack := []visit{{node: &t.root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(v.node, v.depth)
		// zero pushed first so the one child is popped first
		if c := v.node.Children[ZERO]; c != nil {
			stack = append(stack, visit{node: c, depth: v.depth + 1})
		}
		if c := v.node.Children[ONE]; c != nil {
			stack = append(stack, visit{node: c, depth: v.depth + 1})
		}
	}
}

// Depth returns the number of edges on the longest path from the root.
// A trie holding only the root has depth 0.
func (t *Trie) Depth() int {
	maxDepth := 0
	t.walk(func(_ *Node, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	return maxDepth
}

// leafDepths accumulates the sum and count of leaf depths.
func (t *Trie) leafDepths() (sum, count int) {
	t.walk(func(n *Node, depth int) {
		if n.IsLeaf() {
			sum += depth
			count++
		}
	})
	return sum, count
}

// Mean returns the mean depth of the leaves, or ErrEmptyTrie with NaN.
func (t *Trie) Mean() (float64, error) {
	if t.IsEmpty() {
		return math.NaN(), ErrEmptyTrie
	}
	sum, count := t.leafDepths()
	return float64(sum) / float64(count), nil
}

// Deviance returns the sample standard deviation of the leaf depths. The mean
// is computed first and the squared deviations are summed on a second walk.
// With a single leaf the result is 0.
func (t *Trie) Deviance() (float64, error) {
	mean, err := t.Mean()
	if err != nil {
		return math.NaN(), err
	}
	deviance, _ := t.deviance(mean)
	return deviance, nil
}

// deviance sums the squared deviations from mean over the leaves and counts
// the leaves again on the way.
func (t *Trie) deviance(mean float64) (deviance float64, leaves int) {
	var sumSq float64
	count := 0
	t.walk(func(n *Node, depth int) {
		if n.IsLeaf() {
			d := float64(depth) - mean
			sumSq += d * d
			count++
		}
	})
	if count > 1 {
		return math.Sqrt(sumSq / float64(count-1)), count
	}
	return math.Sqrt(sumSq), count
}

// Stats computes every statistic of the trie. On an empty trie Mean and
// Deviance are NaN and ErrEmptyTrie is returned alongside the other fields.
func (t *Trie) Stats() (Stats, error) {
	s := Stats{Nodes: t.nodes, Depth: t.Depth()}
	mean, err := t.Mean()
	s.Mean = mean
	if err != nil {
		s.Deviance = math.NaN()
		return s, err
	}
	s.Deviance, s.Leaves = t.deviance(mean)
	return s, nil
}
