package trie

// is an alias for int used to define child positions in a trie node.
type ChildPos = int

// Constants representing possible child positions in the trie.
const ZERO ChildPos = 0
const ONE ChildPos = 1

// RootLabel is the label carried by the root node, it is never consumed by an insertion.
const RootLabel byte = '/'

// Node is a single vertex of the trie, reached from its parent by exactly one edge.
type Node struct {
	Children [2]*Node // Zero child at ZERO, one child at ONE
	label    byte     // '0', '1' or RootLabel
}

// returns the label of the node: '0', '1' or RootLabel
func (n *Node) Label() byte {
	return n.label
}

// returns the child node Zero or One
//
//	node.GetChildAt(trie.ZERO)
func (n *Node) GetChildAt(at ChildPos) *Node {
	if n == nil {
		panic("[BUG] GetChildAt: node must not be nil")
	}
	return n.Children[at]
}

// checks if the node is a leaf (has no children).
func (n *Node) IsLeaf() bool {
	return n.Children[ZERO] == nil && n.Children[ONE] == nil
}

// applies a function to each non-nil child of the node, one child first.
// will return the original node n
func (n *Node) ForEachChild(f func(child *Node)) *Node {
	if n.Children[ONE] != nil {
		f(n.Children[ONE])
	}
	if n.Children[ZERO] != nil {
		f(n.Children[ZERO])
	}
	return n
}

// Trie is the LZW binary trie. Bits are fed one at a time with Insert; every
// bit either extends the current match or closes a codeword by creating a leaf.
type Trie struct {
	root   Node
	cursor *Node
	nodes  int // number of nodes created so far, root excluded
}

// creates an empty trie holding only the root
func NewTrie() *Trie {
	t := &Trie{root: Node{label: RootLabel}}
	t.cursor = &t.root
	return t
}

// Root returns the root node.
func (t *Trie) Root() *Node {
	return &t.root
}

// Cursor returns the node the next bit will be matched from.
func (t *Trie) Cursor() *Node {
	return t.cursor
}

// Nodes returns how many nodes have been created, which is the number of
// codeword boundaries seen so far.
func (t *Trie) Nodes() int {
	return t.nodes
}

// IsEmpty reports whether no node was ever created below the root.
func (t *Trie) IsEmpty() bool {
	return t.root.IsLeaf()
}

// Insert feeds one bit into the trie. If the cursor already has a child along
// the bit's edge the cursor moves there, otherwise the child is created and the
// cursor goes back to the root. It returns true when a node was created.
// Only the lowest bit of bit is used: 2 is inserted as ZERO, 3 as ONE.
func (t *Trie) Insert(bit ChildPos) bool {
	bit &= 1
	if next := t.cursor.Children[bit]; next != nil {
		t.cursor = next
		return false
	}
	t.cursor.Children[bit] = &Node{label: '0' + byte(bit)}
	t.cursor = &t.root
	t.nodes++
	return true
}

// InsertByte feeds the 8 bits of b, most significant bit first, and returns
// the number of nodes created.
func (t *Trie) InsertByte(b byte) int {
	created := 0
	for i := 7; i >= 0; i-- {
		if t.Insert(ChildPos(b>>uint(i)) & 1) {
			created++
		}
	}
	return created
}

// Reset releases every node, children before parents, and puts the cursor back on the root.
func (t *Trie) Reset() {
	type frame struct {
		node    *Node
		visited bool
	}
	stack := []frame{{node: &t.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.visited {
			top.visited = true
			top.node.ForEachChild(func(child *Node) {
				stack = append(stack, frame{node: child})
			})
			continue
		}
		node := top.node
		stack = stack[:len(stack)-1]
		node.Children[ZERO], node.Children[ONE] = nil, nil
	}
	t.cursor = &t.root
	t.nodes = 0
}
