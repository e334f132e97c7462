// ## Overview
// Package trie implements the binary trie of an LZW style bit segmenter.
// Bits are inserted one at a time: while the bits match a path already in the
// trie the cursor walks down, the first bit without a matching edge becomes a
// new leaf and the cursor goes back to the root. The input stream is therefore
// cut into codewords, each one the longest known prefix plus one new bit.
//
// Once the input is consumed the trie can be measured (Depth, Mean,
// Deviance, Stats), listed (Codewords) and rendered (Lines, WriteTo).
//
// ## Example usage:
//
//	t := trie.NewTrie()
//	for _, bit := range []int{1, 0, 1, 1, 0} {
//		t.Insert(bit)
//	}
//
//	fmt.Println(t.Depth()) // Output: 2
//	mean, _ := t.Mean()
//	fmt.Println(mean) // Output: 1.5
//
//	for line := range t.Lines() {
//		fmt.Println(line)
//	}
//	// ---------1(2)
//	// ------1(1)
//	// ---/(0)
//	// ------0(1)
//
// All traversals use explicit stacks, a very deep trie will not exhaust the
// goroutine stack.
package trie
