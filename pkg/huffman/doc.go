// ABOUTME: Huffman code construction package
// ABOUTME: Provides frequency tables, deterministic tree building and code assignment
// Package huffman builds optimal prefix codes over 16-bit sample symbols.
//
// The pipeline is:
//   - CountFrequencies: one pass over the symbols, producing a FrequencyTable
//   - BuildTree: greedy merge of the two lowest nodes using a min-heap
//   - AssignCodes: iterative depth-first walk producing a CodeTable
//
// Ties are broken by symbol value (for internal nodes, the smallest symbol
// in the subtree), so the same input always yields the same codes.
//
// A table with a single distinct symbol yields a tree whose root is a leaf.
// That symbol gets the empty code.
//
// Example:
//
//	freqs := huffman.CountFrequencies(samples)
//	tree, err := huffman.BuildTree(freqs)
//	codes, err := huffman.AssignCodes(tree)
package huffman
