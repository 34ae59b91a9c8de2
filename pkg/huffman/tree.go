// ABOUTME: Huffman tree construction
// ABOUTME: Arena-backed tree built by merging lowest-frequency nodes from a heap
package huffman

import (
	"container/heap"
	"fmt"

	"github.com/harperreed/waventropy/pkg/audio"
)

// noChild marks a missing child index
const noChild = -1

// Node is an entry in the tree arena.
// Leaves have no children and Symbol is the leaf's value.
// Internal nodes store the smallest symbol in their subtree, used for tie-breaking.
type Node struct {
	Symbol      int16
	Freq        uint64
	Left, Right int
}

// IsLeaf reports whether the node has no children
func (n Node) IsLeaf() bool {
	return n.Left == noChild && n.Right == noChild
}

// Tree is a Huffman tree stored as an arena. Children are addressed by index.
type Tree struct {
	Nodes []Node
	Root  int
}

// rootNode returns the root of the tree
func (t *Tree) rootNode() Node {
	return t.Nodes[t.Root]
}

// height returns the number of edges on the longest root-to-leaf path
func (t *Tree) height() int {
	type entry struct{ idx, depth int }

	height := 0
	stack := []entry{{t.Root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Nodes[e.idx]
		if n.IsLeaf() {
			if e.depth > height {
				height = e.depth
			}
			continue
		}
		stack = append(stack, entry{n.Left, e.depth + 1}, entry{n.Right, e.depth + 1})
	}
	return height
}

// nodeQueue is a min-heap of arena indices ordered by (Freq, Symbol)
type nodeQueue struct {
	nodes []Node
	items []int
}

func (q *nodeQueue) Len() int           { return len(q.items) }
func (q *nodeQueue) Less(i, j int) bool { return less(q.nodes[q.items[i]], q.nodes[q.items[j]]) }
func (q *nodeQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *nodeQueue) Push(x interface{}) { q.items = append(q.items, x.(int)) }
func (q *nodeQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[0 : n-1]
	return item
}

// less orders nodes by frequency, then by (minimum) symbol.
// Every live node covers a disjoint set of symbols, so the order is total.
func less(a, b Node) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.Symbol < b.Symbol
}

// BuildTree builds a Huffman tree from a frequency table.
// Symbols with a zero count are ignored.
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	symbols := freqs.Symbols()

	// d leaves plus d-1 internal nodes
	nodes := make([]Node, 0, 2*len(symbols))
	for _, s := range symbols {
		if freqs[s] == 0 {
			continue
		}
		nodes = append(nodes, Node{Symbol: s, Freq: freqs[s], Left: noChild, Right: noChild})
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no symbols to build a tree from", audio.ErrEmptyInput)
	}

	q := &nodeQueue{items: make([]int, len(nodes), cap(nodes))}
	for i := range nodes {
		q.items[i] = i
	}
	q.nodes = nodes
	heap.Init(q)

	for q.Len() > 1 {
		left := heap.Pop(q).(int)
		right := heap.Pop(q).(int)

		l, r := q.nodes[left], q.nodes[right]
		parent := Node{
			Symbol: min(l.Symbol, r.Symbol),
			Freq:   l.Freq + r.Freq,
			Left:   left,
			Right:  right,
		}
		q.nodes = append(q.nodes, parent)
		heap.Push(q, len(q.nodes)-1)
	}

	return &Tree{
		Nodes: q.nodes,
		Root:  heap.Pop(q).(int),
	}, nil
}
