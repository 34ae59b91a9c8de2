// ABOUTME: Huffman code assignment
// ABOUTME: Walks the tree iteratively and records a bit code for every leaf
package huffman

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxCodeLength is the longest code a Code can hold
const MaxCodeLength = 64

// ErrCodeTooLong is returned when a leaf sits deeper than MaxCodeLength
var ErrCodeTooLong = errors.New("huffman code too long")

// Code is a bit code, most significant bit first
type Code struct {
	Bits uint64 // The bit pattern, right-aligned
	Len  int    // How many bits are used
}

// String renders the code as '0' and '1' characters
func (c Code) String() string {
	var b strings.Builder
	b.Grow(c.Len)
	for i := c.Len - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// HasPrefix reports whether p is a prefix of c
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>uint(c.Len-p.Len) == p.Bits
}

// CodeTable maps a symbol to its code
type CodeTable map[int16]Code

// AssignCodes walks the tree depth-first, appending 0 for left and 1 for right.
// A tree whose root is a leaf assigns that symbol the empty code.
func AssignCodes(t *Tree) (CodeTable, error) {
	type entry struct {
		idx  int
		code Code
	}

	codes := make(CodeTable)
	stack := []entry{{idx: t.Root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Nodes[e.idx]
		if n.IsLeaf() {
			codes[n.Symbol] = e.code
			continue
		}

		if e.code.Len == MaxCodeLength {
			return nil, fmt.Errorf("%w: subtree of symbol %d is deeper than %d bits",
				ErrCodeTooLong, n.Symbol, MaxCodeLength)
		}

		// Push right first so the left subtree is visited first
		stack = append(stack,
			entry{idx: n.Right, code: Code{Bits: e.code.Bits<<1 | 1, Len: e.code.Len + 1}},
			entry{idx: n.Left, code: Code{Bits: e.code.Bits << 1, Len: e.code.Len + 1}},
		)
	}

	return codes, nil
}

// IsPrefixFree reports whether no code is a prefix of another.
// A table with a single code is prefix-free.
func (ct CodeTable) IsPrefixFree() bool {
	codes := make([]Code, 0, len(ct))
	for _, c := range ct {
		codes = append(codes, c)
	}

	// In lexicographic order a prefix sorts directly before one of its extensions
	sort.Slice(codes, func(i, j int) bool { return codes[i].String() < codes[j].String() })
	for i := 1; i < len(codes); i++ {
		if codes[i].HasPrefix(codes[i-1]) {
			return false
		}
	}
	return true
}

// MaxLen returns the length of the longest code
func (ct CodeTable) MaxLen() int {
	longest := 0
	for _, c := range ct {
		longest = max(longest, c.Len)
	}
	return longest
}
