package jast

import (
	"fmt"

	"github.com/sirkon/rbtree"
)

// Index finds the innermost node covering a source offset.
type Index struct {
	tree *rbtree.Tree[*spanEntry]
	size int
}

// NewIndex registers every node of the tree that has a recorded span, [0, 0]
// included. Comments
// are left out. Spans of a tree must nest: two spans either are disjoint or one
// contains the other.
func NewIndex(root *Node) (*Index, error) {
	x := &Index{tree: rbtree.New[*spanEntry]()}

	var err error
	root.Walk(func(n *Node) bool {
		if err != nil {
			return false
		}
		if n.kind.IsComment() || !n.hasSpan {
			return true
		}

		// Preorder walk: an enclosing span is always registered before its contents.
		err = attachInto(x.tree, &spanEntry{start: n.span.Start, end: n.span.End, node: n})
		x.size++
		return true
	})
	if err != nil {
		return nil, err
	}

	return x, nil
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int {
	return x.size
}

// At returns the innermost node covering the offset, or nil.
func (x *Index) At(offset int) *Node {
	key := &spanEntry{start: offset, end: offset}
	res := x.tree.Search(key)
	if res == nil {
		return nil
	}

	return descendSearch(res, offset)
}

// spanEntry keeps a node span and a nested tree of the spans it contains.
type spanEntry struct {
	start int
	end   int

	node     *Node
	children *rbtree.Tree[*spanEntry]
}

// Cmp orders disjoint spans by position and reports 0 for any overlap:
// the tree hands the overlapping entry back on insert and containment is
// sorted out by attachInto.
func (e *spanEntry) Cmp(other *spanEntry) int {
	if e.end < other.start {
		return -1
	}
	if e.start > other.end {
		return 1
	}
	return 0
}

func (e *spanEntry) contains(other *spanEntry) bool {
	return e.start <= other.start && e.end >= other.end
}

// attachInto places s into t. An equal span goes under the existing one, so
// a node and its child sharing a range resolve to the child.
func attachInto(t *rbtree.Tree[*spanEntry], s *spanEntry) error {
	r := t.InsertReturn(s)
	if r == s {
		return nil
	}

	if !r.contains(s) {
		return fmt.Errorf("span %s of %s overlaps span %s of %s without nesting", s.node.span, s.node, r.node.span, r.node)
	}

	if r.children == nil {
		r.children = rbtree.New[*spanEntry]()
	}
	return attachInto(r.children, s)
}

func descendSearch(e *spanEntry, offset int) *Node {
	if e.children == nil {
		return e.node
	}

	key := &spanEntry{start: offset, end: offset}
	child := e.children.Search(key)
	if child == nil {
		return e.node
	}

	return descendSearch(child, offset)
}
