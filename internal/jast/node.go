package jast

import (
	"fmt"
	"strings"
)

// Span is an inclusive [Start, End] range of source offsets.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]", s.Start, s.End)
}

// Node is a syntax tree element. Nodes are built top-down by their owner and never
// change afterwards: children keep their order and the parent link is set once.
type Node struct {
	kind  Kind
	role  Role
	name  string
	value string
	span  Span

	// hasSpan tells a recorded [0, 0] span from no span at all.
	hasSpan bool

	parent   *Node
	children []*Node
}

func (n *Node) Kind() Kind { return n.kind }

// Role returns the part the node plays in its parent. It is RoleNone at the root.
func (n *Node) Role() Role { return n.role }

// Name returns the identifier carried by the node, if any.
func (n *Node) Name() string { return n.name }

// Value returns the literal, operator or keyword carried by the node, if any.
func (n *Node) Value() string { return n.value }

// Span returns the source range. It is meaningful only when [Node.HasSpan] is true.
func (n *Node) Span() Span { return n.span }

// HasSpan reports whether the node has a recorded source range.
func (n *Node) HasSpan() bool { return n.hasSpan }

// Parent returns nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns all children including comments. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Child returns the first child with the given role.
func (n *Node) Child(role Role) *Node {
	for _, c := range n.children {
		if c.role == role {
			return c
		}
	}

	return nil
}

// ChildrenOf returns children with the given role in order.
func (n *Node) ChildrenOf(role Role) []*Node {
	var res []*Node
	for _, c := range n.children {
		if c.role == role {
			res = append(res, c)
		}
	}

	return res
}

// Statements returns the ordered statement list of a BlockStmt or SwitchEntry.
func (n *Node) Statements() []*Node {
	if !n.kind.HoldsStatements() {
		return nil
	}

	return n.ChildrenOf(RoleStatement)
}

// Comments returns comment children.
func (n *Node) Comments() []*Node {
	return n.ChildrenOf(RoleComment)
}

// IsChild reports whether c is a direct child of n.
func (n *Node) IsChild(c *Node) bool {
	if c == nil {
		return false
	}
	for _, v := range n.children {
		if v == c {
			return true
		}
	}

	return false
}

// Ancestor returns the nearest proper ancestor satisfying pred.
func (n *Node) Ancestor(pred func(*Node) bool) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if pred(p) {
			return p
		}
	}

	return nil
}

// Walk visits n and its descendants in preorder. Returning false from fn skips
// the subtree of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in preorder satisfying pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var res *Node
	n.Walk(func(v *Node) bool {
		if res != nil {
			return false
		}
		if pred(v) {
			res = v
			return false
		}
		return true
	})

	return res
}

// FindAll returns all nodes in preorder satisfying pred.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var res []*Node
	n.Walk(func(v *Node) bool {
		if pred(v) {
			res = append(res, v)
		}
		return true
	})

	return res
}

// OfKind is a Find/FindAll predicate.
func OfKind(k Kind) func(*Node) bool {
	return func(n *Node) bool { return n.kind == k }
}

// Named is a Find/FindAll predicate matching kind and name.
func Named(k Kind, name string) func(*Node) bool {
	return func(n *Node) bool { return n.kind == k && n.name == name }
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(n.kind.String())
	if n.name != "" {
		b.WriteByte('(')
		b.WriteString(n.name)
		b.WriteByte(')')
	}
	if n.value != "" {
		b.WriteByte('[')
		b.WriteString(n.value)
		b.WriteByte(']')
	}
	if n.hasSpan {
		b.WriteString(n.span.String())
	}

	return b.String()
}

// attach links child under n with the given role. It panics on tree shape violations:
// those are programming errors of the tree producer.
func (n *Node) attach(role Role, child *Node) {
	if child == nil {
		return
	}
	if err := n.checkAttach(role, child); err != nil {
		panic(err)
	}

	child.role = role
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) checkAttach(role Role, child *Node) error {
	if child.parent != nil {
		return fmt.Errorf("attach %s under %s: node already has parent %s", child, n, child.parent)
	}

	if role == RoleComment {
		if !child.kind.IsComment() {
			return fmt.Errorf("attach %s under %s: only comments may take the comment role", child, n)
		}
		return nil
	}

	s, ok := slotOf(n.kind, role)
	if !ok {
		return fmt.Errorf("attach %s under %s: no %s slot", child, n, role)
	}
	if !s.accepts(child.kind) {
		return fmt.Errorf("attach %s under %s: %s slot does not accept %s", child, n, role, child.kind)
	}
	if !s.many && n.Child(role) != nil {
		return fmt.Errorf("attach %s under %s: %s slot is already filled", child, n, role)
	}

	return nil
}
