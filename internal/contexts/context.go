package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

type (
	// ValueRef is the outcome of a value name lookup.
	ValueRef = model.SymbolReference[*model.ValueDeclaration]

	// TypeRef is the outcome of a type name lookup.
	TypeRef = model.SymbolReference[model.TypeDeclaration]
)

// Context is the scope view of a single node.
type Context interface {
	Node() *jast.Node

	// Parent returns the context of the nearest scope bearing ancestor. It is
	// nil for the root.
	Parent() Context

	// SolveSymbol resolves a value name as seen from this node: its own uniform
	// bindings first, then enclosing scopes.
	SolveSymbol(name string) (ValueRef, error)

	// SolveType resolves a type name as seen from this node.
	SolveType(name string) (TypeRef, error)

	// LocalVariablesExposedToChild returns declarators visible to the given direct
	// child only, nearest first.
	LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error)

	// DeclaredSymbol looks up a name among declarations the node introduces into
	// its enclosing statement list. It never looks outward.
	DeclaredSymbol(name string) ValueRef
}

func unsolvedValue() ValueRef {
	return model.Unsolved[*model.ValueDeclaration]()
}

func unsolvedType() TypeRef {
	return model.Unsolved[model.TypeDeclaration]()
}

// SolveFromChild resolves a name on behalf of child, a direct child of the
// context node: bindings exposed to that child specifically, then the context's
// own lookup.
func SolveFromChild(ctx Context, child *jast.Node, name string) (ValueRef, error) {
	exposed, err := ctx.LocalVariablesExposedToChild(child)
	if err != nil {
		return unsolvedValue(), err
	}
	if decl := pick(exposed, name); decl != nil {
		return model.Solved(decl), nil
	}

	if cs, ok := ctx.(childSolver); ok {
		ref, err := cs.solveForChild(child, name)
		if err != nil || ref.IsSolved() {
			return ref, err
		}
	}

	return ctx.SolveSymbol(name)
}

// childSolver is a context resolving names of some children by rules of its own.
// Unsolved answers fall through to the regular lookup.
type childSolver interface {
	solveForChild(child *jast.Node, name string) (ValueRef, error)
}

// ChildOnPath returns the direct child of ancestor lying on the way to node.
// It returns nil when ancestor is not a proper ancestor of node.
func ChildOnPath(ancestor, node *jast.Node) *jast.Node {
	for n := node; n != nil; n = n.Parent() {
		if n.Parent() == ancestor {
			return n
		}
	}

	return nil
}

// base carries what every context kind shares.
type base struct {
	f    *Factory
	node *jast.Node
}

func (b base) Node() *jast.Node {
	return b.node
}

func (b base) Parent() Context {
	return b.f.enclosing(b.node)
}

func (b base) SolveType(name string) (TypeRef, error) {
	if parent := b.Parent(); parent != nil {
		return parent.SolveType(name)
	}

	return b.f.solveExternalType(name)
}

func (b base) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := b.checkChild(child); err != nil {
		return nil, err
	}

	return nil, nil
}

func (b base) DeclaredSymbol(string) ValueRef {
	return unsolvedValue()
}

func (b base) checkChild(child *jast.Node) error {
	if !b.node.IsChild(child) {
		return contractError("LocalVariablesExposedToChild", b.node.Kind(), ErrNotAChild, child)
	}

	return nil
}

// solveOutward resolves a name the node itself does not bind. Inside a statement
// list the preceding siblings are asked first, nearest first; otherwise the
// enclosing context is asked on behalf of the child leading to this node.
func (b base) solveOutward(name string) (ValueRef, error) {
	parent := b.Parent()
	if parent == nil {
		return unsolvedValue(), nil
	}

	holder := b.node.Parent()
	if holder == parent.Node() && holder.Kind().HoldsStatements() && b.node.Role() == jast.RoleStatement {
		ref, err := b.scanPreceding(holder, name)
		if err != nil || ref.IsSolved() {
			return ref, err
		}

		return parent.SolveSymbol(name)
	}

	return SolveFromChild(parent, ChildOnPath(parent.Node(), b.node), name)
}

// scanPreceding walks siblings before the node backwards. Siblings answer with
// their own declarations only, so a query performs a single scan of the list.
func (b base) scanPreceding(holder *jast.Node, name string) (ValueRef, error) {
	stmts := holder.Statements()
	pos := jast.IndexOf(stmts, b.node)
	if pos < 0 {
		return unsolvedValue(), contractError("SolveSymbol", holder.Kind(), ErrNotInStatementList, b.node)
	}

	for i := pos - 1; i >= 0; i-- {
		sibling, err := b.f.ForNode(stmts[i])
		if err != nil {
			return unsolvedValue(), err
		}
		if ref := sibling.DeclaredSymbol(name); ref.IsSolved() {
			return ref, nil
		}
	}

	return unsolvedValue(), nil
}
