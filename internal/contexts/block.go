package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

// blockContext is the scope of a statement list.
type blockContext struct {
	base
}

// LocalVariablesExposedToChild returns declarators of the local declarations
// preceding the child, nearest first. The child is located by identity and,
// failing that, by structure, taking the last structural match.
func (c *blockContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	stmts := c.node.Statements()
	pos := jast.LastIndexOf(stmts, child)
	if pos < 0 {
		return nil, contractError("LocalVariablesExposedToChild", c.node.Kind(), ErrNotAChild, child)
	}

	return nearestFirst(stmts[:pos]), nil
}

func (c *blockContext) SolveSymbol(name string) (ValueRef, error) {
	parent := c.Parent()
	if parent == nil {
		return unsolvedValue(), nil
	}

	switch c.node.Parent().Kind() {
	case jast.MethodDeclaration, jast.ConstructorDeclaration, jast.LambdaExpr:
		return parent.SolveSymbol(name)
	}

	return c.solveOutward(name)
}

// switchEntryContext is a statement list whose labels may bind pattern variables
// visible to all its statements. Colon entries of a switch share one scope:
// locals of earlier entries are visible in later ones. Arrow entries are
// isolated.
type switchEntryContext struct {
	blockContext
}

func (c *switchEntryContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}
	if child.Role() != jast.RoleStatement {
		return nil, nil
	}

	return c.blockContext.LocalVariablesExposedToChild(child)
}

func (c *switchEntryContext) SolveSymbol(name string) (ValueRef, error) {
	for _, label := range c.node.ChildrenOf(jast.RoleLabel) {
		if decl := pick(patternsOf(label), name); decl != nil {
			return model.Solved(decl), nil
		}
	}

	if !jast.IsArrowEntry(c.node) {
		ref, err := c.scanPrecedingEntries(name)
		if err != nil || ref.IsSolved() {
			return ref, err
		}
	}

	return c.solveOutward(name)
}

// solveForChild resolves a bare name label against the selector type:
// `case RED:` names a constant of the enum switched on.
func (c *switchEntryContext) solveForChild(child *jast.Node, name string) (ValueRef, error) {
	if child.Role() != jast.RoleLabel || child.Kind() != jast.NameExpr {
		return unsolvedValue(), nil
	}

	typ, err := c.f.SelectorType(c.node)
	if err != nil || !typ.IsSolved() {
		return unsolvedValue(), err
	}

	return model.LookupField(typ.Declaration(), name)
}

// scanPrecedingEntries asks statements of the earlier entries, last one first.
func (c *switchEntryContext) scanPrecedingEntries(name string) (ValueRef, error) {
	sw := c.node.Parent()
	if sw == nil {
		return unsolvedValue(), nil
	}

	entries := sw.ChildrenOf(jast.RoleEntry)
	pos := jast.IndexOf(entries, c.node)
	if pos < 0 {
		return unsolvedValue(), contractError("SolveSymbol", sw.Kind(), ErrNotAChild, c.node)
	}

	for i := pos - 1; i >= 0; i-- {
		stmts := entries[i].Statements()
		for j := len(stmts) - 1; j >= 0; j-- {
			sibling, err := c.f.ForNode(stmts[j])
			if err != nil {
				return unsolvedValue(), err
			}
			if ref := sibling.DeclaredSymbol(name); ref.IsSolved() {
				return ref, nil
			}
		}
	}

	return unsolvedValue(), nil
}
