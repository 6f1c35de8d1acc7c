package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
)

// forContext exposes init declarations to the condition, the updates, the body
// and the init entries following them. The body also sees patterns of a
// holding condition.
type forContext struct {
	base
}

func (c *forContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}

	init := c.node.ChildrenOf(jast.RoleInit)
	switch child.Role() {
	case jast.RoleInit:
		return nearestFirst(init[:jast.IndexOf(init, child)]), nil
	case jast.RoleCompare, jast.RoleUpdate:
		return nearestFirst(init), nil
	case jast.RoleBody:
		return append(nearestFirst(truePatterns(c.node.Child(jast.RoleCompare))), nearestFirst(init)...), nil
	default:
		return nil, nil
	}
}

func (c *forContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

// forEachContext exposes the loop variable to the body. The iterable does not see it.
type forEachContext struct {
	base
}

func (c *forEachContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}
	if child.Role() != jast.RoleBody {
		return nil, nil
	}

	return declarators(c.node.Child(jast.RoleVariable)), nil
}

func (c *forEachContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}
