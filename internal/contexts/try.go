package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
)

// tryContext exposes resources to the protected block and to the resources
// declared after them. Catch clauses and finally see none of them.
type tryContext struct {
	base
}

func (c *tryContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}

	resources := c.node.ChildrenOf(jast.RoleResource)
	switch child.Role() {
	case jast.RoleResource:
		return nearestFirst(resources[:jast.IndexOf(resources, child)]), nil
	case jast.RoleBody:
		return nearestFirst(resources), nil
	default:
		return nil, nil
	}
}

func (c *tryContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

type catchContext struct {
	base
}

func (c *catchContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}
	if child.Role() != jast.RoleBody {
		return nil, nil
	}

	return declarators(c.node.Child(jast.RoleParameter)), nil
}

func (c *catchContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}
