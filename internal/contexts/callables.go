package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

// callableContext serves methods, constructors and lambdas: their parameters
// are visible everywhere inside them.
type callableContext struct {
	base
}

func (c *callableContext) parameters() []*jast.Node {
	return c.node.ChildrenOf(jast.RoleParameter)
}

func (c *callableContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}
	if child.Role() != jast.RoleBody {
		return nil, nil
	}

	return nearestFirst(c.parameters()), nil
}

// SolveSymbol checks parameters, then the enclosing scopes. For a lambda these
// are the scopes it captures from.
func (c *callableContext) SolveSymbol(name string) (ValueRef, error) {
	if decl := pick(c.parameters(), name); decl != nil {
		return model.Solved(decl), nil
	}

	return c.solveOutward(name)
}

// memberContext serves field declarations and initializer blocks. Neither binds
// anything its contents could see.
type memberContext struct {
	base
}

func (c *memberContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}
