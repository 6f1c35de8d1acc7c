package contexts

import (
	"slices"

	"github.com/sirkon/symsolve/internal/model"
)

// statementContext serves statements binding nothing themselves.
type statementContext struct {
	base
}

func (c *statementContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

// expressionContext is an expression statement, the local variable declaration
// statement included.
type expressionContext struct {
	base
}

func (c *expressionContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

// DeclaredSymbol answers for the `T a = …, b = …;` form.
func (c *expressionContext) DeclaredSymbol(name string) ValueRef {
	decls := declarators(c.node)
	for _, d := range slices.Backward(decls) {
		if d.Name() == name {
			return model.Solved(declarationOf(d))
		}
	}

	return unsolvedValue()
}
