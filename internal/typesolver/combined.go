package typesolver

import (
	"fmt"

	"github.com/sirkon/symsolve/internal/model"
)

// Combined asks solvers in order, the first one finding the type wins. Memory
// types found through it resolve their ancestors through it as well, so a type
// of one solver may extend a type of another.
type Combined struct {
	solvers []model.TypeSolver
}

// rootable is a declaration whose ancestor lookup can be redirected.
type rootable interface {
	within(root model.TypeSolver) model.TypeDeclaration
}

func NewCombined(solvers ...model.TypeSolver) *Combined {
	return &Combined{solvers: solvers}
}

func (c *Combined) SolveType(name string) (model.SymbolReference[model.TypeDeclaration], error) {
	for i, s := range c.solvers {
		ref, err := s.SolveType(name)
		if err != nil {
			return model.Unsolved[model.TypeDeclaration](), fmt.Errorf("solver #%d: %w", i, err)
		}
		if !ref.IsSolved() {
			continue
		}
		if r, ok := ref.Declaration().(rootable); ok {
			return model.Solved(r.within(c)), nil
		}
		return ref, nil
	}

	return model.Unsolved[model.TypeDeclaration](), nil
}
