package model

import (
	"fmt"
)

// TypeDeclaration is a type known to resolution, either declared in the tree or
// supplied by a [TypeSolver].
type TypeDeclaration interface {
	QualifiedName() string

	// Field returns a field declared by this very type, not inherited.
	Field(name string) (*ValueDeclaration, bool)

	// Ancestors returns direct supertypes. Ones that cannot be found are skipped.
	Ancestors() ([]TypeDeclaration, error)
}

// TypeSolver finds types by qualified name. Implementations used by concurrent
// queries must tolerate concurrent calls.
type TypeSolver interface {
	SolveType(name string) (SymbolReference[TypeDeclaration], error)
}

// LookupField searches the type and then its ancestors breadth-first, direct
// supertypes first. Every type is visited once, so cyclic hierarchies terminate.
func LookupField(typ TypeDeclaration, name string) (SymbolReference[*ValueDeclaration], error) {
	visited := map[string]bool{}
	queue := []TypeDeclaration{typ}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if visited[t.QualifiedName()] {
			continue
		}
		visited[t.QualifiedName()] = true

		if d, ok := t.Field(name); ok {
			return Solved(d), nil
		}

		ancestors, err := t.Ancestors()
		if err != nil {
			return Unsolved[*ValueDeclaration](), fmt.Errorf("get ancestors of %s: %w", t.QualifiedName(), err)
		}
		queue = append(queue, ancestors...)
	}

	return Unsolved[*ValueDeclaration](), nil
}
