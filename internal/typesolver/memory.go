package typesolver

import (
	"errors"
	"fmt"

	"github.com/sirkon/symsolve/internal/model"
)

// Type describes an external type.
type Type struct {
	// Name is the qualified type name.
	Name string `yaml:"name"`

	Fields []Field `yaml:"fields"`

	// Ancestors are qualified names of direct supertypes.
	Ancestors []string `yaml:"ancestors"`
}

// Field describes a field of an external type.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Memory solves types from a fixed set of descriptors. It is immutable and safe
// for concurrent use.
type Memory struct {
	types map[string]*memoryType
}

// NewMemory creates a solver knowing the given types.
func NewMemory(types ...Type) (*Memory, error) {
	m := &Memory{types: make(map[string]*memoryType, len(types))}
	for i, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("type #%d: %w", i, errors.New("name is required"))
		}
		if _, ok := m.types[t.Name]; ok {
			return nil, fmt.Errorf("type %s: %w", t.Name, errors.New("declared more than once"))
		}

		mt := &memoryType{
			solver:    m,
			name:      t.Name,
			fields:    make(map[string]*model.ValueDeclaration, len(t.Fields)),
			ancestors: t.Ancestors,
		}
		for _, f := range t.Fields {
			mt.fields[f.Name] = &model.ValueDeclaration{
				Name:  f.Name,
				Kind:  model.Field,
				Owner: t.Name,
				Type:  f.Type,
			}
		}
		m.types[t.Name] = mt
	}

	return m, nil
}

// Len returns the number of known types.
func (m *Memory) Len() int {
	return len(m.types)
}

func (m *Memory) SolveType(name string) (model.SymbolReference[model.TypeDeclaration], error) {
	t, ok := m.types[name]
	if !ok {
		return model.Unsolved[model.TypeDeclaration](), nil
	}

	return model.Solved[model.TypeDeclaration](t), nil
}

type memoryType struct {
	solver    *Memory
	name      string
	fields    map[string]*model.ValueDeclaration
	ancestors []string

	// root resolves ancestors when the type was found through a [Combined].
	root model.TypeSolver
}

func (t *memoryType) QualifiedName() string {
	return t.name
}

func (t *memoryType) Field(name string) (*model.ValueDeclaration, bool) {
	d, ok := t.fields[name]
	return d, ok
}

// Ancestors resolves supertype names through the solver the type was found
// by: its own memory, or the combination it is part of.
func (t *memoryType) Ancestors() ([]model.TypeDeclaration, error) {
	var res []model.TypeDeclaration
	for _, name := range t.ancestors {
		if t.root == nil {
			if a, ok := t.solver.types[name]; ok {
				res = append(res, a)
			}
			continue
		}

		ref, err := t.root.SolveType(name)
		if err != nil {
			return nil, fmt.Errorf("solve ancestor %s of %s: %w", name, t.name, err)
		}
		if ref.IsSolved() {
			res = append(res, ref.Declaration())
		}
	}

	return res, nil
}

func (t *memoryType) within(root model.TypeSolver) model.TypeDeclaration {
	res := *t
	res.root = root
	return &res
}
