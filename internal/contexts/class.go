package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

// classContext serves class, interface, enum and record declarations.
type classContext struct {
	base
}

// SolveSymbol checks fields declared by the type and inherited from its ancestors,
// then the enclosing scopes.
func (c *classContext) SolveSymbol(name string) (ValueRef, error) {
	ref, err := model.LookupField(c.declaration(), name)
	if err != nil || ref.IsSolved() {
		return ref, err
	}

	return c.solveOutward(name)
}

func (c *classContext) SolveType(name string) (TypeRef, error) {
	if c.node.Name() == name {
		return model.Solved[model.TypeDeclaration](c.declaration()), nil
	}

	for _, m := range c.node.ChildrenOf(jast.RoleMember) {
		if m.Kind().IsTypeDeclaration() && m.Name() == name {
			return model.Solved[model.TypeDeclaration](sourceTypeOf(c.f, m)), nil
		}
	}

	return c.base.SolveType(name)
}

func (c *classContext) declaration() *sourceType {
	return &sourceType{f: c.f, node: c.node}
}

func sourceTypeOf(f *Factory, decl *jast.Node) *sourceType {
	return &sourceType{f: f, node: decl}
}

// sourceType is a type declared in the tree.
type sourceType struct {
	f    *Factory
	node *jast.Node
}

func (t *sourceType) QualifiedName() string {
	return qualifiedName(t.node)
}

// Node returns the declaration node.
func (t *sourceType) Node() *jast.Node {
	return t.node
}

func (t *sourceType) Field(name string) (*model.ValueDeclaration, bool) {
	owner := t.QualifiedName()

	for _, c := range t.node.ChildrenOf(jast.RoleConstant) {
		if c.Name() == name {
			return model.Member(model.EnumConstant, owner, c), true
		}
	}
	for _, c := range t.node.ChildrenOf(jast.RoleComponent) {
		if c.Name() == name {
			return model.Member(model.RecordComponent, owner, c), true
		}
	}
	for _, m := range t.node.ChildrenOf(jast.RoleMember) {
		if m.Kind() != jast.FieldDeclaration {
			continue
		}
		for _, d := range m.ChildrenOf(jast.RoleVariable) {
			if d.Name() == name {
				return model.Member(model.Field, owner, d), true
			}
		}
	}

	return nil, false
}

// Ancestors resolves extended and implemented types in the scope enclosing the
// declaration. Names that do not resolve are skipped.
func (t *sourceType) Ancestors() ([]model.TypeDeclaration, error) {
	scope := t.f.enclosing(t.node)

	var res []model.TypeDeclaration
	for _, c := range t.node.Children() {
		if c.Role() != jast.RoleExtends && c.Role() != jast.RoleImplements {
			continue
		}

		var ref TypeRef
		var err error
		if scope != nil {
			ref, err = scope.SolveType(c.Name())
		} else {
			ref, err = t.f.solveExternalType(c.Name())
		}
		if err != nil {
			return nil, err
		}
		if ref.IsSolved() {
			res = append(res, ref.Declaration())
		}
	}

	return res, nil
}
