package contexts

import (
	"strings"

	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

// unitContext is the root scope of a compilation unit.
type unitContext struct {
	base
}

// SolveSymbol answers from static imports. The unit has nothing to delegate to.
func (c *unitContext) SolveSymbol(name string) (ValueRef, error) {
	for _, imp := range c.imports() {
		if !jast.IsStaticImport(imp) {
			continue
		}

		owner := imp.Name()
		if !jast.IsAsteriskImport(imp) {
			var member string
			owner, member = splitLast(imp.Name())
			if member != name {
				continue
			}
		}

		typ, err := c.SolveType(owner)
		if err != nil {
			return unsolvedValue(), err
		}
		if !typ.IsSolved() {
			continue
		}

		ref, err := model.LookupField(typ.Declaration(), name)
		if err != nil || ref.IsSolved() {
			return ref, err
		}
	}

	return unsolvedValue(), nil
}

// SolveType looks at declared types, single type imports, the unit package,
// on demand imports and implicit imports, in this order. A qualified name is
// only checked against declared types and the type solver.
func (c *unitContext) SolveType(name string) (TypeRef, error) {
	for _, decl := range c.node.ChildrenOf(jast.RoleDeclaration) {
		if decl.Name() == name || qualifiedName(decl) == name {
			return model.Solved[model.TypeDeclaration](sourceTypeOf(c.f, decl)), nil
		}
	}

	if strings.Contains(name, ".") {
		return c.f.solveExternalType(name)
	}

	var candidates []string
	for _, imp := range c.imports() {
		if jast.IsStaticImport(imp) || jast.IsAsteriskImport(imp) {
			continue
		}
		if _, last := splitLast(imp.Name()); last == name {
			candidates = append(candidates, imp.Name())
		}
	}
	if pkg := c.node.Child(jast.RolePackage); pkg != nil && pkg.Name() != "" {
		candidates = append(candidates, pkg.Name()+"."+name)
	}
	for _, imp := range c.imports() {
		if jast.IsAsteriskImport(imp) && !jast.IsStaticImport(imp) {
			candidates = append(candidates, imp.Name()+"."+name)
		}
	}
	for _, pkg := range c.f.implicit {
		candidates = append(candidates, pkg+"."+name)
	}
	candidates = append(candidates, name)

	for _, candidate := range candidates {
		ref, err := c.f.solveExternalType(candidate)
		if err != nil || ref.IsSolved() {
			return ref, err
		}
	}

	return unsolvedType(), nil
}

func (c *unitContext) imports() []*jast.Node {
	return c.node.ChildrenOf(jast.RoleImport)
}

func splitLast(name string) (string, string) {
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 {
		return "", name
	}

	return name[:pos], name[pos+1:]
}
