package contexts

import (
	"slices"
	"strings"

	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

// declarators returns variables a local declaration introduces, in source order.
// Anything else introduces nothing.
func declarators(n *jast.Node) []*jast.Node {
	if n == nil {
		return nil
	}

	switch n.Kind() {
	case jast.VariableDeclarationExpr:
		return n.ChildrenOf(jast.RoleVariable)
	case jast.ExpressionStmt:
		return declarators(n.Child(jast.RoleExpression))
	case jast.Parameter, jast.PatternExpr:
		return []*jast.Node{n}
	default:
		return nil
	}
}

// nearestFirst collects declarators of nodes given in source order, last one first.
func nearestFirst(nodes []*jast.Node) []*jast.Node {
	var res []*jast.Node
	for _, n := range nodes {
		res = append(res, declarators(n)...)
	}
	slices.Reverse(res)

	return res
}

// pick returns the declaration of the first declarator with the name.
func pick(exposed []*jast.Node, name string) *model.ValueDeclaration {
	for _, d := range exposed {
		if d.Name() == name {
			return declarationOf(d)
		}
	}

	return nil
}

func declarationOf(n *jast.Node) *model.ValueDeclaration {
	switch n.Kind() {
	case jast.Parameter:
		if p := n.Parent(); p != nil && p.Kind() == jast.RecordDeclaration {
			return model.Member(model.RecordComponent, qualifiedName(p), n)
		}
		return model.Declared(model.Parameter, n)
	case jast.PatternExpr:
		return model.Declared(model.PatternVariable, n)
	case jast.EnumConstantDeclaration:
		return model.Member(model.EnumConstant, qualifiedName(n.Parent()), n)
	default:
		if p := n.Parent(); p != nil && p.Kind() == jast.FieldDeclaration {
			return model.Member(model.Field, qualifiedName(p.Parent()), n)
		}
		return model.Declared(model.LocalVariable, n)
	}
}

// patternsOf collects pattern variables introduced by expressions under n.
// Lambdas are not entered: their patterns belong to them.
func patternsOf(n *jast.Node) []*jast.Node {
	var res []*jast.Node
	n.Walk(func(v *jast.Node) bool {
		switch v.Kind() {
		case jast.PatternExpr:
			res = append(res, v)
		case jast.LambdaExpr:
			return false
		}
		return true
	})

	return res
}

// qualifiedName builds the dotted name of a type declaration from the package
// and enclosing type names.
func qualifiedName(decl *jast.Node) string {
	if decl == nil {
		return ""
	}

	var parts []string
	for n := decl; n != nil; n = n.Parent() {
		switch {
		case n.Kind().IsTypeDeclaration():
			parts = append(parts, n.Name())
		case n.Kind() == jast.CompilationUnit:
			if pkg := n.Child(jast.RolePackage); pkg != nil && pkg.Name() != "" {
				parts = append(parts, pkg.Name())
			}
		}
	}
	slices.Reverse(parts)

	return strings.Join(parts, ".")
}
