// Package checker walks a tree and reports names that resolve nowhere and local
// declarations hiding other ones.
package checker

import (
	"errors"
	"fmt"

	"github.com/sirkon/symsolve/internal/contexts"
	"github.com/sirkon/symsolve/internal/diag"
	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/resolver"
)

// Check reports diagnostics of the tree to rep. Contract violations met on the
// way are reported as diagnostics too; other errors stop the check.
func Check(root *jast.Node, r *resolver.Resolver, rep *diag.Reporter) error {
	c := &checker{
		r:     r,
		uses:  rep.Phase(diag.ReportUses),
		decls: rep.Phase(diag.ReportDeclarations),
	}

	var err error
	root.Walk(func(n *jast.Node) bool {
		if err != nil {
			return false
		}

		switch n.Kind() {
		case jast.NameExpr:
			err = c.checkUse(n)
		case jast.VariableDeclarator, jast.Parameter, jast.PatternExpr:
			err = c.checkDeclaration(n)
		}
		return true
	})

	return err
}

type checker struct {
	r     *resolver.Resolver
	uses  *diag.ReporterPhase
	decls *diag.ReporterPhase
}

func (c *checker) checkUse(use *jast.Node) error {
	ref, err := c.r.Solve(use)
	if err != nil {
		return c.contractOrFail(use, err)
	}
	if ref.IsSolved() {
		return nil
	}

	// Qualifiers like System in System.out are type names.
	typ, err := c.r.SolveType(use, use.Name())
	if err != nil {
		return c.contractOrFail(use, err)
	}
	if typ.IsSolved() {
		return nil
	}

	if use.Role() == jast.RoleLabel && use.Parent().Kind() == jast.SwitchEntry {
		// Without the selector type a label may be a constant of any type.
		sel, err := c.r.SelectorType(use.Parent())
		if err != nil {
			return c.contractOrFail(use, err)
		}
		if !sel.IsSolved() {
			return nil
		}
		c.uses.Report(diag.UnresolvedName(), fmt.Sprintf("%s is not a constant of %s", use.Name(), sel.Declaration().QualifiedName()), use)
		return nil
	}

	c.uses.Report(diag.UnresolvedName(), fmt.Sprintf("%s is not declared", use.Name()), use)
	return nil
}

func (c *checker) checkDeclaration(decl *jast.Node) error {
	at := declaringSite(decl)
	if at == nil {
		return nil
	}

	ref, err := c.r.SolveName(at, decl.Name())
	if err != nil {
		return c.contractOrFail(decl, err)
	}
	if !ref.IsSolved() {
		return nil
	}

	hidden := ref.Declaration()
	if hidden.Kind.IsMember() {
		c.decls.Report(diag.ShadowsField(), fmt.Sprintf("%s hides %s", decl.Name(), hidden), decl)
		return nil
	}

	c.decls.Report(diag.ShadowsLocal(), fmt.Sprintf("%s hides %s", decl.Name(), hidden), decl)
	return nil
}

// declaringSite returns the node from which a local declaration looks for names
// it can hide. It is nil for declarations that are not local: fields, record
// components, method and constructor parameters.
func declaringSite(decl *jast.Node) *jast.Node {
	p := decl.Parent()
	if p == nil {
		return nil
	}

	switch decl.Kind() {
	case jast.VariableDeclarator:
		if p.Kind() != jast.VariableDeclarationExpr {
			return nil
		}
		return decl
	case jast.Parameter:
		switch p.Kind() {
		case jast.LambdaExpr:
			// Lambda parameters are bound for the whole lambda.
			return p
		case jast.CatchClause:
			return decl
		}
		return nil
	case jast.PatternExpr:
		if entry := decl.Ancestor(jast.OfKind(jast.SwitchEntry)); entry != nil && contexts.ChildOnPath(entry, decl).Role() == jast.RoleLabel {
			// Label patterns are bound for the whole entry.
			return entry
		}
		return decl
	default:
		return nil
	}
}

func (c *checker) contractOrFail(n *jast.Node, err error) error {
	var ce *contexts.ContractError
	if !errors.As(err, &ce) {
		return fmt.Errorf("check %s: %w", n, err)
	}

	c.uses.Report(diag.ContractViolation(), ce.Error(), n)
	return nil
}
