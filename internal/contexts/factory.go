package contexts

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
)

// Factory builds contexts for nodes. It carries the session type solver and
// is safe for concurrent use as long as the solver and the hook are.
type Factory struct {
	solver   model.TypeSolver
	implicit []string
	hook     func(*jast.Node)
	log      *slog.Logger
}

// Option configures a [Factory].
type Option func(f *Factory)

// WithConstructionHook sets a function called every time a context is built.
func WithConstructionHook(hook func(*jast.Node)) Option {
	return func(f *Factory) {
		f.hook = hook
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(f *Factory) {
		if log != nil {
			f.log = log
		}
	}
}

// WithImplicitImports sets packages whose types are visible without imports.
// java.lang is the default.
func WithImplicitImports(pkgs ...string) Option {
	return func(f *Factory) {
		f.implicit = pkgs
	}
}

// NewFactory creates a factory using the given type solver, which may be nil.
func NewFactory(solver model.TypeSolver, opts ...Option) *Factory {
	f := &Factory{
		solver:   solver,
		implicit: []string{"java.lang"},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// ForNode returns the context of a scope bearing node.
func (f *Factory) ForNode(n *jast.Node) (Context, error) {
	if n == nil {
		return nil, contractError("ForNode", 0, ErrNoContext, nil)
	}

	ctx := f.build(n)
	if ctx == nil {
		f.log.Debug("no context for node", slog.String("node", n.String()))
		return nil, contractError("ForNode", n.Kind(), ErrNoContext, n)
	}

	return ctx, nil
}

// Eligible reports whether nodes of the kind bear a scope context.
func Eligible(k jast.Kind) bool {
	_, ok := constructors[k]
	return ok
}

// NearestEligible returns the closest eligible proper ancestor of n.
func NearestEligible(n *jast.Node) *jast.Node {
	return n.Ancestor(func(p *jast.Node) bool {
		return Eligible(p.Kind())
	})
}

var constructors = map[jast.Kind]func(b base) Context{
	jast.CompilationUnit: func(b base) Context { return &unitContext{base: b} },

	jast.ClassDeclaration:     func(b base) Context { return &classContext{base: b} },
	jast.InterfaceDeclaration: func(b base) Context { return &classContext{base: b} },
	jast.EnumDeclaration:      func(b base) Context { return &classContext{base: b} },
	jast.RecordDeclaration:    func(b base) Context { return &classContext{base: b} },

	jast.FieldDeclaration:       func(b base) Context { return &memberContext{base: b} },
	jast.InitializerDeclaration: func(b base) Context { return &memberContext{base: b} },
	jast.MethodDeclaration:      func(b base) Context { return &callableContext{base: b} },
	jast.ConstructorDeclaration: func(b base) Context { return &callableContext{base: b} },
	jast.LambdaExpr:             func(b base) Context { return &callableContext{base: b} },

	jast.BlockStmt:   func(b base) Context { return &blockContext{base: b} },
	jast.SwitchEntry: func(b base) Context { return &switchEntryContext{blockContext{base: b}} },

	jast.ForStmt:     func(b base) Context { return &forContext{base: b} },
	jast.ForEachStmt: func(b base) Context { return &forEachContext{base: b} },
	jast.TryStmt:     func(b base) Context { return &tryContext{base: b} },
	jast.CatchClause: func(b base) Context { return &catchContext{base: b} },

	jast.ExpressionStmt:                    func(b base) Context { return &expressionContext{base: b} },
	jast.IfStmt:                            func(b base) Context { return &ifContext{base: b} },
	jast.WhileStmt:                         func(b base) Context { return &whileContext{base: b} },
	jast.DoStmt:                            statement,
	jast.SwitchStmt:                        statement,
	jast.ReturnStmt:                        statement,
	jast.ThrowStmt:                         statement,
	jast.BreakStmt:                         statement,
	jast.ContinueStmt:                      statement,
	jast.EmptyStmt:                         statement,
	jast.LabeledStmt:                       statement,
	jast.SynchronizedStmt:                  statement,
	jast.YieldStmt:                         statement,
	jast.AssertStmt:                        statement,
	jast.LocalClassDeclarationStmt:         statement,
	jast.ExplicitConstructorInvocationStmt: statement,

	jast.BinaryExpr:      func(b base) Context { return &binaryContext{base: b} },
	jast.ConditionalExpr: func(b base) Context { return &conditionalContext{base: b} },
}

// SelectorType returns the type of the value a switch entry is matched
// against. It is known when the selector is a plain name with a declared type,
// and is unsolved otherwise.
func (f *Factory) SelectorType(entry *jast.Node) (TypeRef, error) {
	sw := entry.Parent()
	if entry.Kind() != jast.SwitchEntry || sw == nil {
		return unsolvedType(), contractError("SelectorType", entry.Kind(), ErrNotAChild, entry)
	}

	sel := sw.Child(jast.RoleSelector)
	if sel == nil || sel.Kind() != jast.NameExpr {
		return unsolvedType(), nil
	}

	ctx, err := f.ForNode(sw)
	if err != nil {
		return unsolvedType(), err
	}

	ref, err := SolveFromChild(ctx, sel, sel.Name())
	if err != nil {
		return unsolvedType(), fmt.Errorf("solve selector %s: %w", sel.Name(), err)
	}
	if !ref.IsSolved() || ref.Declaration().Type == "" {
		return unsolvedType(), nil
	}

	return ctx.SolveType(ref.Declaration().Type)
}

func statement(b base) Context {
	return &statementContext{base: b}
}

func (f *Factory) build(n *jast.Node) Context {
	ctor, ok := constructors[n.Kind()]
	if !ok {
		return nil
	}

	if f.hook != nil {
		f.hook(n)
	}
	return ctor(base{f: f, node: n})
}

func (f *Factory) enclosing(n *jast.Node) Context {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if ctx := f.build(p); ctx != nil {
			return ctx
		}
	}

	return nil
}

func (f *Factory) solveExternalType(name string) (TypeRef, error) {
	if f.solver == nil {
		return unsolvedType(), nil
	}

	ref, err := f.solver.SolveType(name)
	if err != nil {
		return unsolvedType(), fmt.Errorf("solve type %s: %w", name, err)
	}

	return ref, nil
}
