package resolver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sirkon/symsolve/internal/contexts"
	"github.com/sirkon/symsolve/internal/jast"
)

var (
	// ErrNoName means the node given as a use carries no name.
	ErrNoName = errors.New("node carries no name")

	// ErrNothingAt means no name use covers the offset.
	ErrNothingAt = errors.New("no name at offset")
)

// Resolver resolves names with contexts built by a factory.
type Resolver struct {
	f   *contexts.Factory
	log *slog.Logger
}

// Option configures a [Resolver].
type Option func(r *Resolver)

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

func New(f *contexts.Factory, opts ...Option) *Resolver {
	r := &Resolver{
		f:   f,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Solve resolves the name carried by use, normally a NameExpr.
func (r *Resolver) Solve(use *jast.Node) (contexts.ValueRef, error) {
	if use.Name() == "" {
		return contexts.ValueRef{}, fmt.Errorf("solve %s: %w", use, ErrNoName)
	}

	return r.SolveName(use, use.Name())
}

// SolveName resolves a name as if it was used at the given node: declarations
// introduced by the node itself are not visible.
func (r *Resolver) SolveName(at *jast.Node, name string) (contexts.ValueRef, error) {
	n := contexts.NearestEligible(at)
	if n == nil {
		return r.solveAtRoot(at, name)
	}

	ctx, err := r.f.ForNode(n)
	if err != nil {
		return contexts.ValueRef{}, fmt.Errorf("get context of %s: %w", n, err)
	}

	ref, err := contexts.SolveFromChild(ctx, contexts.ChildOnPath(n, at), name)
	if err != nil {
		return contexts.ValueRef{}, fmt.Errorf("solve %s at %s: %w", name, at, err)
	}

	r.logResult(at, name, ref)
	return ref, nil
}

// SolveType resolves a type name as seen from the given node.
func (r *Resolver) SolveType(at *jast.Node, name string) (contexts.TypeRef, error) {
	n := at
	if !contexts.Eligible(n.Kind()) {
		n = contexts.NearestEligible(at)
	}
	if n == nil {
		return contexts.TypeRef{}, nil
	}

	ctx, err := r.f.ForNode(n)
	if err != nil {
		return contexts.TypeRef{}, fmt.Errorf("get context of %s: %w", n, err)
	}

	ref, err := ctx.SolveType(name)
	if err != nil {
		return contexts.TypeRef{}, fmt.Errorf("solve type %s at %s: %w", name, at, err)
	}

	return ref, nil
}

// SelectorType returns the type a switch entry is matched against, unsolved
// when it cannot be told without type inference.
func (r *Resolver) SelectorType(entry *jast.Node) (contexts.TypeRef, error) {
	return r.f.SelectorType(entry)
}

// SolveAt resolves the name use covering the offset. It also returns the use itself.
func (r *Resolver) SolveAt(index *jast.Index, offset int) (*jast.Node, contexts.ValueRef, error) {
	n := index.At(offset)
	if n == nil || n.Kind() != jast.NameExpr {
		return nil, contexts.ValueRef{}, fmt.Errorf("offset %d: %w", offset, ErrNothingAt)
	}

	ref, err := r.Solve(n)
	if err != nil {
		return n, contexts.ValueRef{}, err
	}

	return n, ref, nil
}

func (r *Resolver) solveAtRoot(at *jast.Node, name string) (contexts.ValueRef, error) {
	if !contexts.Eligible(at.Kind()) {
		return contexts.ValueRef{}, nil
	}

	ctx, err := r.f.ForNode(at)
	if err != nil {
		return contexts.ValueRef{}, fmt.Errorf("get context of %s: %w", at, err)
	}

	ref, err := ctx.SolveSymbol(name)
	if err != nil {
		return contexts.ValueRef{}, fmt.Errorf("solve %s at %s: %w", name, at, err)
	}

	r.logResult(at, name, ref)
	return ref, nil
}

func (r *Resolver) logResult(at *jast.Node, name string, ref contexts.ValueRef) {
	if !ref.IsSolved() {
		r.log.Debug("name is not resolved", slog.String("name", name), slog.String("at", at.String()))
		return
	}

	r.log.Debug(
		"name resolved",
		slog.String("name", name),
		slog.String("at", at.String()),
		slog.String("declaration", ref.Declaration().String()),
	)
}
