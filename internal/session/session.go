// Package session assembles everything a query needs from raw inputs: the tree,
// external type descriptors and the configuration.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/tools/txtar"

	"github.com/sirkon/symsolve/internal/checker"
	"github.com/sirkon/symsolve/internal/config"
	"github.com/sirkon/symsolve/internal/contexts"
	"github.com/sirkon/symsolve/internal/diag"
	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
	"github.com/sirkon/symsolve/internal/resolver"
	"github.com/sirkon/symsolve/internal/typesolver"
)

// Names of bundle members.
const (
	BundleTree  = "tree.yaml"
	BundleTypes = "types.yaml"
)

// ErrNoTree means a bundle has no tree.yaml member.
var ErrNoTree = errors.New("bundle has no " + BundleTree)

// Session is a loaded tree ready for queries. It is safe for concurrent use.
type Session struct {
	Root     *jast.Node
	Index    *jast.Index
	Resolver *resolver.Resolver
}

// New builds a session from YAML tree data and optional YAML type descriptors.
func New(cfg *config.Config, tree, types []byte, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root, err := jast.DecodeYAML(tree)
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	index, err := jast.NewIndex(root)
	if err != nil {
		return nil, fmt.Errorf("index tree: %w", err)
	}

	solver, err := buildSolver(cfg, types)
	if err != nil {
		return nil, err
	}

	f := contexts.NewFactory(
		solver,
		contexts.WithImplicitImports(cfg.ImplicitImports...),
		contexts.WithLogger(log),
	)
	log.Debug("session ready", slog.Int("indexed-nodes", index.Len()))

	return &Session{
		Root:     root,
		Index:    index,
		Resolver: resolver.New(f, resolver.WithLogger(log)),
	}, nil
}

// Load builds a session from files. An empty typesPath means no types file.
func Load(cfg *config.Config, treePath, typesPath string, log *slog.Logger) (*Session, error) {
	tree, err := os.ReadFile(treePath)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}

	var types []byte
	if typesPath != "" {
		types, err = os.ReadFile(typesPath)
		if err != nil {
			return nil, fmt.Errorf("read types file: %w", err)
		}
	}

	return New(cfg, tree, types, log)
}

// FromArchive builds a session from a txtar bundle holding tree.yaml and,
// optionally, types.yaml.
func FromArchive(cfg *config.Config, a *txtar.Archive, log *slog.Logger) (*Session, error) {
	tree := ArchiveFile(a, BundleTree)
	if tree == nil {
		return nil, ErrNoTree
	}

	return New(cfg, tree, ArchiveFile(a, BundleTypes), log)
}

// ArchiveFile returns the contents of the named archive member, or nil.
func ArchiveFile(a *txtar.Archive, name string) []byte {
	for _, f := range a.Files {
		if f.Name == name {
			return f.Data
		}
	}

	return nil
}

func buildSolver(cfg *config.Config, types []byte) (model.TypeSolver, error) {
	var solvers []model.TypeSolver

	if len(types) > 0 {
		descriptors, err := typesolver.Decode(types)
		if err != nil {
			return nil, fmt.Errorf("decode types: %w", err)
		}
		m, err := typesolver.NewMemory(descriptors...)
		if err != nil {
			return nil, fmt.Errorf("build types: %w", err)
		}
		solvers = append(solvers, m)
	}

	if len(cfg.Types) > 0 {
		m, err := typesolver.NewMemory(cfg.Types...)
		if err != nil {
			return nil, fmt.Errorf("build configured types: %w", err)
		}
		solvers = append(solvers, m)
	}

	return typesolver.NewCombined(solvers...), nil
}

// Resolve resolves the name use at the offset.
func (s *Session) Resolve(offset int) (*Resolution, error) {
	use, ref, err := s.Resolver.SolveAt(s.Index, offset)
	if err != nil {
		return nil, err
	}

	return newResolution(use, ref), nil
}

// Check runs the tree checker.
func (s *Session) Check() (*diag.Reporter, error) {
	var rep diag.Reporter
	if err := checker.Check(s.Root, s.Resolver, &rep); err != nil {
		return nil, fmt.Errorf("check tree: %w", err)
	}

	return &rep, nil
}

// Hash returns the structural hash of the tree.
func (s *Session) Hash() int32 {
	return jast.Hash(s.Root)
}
