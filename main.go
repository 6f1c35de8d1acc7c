// Command symsolve resolves names of a Java-like syntax tree to their
// declarations.
//
//	symsolve resolve -tree tree.yaml -types types.yaml -offset 42
//	symsolve resolve -bundle case.txtar -offset 42
//	symsolve check -bundle case.txtar
//	symsolve hash -tree tree.yaml
//	symsolve mcp
//
// Trees and type descriptors are YAML documents, a bundle is a txtar archive
// holding tree.yaml and optionally types.yaml.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/tools/txtar"

	"github.com/sirkon/symsolve/internal/config"
	"github.com/sirkon/symsolve/internal/mcpserver"
	"github.com/sirkon/symsolve/internal/session"
)

const version = "0.1.0"

const usage = `usage: symsolve <command> [flags]

commands:
  resolve   print the declaration of the name at -offset
  check     report unresolved names and shadowing declarations
  hash      print the structural hash of the tree
  mcp       serve the resolve and check tools over MCP stdio
`

// errFindings makes check exit with a non-zero code without printing an error.
var errFindings = errors.New("findings reported")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	fs := flag.NewFlagSet("symsolve "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := inputFlags(fs)
	offset := fs.Int("offset", -1, "source offset of the name to resolve")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	cfg, err := in.config()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Slog()}))

	err = cmd(&env{
		cfg:    cfg,
		log:    log,
		in:     in,
		offset: *offset,
		stdout: stdout,
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFindings):
		return 1
	default:
		log.Error("command failed", slog.String("command", args[0]), slog.Any("err", err))
		return 1
	}
}

type env struct {
	cfg    *config.Config
	log    *slog.Logger
	in     *inputs
	offset int
	stdout io.Writer
}

var commands = map[string]func(e *env) error{
	"resolve": cmdResolve,
	"check":   cmdCheck,
	"hash":    cmdHash,
	"mcp":     cmdMCP,
}

func cmdResolve(e *env) error {
	if e.offset < 0 {
		return errors.New("-offset is required")
	}

	s, err := e.in.session(e.cfg, e.log)
	if err != nil {
		return err
	}

	res, err := s.Resolve(e.offset)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	return res.Write(e.stdout, e.cfg.Output)
}

func cmdCheck(e *env) error {
	s, err := e.in.session(e.cfg, e.log)
	if err != nil {
		return err
	}

	rep, err := s.Check()
	if err != nil {
		return err
	}

	if e.cfg.Output == config.OutputYAML {
		err = rep.WriteYAML(e.stdout)
	} else {
		err = rep.PrintSummary(e.stdout)
	}
	if err != nil {
		return fmt.Errorf("print reports: %w", err)
	}
	if rep.Len() > 0 {
		return errFindings
	}

	return nil
}

func cmdHash(e *env) error {
	s, err := e.in.session(e.cfg, e.log)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(e.stdout, s.Hash()); err != nil {
		return fmt.Errorf("print hash: %w", err)
	}

	return nil
}

func cmdMCP(e *env) error {
	s := mcpserver.New(mcpserver.NewHandler(e.cfg, e.log), version)
	if err := mcpserver.ServeStdio(s); err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}

	return nil
}

// inputs are the flags locating the tree and its types.
type inputs struct {
	tree   string
	types  string
	bundle string
	cfg    string
}

func inputFlags(fs *flag.FlagSet) *inputs {
	var in inputs
	fs.StringVar(&in.tree, "tree", "", "tree YAML file")
	fs.StringVar(&in.types, "types", "", "external types YAML file")
	fs.StringVar(&in.bundle, "bundle", "", "txtar bundle with tree.yaml and types.yaml")
	fs.StringVar(&in.cfg, "config", "", "configuration file")
	return &in
}

func (in *inputs) config() (*config.Config, error) {
	if in.cfg == "" {
		return config.Default(), nil
	}

	return config.Load(in.cfg)
}

func (in *inputs) session(cfg *config.Config, log *slog.Logger) (*session.Session, error) {
	switch {
	case in.bundle != "" && in.tree != "":
		return nil, errors.New("-bundle and -tree are mutually exclusive")
	case in.bundle != "":
		a, err := txtar.ParseFile(in.bundle)
		if err != nil {
			return nil, fmt.Errorf("read bundle: %w", err)
		}
		return session.FromArchive(cfg, a, log)
	case in.tree != "":
		return session.Load(cfg, in.tree, in.types, log)
	default:
		return nil, errors.New("either -tree or -bundle is required")
	}
}
