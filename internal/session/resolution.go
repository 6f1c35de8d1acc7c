package session

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/symsolve/internal/config"
	"github.com/sirkon/symsolve/internal/contexts"
	"github.com/sirkon/symsolve/internal/jast"
)

// Resolution is the printable outcome of a name query.
type Resolution struct {
	Name        string `yaml:"name"`
	Use         string `yaml:"use"`
	Solved      bool   `yaml:"solved"`
	Kind        string `yaml:"kind,omitempty"`
	Owner       string `yaml:"owner,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Declaration string `yaml:"declaration,omitempty"`
}

func newResolution(use *jast.Node, ref contexts.ValueRef) *Resolution {
	res := &Resolution{
		Name:   use.Name(),
		Use:    use.String(),
		Solved: ref.IsSolved(),
	}
	if !ref.IsSolved() {
		return res
	}

	d := ref.Declaration()
	res.Kind = d.Kind.String()
	res.Owner = d.Owner
	res.Type = d.Type
	if d.Node != nil {
		res.Declaration = d.Node.String()
	}

	return res
}

func (r *Resolution) String() string {
	if !r.Solved {
		return fmt.Sprintf("%s: unresolved", r.Use)
	}
	if r.Declaration == "" {
		return fmt.Sprintf("%s: %s %s.%s", r.Use, r.Kind, r.Owner, r.Name)
	}

	return fmt.Sprintf("%s: %s %s", r.Use, r.Kind, r.Declaration)
}

// Write prints the resolution in the given format.
func (r *Resolution) Write(w io.Writer, out config.Output) error {
	if out == config.OutputYAML {
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal resolution: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write resolution: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, r.String()); err != nil {
		return fmt.Errorf("write resolution: %w", err)
	}

	return nil
}
