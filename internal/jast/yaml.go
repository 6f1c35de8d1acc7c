package jast

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlNode is the serialised form of a node:
//
//	kind: MethodDeclaration
//	name: run
//	span: [10, 42]
//	children:
//	  - kind: VoidType
//	  - kind: BlockStmt
//	    role: body
//
// The role may be omitted when the first slot accepting the child kind is meant.
type yamlNode struct {
	Kind     Kind        `yaml:"kind"`
	Name     string      `yaml:"name"`
	Value    string      `yaml:"value"`
	Role     string      `yaml:"role"`
	Span     []int       `yaml:"span"`
	Children []yaml.Node `yaml:"children"`
}

// LoadYAML reads a tree from a YAML file.
func LoadYAML(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file %s: %w", path, err)
	}

	root, err := DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("decode tree file %s: %w", path, err)
	}

	return root, nil
}

// DecodeYAML builds a tree from its YAML form.
func DecodeYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty tree document")
	}

	return decodeNode(doc.Content[0])
}

func decodeNode(y *yaml.Node) (*Node, error) {
	var raw yamlNode
	if err := y.Decode(&raw); err != nil {
		return nil, fmt.Errorf("line %d: %w", y.Line, err)
	}
	if !raw.Kind.Valid() {
		return nil, fmt.Errorf("line %d: node kind is required", y.Line)
	}

	n := New(raw.Kind, raw.Name, raw.Value)
	switch len(raw.Span) {
	case 0:
	case 2:
		if raw.Span[0] > raw.Span[1] {
			return nil, fmt.Errorf("line %d: span start %d is past its end %d", y.Line, raw.Span[0], raw.Span[1])
		}
		n.WithSpan(raw.Span[0], raw.Span[1])
	default:
		return nil, fmt.Errorf("line %d: span must be [start, end], got %d values", y.Line, len(raw.Span))
	}

	filled := map[Role]bool{}
	for i := range raw.Children {
		cy := &raw.Children[i]
		child, err := decodeNode(cy)
		if err != nil {
			return nil, err
		}

		role, err := childRole(n, child, cy, filled)
		if err != nil {
			return nil, err
		}
		if err := n.checkAttach(role, child); err != nil {
			return nil, fmt.Errorf("line %d: %w", cy.Line, err)
		}
		n.attach(role, child)
		filled[role] = true
	}

	return n, nil
}

func childRole(parent, child *Node, cy *yaml.Node, filled map[Role]bool) (Role, error) {
	var explicit struct {
		Role string `yaml:"role"`
	}
	if err := cy.Decode(&explicit); err != nil {
		return RoleNone, fmt.Errorf("line %d: %w", cy.Line, err)
	}

	if explicit.Role == "" {
		role, ok := inferRole(parent.kind, child.kind, filled)
		if !ok {
			return RoleNone, fmt.Errorf("line %d: no slot of %s accepts %s", cy.Line, parent.kind, child.kind)
		}
		return role, nil
	}

	var role Role
	if err := role.UnmarshalText([]byte(explicit.Role)); err != nil {
		return RoleNone, fmt.Errorf("line %d: %w", cy.Line, err)
	}

	return role, nil
}
