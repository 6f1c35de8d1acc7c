package model

import (
	"fmt"

	"github.com/sirkon/symsolve/internal/jast"
)

// DeclarationKind tells what introduced a name.
type DeclarationKind int

const (
	declarationInvalid DeclarationKind = iota

	LocalVariable
	Parameter
	Field
	EnumConstant
	RecordComponent
	PatternVariable

	declarationSentinel
)

var declarationNames = [declarationSentinel]string{
	LocalVariable:   "local-variable",
	Parameter:       "parameter",
	Field:           "field",
	EnumConstant:    "enum-constant",
	RecordComponent: "record-component",
	PatternVariable: "pattern-variable",
}

func (k DeclarationKind) String() string {
	if k <= declarationInvalid || k >= declarationSentinel {
		return fmt.Sprintf("declaration-invalid(%d)", k)
	}

	return declarationNames[k]
}

func (k *DeclarationKind) UnmarshalText(text []byte) error {
	for i, name := range declarationNames {
		if name != "" && name == string(text) {
			*k = DeclarationKind(i)
			return nil
		}
	}

	return fmt.Errorf("unknown declaration kind %q", text)
}

func (k DeclarationKind) MarshalText() ([]byte, error) {
	if k <= declarationInvalid || k >= declarationSentinel {
		return nil, fmt.Errorf("cannot marshal invalid DeclarationKind(%d)", k)
	}

	return []byte(k.String()), nil
}

// IsMember reports whether the declaration belongs to a type rather than a scope.
func (k DeclarationKind) IsMember() bool {
	return k == Field || k == EnumConstant || k == RecordComponent
}

// ValueDeclaration is a resolved name.
type ValueDeclaration struct {
	Name string
	Kind DeclarationKind

	// Node is the declaring node: a VariableDeclarator, Parameter, PatternExpr or
	// EnumConstantDeclaration. It is nil for members of external types.
	Node *jast.Node

	// Owner is the qualified name of the declaring type for members.
	Owner string

	// Type is the declared type name when known.
	Type string
}

// Declared creates a declaration for a binding node of the tree.
func Declared(kind DeclarationKind, node *jast.Node) *ValueDeclaration {
	res := &ValueDeclaration{
		Name: node.Name(),
		Kind: kind,
		Node: node,
	}
	if t := declaredType(node); t != nil {
		res.Type = t.Name()
	}

	return res
}

// Member creates a declaration for a member of the given type.
func Member(kind DeclarationKind, owner string, node *jast.Node) *ValueDeclaration {
	res := Declared(kind, node)
	res.Owner = owner
	return res
}

func (d *ValueDeclaration) String() string {
	if d.Owner != "" {
		return fmt.Sprintf("%s %s.%s", d.Kind, d.Owner, d.Name)
	}

	return fmt.Sprintf("%s %s", d.Kind, d.Name)
}

// declaredType finds the type of a binding. Field declarators share the type of
// their enclosing declaration, local ones the type given to the declarator.
func declaredType(node *jast.Node) *jast.Node {
	if t := node.Child(jast.RoleType); t != nil {
		return t
	}
	if p := node.Parent(); p != nil && p.Kind() == jast.FieldDeclaration {
		return p.Child(jast.RoleType)
	}

	return nil
}
