package contexts

import (
	"errors"
	"fmt"

	"github.com/sirkon/symsolve/internal/jast"
)

var (
	// ErrNotAChild means a node was passed where a direct child was required.
	ErrNotAChild = errors.New("node is not a child of the context node")

	// ErrNoContext means the node kind does not bear a scope.
	ErrNoContext = errors.New("node kind has no scope context")

	// ErrNotInStatementList means a statement was not found in the list of its own parent.
	ErrNotInStatementList = errors.New("statement is missing from its parent statement list")
)

// ContractError is a misuse of the resolution API or a malformed tree. It is
// never an answer to a lookup: names that cannot be found are reported as
// unsolved references instead.
type ContractError struct {
	Op     string
	Kind   jast.Kind
	Reason error
	Node   *jast.Node
}

func (e *ContractError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("%s on %s: %s: %s", e.Op, e.Kind, e.Reason, e.Node)
	}

	return fmt.Sprintf("%s on %s: %s", e.Op, e.Kind, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return e.Reason
}

func contractError(op string, kind jast.Kind, reason error, node *jast.Node) error {
	return &ContractError{
		Op:     op,
		Kind:   kind,
		Reason: reason,
		Node:   node,
	}
}
