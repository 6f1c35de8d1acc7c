package contexts

import (
	"github.com/sirkon/symsolve/internal/jast"
)

// Pattern variables of instanceof tests are in scope where the test is known
// to hold, or known to fail:
//
//	if (o instanceof String s && s.isEmpty()) { s }   // s: right operand, then
//	if (!(o instanceof String s)) { } else { s }      // s: else
//	o instanceof String s ? s : ""                    // s: then operand

const (
	opAnd = "&&"
	opOr  = "||"
	opNot = "!"
)

// truePatterns returns pattern variables introduced when e evaluates to true.
func truePatterns(e *jast.Node) []*jast.Node {
	if e == nil {
		return nil
	}

	switch e.Kind() {
	case jast.InstanceOfExpr:
		if p := e.Child(jast.RolePattern); p != nil {
			return []*jast.Node{p}
		}
	case jast.EnclosedExpr:
		return truePatterns(e.Child(jast.RoleExpression))
	case jast.UnaryExpr:
		if e.Value() == opNot {
			return falsePatterns(e.Child(jast.RoleExpression))
		}
	case jast.BinaryExpr:
		if e.Value() == opAnd {
			return append(truePatterns(e.Child(jast.RoleLeft)), truePatterns(e.Child(jast.RoleRight))...)
		}
	}

	return nil
}

// falsePatterns returns pattern variables introduced when e evaluates to false.
func falsePatterns(e *jast.Node) []*jast.Node {
	if e == nil {
		return nil
	}

	switch e.Kind() {
	case jast.EnclosedExpr:
		return falsePatterns(e.Child(jast.RoleExpression))
	case jast.UnaryExpr:
		if e.Value() == opNot {
			return truePatterns(e.Child(jast.RoleExpression))
		}
	case jast.BinaryExpr:
		if e.Value() == opOr {
			return append(falsePatterns(e.Child(jast.RoleLeft)), falsePatterns(e.Child(jast.RoleRight))...)
		}
	}

	return nil
}

// ifContext exposes patterns of the condition to the branch taken when it
// holds and to the one taken when it fails.
type ifContext struct {
	base
}

func (c *ifContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}

	cond := c.node.Child(jast.RoleCondition)
	switch child.Role() {
	case jast.RoleThen:
		return nearestFirst(truePatterns(cond)), nil
	case jast.RoleElse:
		return nearestFirst(falsePatterns(cond)), nil
	default:
		return nil, nil
	}
}

func (c *ifContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

// whileContext exposes patterns of the condition to the body.
type whileContext struct {
	base
}

func (c *whileContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}
	if child.Role() != jast.RoleBody {
		return nil, nil
	}

	return nearestFirst(truePatterns(c.node.Child(jast.RoleCondition))), nil
}

func (c *whileContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

// binaryContext gives the right operand of && the patterns of a true left
// operand, and the right operand of || those of a false one.
type binaryContext struct {
	base
}

func (c *binaryContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}
	if child.Role() != jast.RoleRight {
		return nil, nil
	}

	left := c.node.Child(jast.RoleLeft)
	switch c.node.Value() {
	case opAnd:
		return nearestFirst(truePatterns(left)), nil
	case opOr:
		return nearestFirst(falsePatterns(left)), nil
	default:
		return nil, nil
	}
}

func (c *binaryContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}

// conditionalContext is the `cond ? a : b` expression.
type conditionalContext struct {
	base
}

func (c *conditionalContext) LocalVariablesExposedToChild(child *jast.Node) ([]*jast.Node, error) {
	if err := c.checkChild(child); err != nil {
		return nil, err
	}

	cond := c.node.Child(jast.RoleCondition)
	switch child.Role() {
	case jast.RoleThen:
		return nearestFirst(truePatterns(cond)), nil
	case jast.RoleElse:
		return nearestFirst(falsePatterns(cond)), nil
	default:
		return nil, nil
	}
}

func (c *conditionalContext) SolveSymbol(name string) (ValueRef, error) {
	return c.solveOutward(name)
}
