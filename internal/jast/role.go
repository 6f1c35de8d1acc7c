package jast

import (
	"fmt"
)

// Role tells what part of its parent a node plays.
type Role int

const (
	RoleNone Role = iota

	RolePackage
	RoleImport
	RoleDeclaration
	RoleMember
	RoleExtends
	RoleImplements
	RoleConstant
	RoleComponent
	RoleParameter
	RoleVariable
	RoleType
	RoleBody
	RoleStatement
	RoleExpression
	RoleCondition
	RoleThen
	RoleElse
	RoleInit
	RoleCompare
	RoleUpdate
	RoleIterable
	RoleResource
	RoleCatch
	RoleFinally
	RoleSelector
	RoleEntry
	RoleLabel
	RoleArgument
	RoleScope
	RoleTarget
	RoleValue
	RoleLeft
	RoleRight
	RoleInitializer
	RoleIndex
	RolePattern
	RoleMessage
	RoleComment

	roleSentinel
)

var roleNames = [roleSentinel]string{
	RoleNone:        "none",
	RolePackage:     "package",
	RoleImport:      "import",
	RoleDeclaration: "declaration",
	RoleMember:      "member",
	RoleExtends:     "extends",
	RoleImplements:  "implements",
	RoleConstant:    "constant",
	RoleComponent:   "component",
	RoleParameter:   "parameter",
	RoleVariable:    "variable",
	RoleType:        "type",
	RoleBody:        "body",
	RoleStatement:   "statement",
	RoleExpression:  "expression",
	RoleCondition:   "condition",
	RoleThen:        "then",
	RoleElse:        "else",
	RoleInit:        "init",
	RoleCompare:     "compare",
	RoleUpdate:      "update",
	RoleIterable:    "iterable",
	RoleResource:    "resource",
	RoleCatch:       "catch",
	RoleFinally:     "finally",
	RoleSelector:    "selector",
	RoleEntry:       "entry",
	RoleLabel:       "label",
	RoleArgument:    "argument",
	RoleScope:       "scope",
	RoleTarget:      "target",
	RoleValue:       "value",
	RoleLeft:        "left",
	RoleRight:       "right",
	RoleInitializer: "initializer",
	RoleIndex:       "index",
	RolePattern:     "pattern",
	RoleMessage:     "message",
	RoleComment:     "comment",
}

func (r Role) String() string {
	if r < RoleNone || r >= roleSentinel {
		return fmt.Sprintf("role-invalid(%d)", r)
	}

	return roleNames[r]
}

func (r *Role) UnmarshalText(text []byte) error {
	for i, name := range roleNames {
		if name == string(text) {
			*r = Role(i)
			return nil
		}
	}

	return fmt.Errorf("unknown node role %q", text)
}

func (r Role) MarshalText() ([]byte, error) {
	if r < RoleNone || r >= roleSentinel {
		return nil, fmt.Errorf("cannot marshal invalid Role(%d)", r)
	}

	return []byte(r.String()), nil
}

// slot is one position of a kind schema.
type slot struct {
	role    Role
	many    bool
	accepts func(Kind) bool
}

func one(role Role, accepts func(Kind) bool) slot {
	return slot{role: role, accepts: accepts}
}

func many(role Role, accepts func(Kind) bool) slot {
	return slot{role: role, many: true, accepts: accepts}
}

func ofCategory(cats ...Category) func(Kind) bool {
	return func(k Kind) bool {
		c := k.Category()
		for _, cat := range cats {
			if c == cat {
				return true
			}
		}
		return false
	}
}

func ofKind(kinds ...Kind) func(Kind) bool {
	return func(k Kind) bool {
		for _, kind := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

var (
	anyType      = ofCategory(CategoryType)
	anyExpr      = ofCategory(CategoryExpression)
	anyStmt      = ofCategory(CategoryStatement)
	anyTypeDecl  = ofCategory(CategoryTypeDeclaration)
	anyMember    = ofCategory(CategoryMember, CategoryTypeDeclaration)
	anyClassType = ofKind(ClassOrInterfaceType)
	anyBlock     = ofKind(BlockStmt)
	anyParameter = ofKind(Parameter)
)

// schemas lists, per kind, the slots its children may occupy, in order.
// Comments are allowed anywhere and are not part of any schema.
var schemas = [kindSentinel][]slot{
	CompilationUnit: {
		one(RolePackage, ofKind(PackageDeclaration)),
		many(RoleImport, ofKind(ImportDeclaration)),
		many(RoleDeclaration, anyTypeDecl),
	},

	ClassDeclaration: {
		many(RoleExtends, anyClassType),
		many(RoleImplements, anyClassType),
		many(RoleMember, anyMember),
	},
	InterfaceDeclaration: {
		many(RoleExtends, anyClassType),
		many(RoleMember, anyMember),
	},
	EnumDeclaration: {
		many(RoleImplements, anyClassType),
		many(RoleConstant, ofKind(EnumConstantDeclaration)),
		many(RoleMember, anyMember),
	},
	RecordDeclaration: {
		many(RoleComponent, anyParameter),
		many(RoleImplements, anyClassType),
		many(RoleMember, anyMember),
	},
	FieldDeclaration: {
		one(RoleType, anyType),
		many(RoleVariable, ofKind(VariableDeclarator)),
	},
	MethodDeclaration: {
		one(RoleType, anyType),
		many(RoleParameter, anyParameter),
		one(RoleBody, anyBlock),
	},
	ConstructorDeclaration: {
		many(RoleParameter, anyParameter),
		one(RoleBody, anyBlock),
	},
	InitializerDeclaration: {
		one(RoleBody, anyBlock),
	},
	EnumConstantDeclaration: {
		many(RoleArgument, anyExpr),
	},
	Parameter: {
		one(RoleType, anyType),
	},
	VariableDeclarator: {
		one(RoleType, anyType),
		one(RoleInitializer, anyExpr),
	},

	BlockStmt: {
		many(RoleStatement, anyStmt),
	},
	ExpressionStmt: {
		one(RoleExpression, anyExpr),
	},
	IfStmt: {
		one(RoleCondition, anyExpr),
		one(RoleThen, anyStmt),
		one(RoleElse, anyStmt),
	},
	WhileStmt: {
		one(RoleCondition, anyExpr),
		one(RoleBody, anyStmt),
	},
	DoStmt: {
		one(RoleBody, anyStmt),
		one(RoleCondition, anyExpr),
	},
	ForStmt: {
		many(RoleInit, anyExpr),
		one(RoleCompare, anyExpr),
		many(RoleUpdate, anyExpr),
		one(RoleBody, anyStmt),
	},
	ForEachStmt: {
		one(RoleVariable, ofKind(VariableDeclarationExpr)),
		one(RoleIterable, anyExpr),
		one(RoleBody, anyStmt),
	},
	TryStmt: {
		many(RoleResource, anyExpr),
		one(RoleBody, anyBlock),
		many(RoleCatch, ofKind(CatchClause)),
		one(RoleFinally, anyBlock),
	},
	CatchClause: {
		one(RoleParameter, anyParameter),
		one(RoleBody, anyBlock),
	},
	SwitchStmt: {
		one(RoleSelector, anyExpr),
		many(RoleEntry, ofKind(SwitchEntry)),
	},
	SwitchEntry: {
		many(RoleLabel, anyExpr),
		many(RoleStatement, anyStmt),
	},
	ReturnStmt: {
		one(RoleExpression, anyExpr),
	},
	ThrowStmt: {
		one(RoleExpression, anyExpr),
	},
	LabeledStmt: {
		one(RoleBody, anyStmt),
	},
	SynchronizedStmt: {
		one(RoleExpression, anyExpr),
		one(RoleBody, anyBlock),
	},
	YieldStmt: {
		one(RoleExpression, anyExpr),
	},
	AssertStmt: {
		one(RoleCondition, anyExpr),
		one(RoleMessage, anyExpr),
	},
	LocalClassDeclarationStmt: {
		one(RoleDeclaration, ofKind(ClassDeclaration, InterfaceDeclaration, EnumDeclaration, RecordDeclaration)),
	},
	ExplicitConstructorInvocationStmt: {
		many(RoleArgument, anyExpr),
	},

	VariableDeclarationExpr: {
		many(RoleVariable, ofKind(VariableDeclarator)),
	},
	MethodCallExpr: {
		one(RoleScope, anyExpr),
		many(RoleArgument, anyExpr),
	},
	FieldAccessExpr: {
		one(RoleScope, anyExpr),
	},
	AssignExpr: {
		one(RoleTarget, anyExpr),
		one(RoleValue, anyExpr),
	},
	BinaryExpr: {
		one(RoleLeft, anyExpr),
		one(RoleRight, anyExpr),
	},
	UnaryExpr: {
		one(RoleExpression, anyExpr),
	},
	LambdaExpr: {
		many(RoleParameter, anyParameter),
		one(RoleBody, ofCategory(CategoryStatement, CategoryExpression)),
	},
	ObjectCreationExpr: {
		one(RoleType, anyClassType),
		many(RoleArgument, anyExpr),
	},
	ConditionalExpr: {
		one(RoleCondition, anyExpr),
		one(RoleThen, anyExpr),
		one(RoleElse, anyExpr),
	},
	EnclosedExpr: {
		one(RoleExpression, anyExpr),
	},
	CastExpr: {
		one(RoleType, anyType),
		one(RoleExpression, anyExpr),
	},
	InstanceOfExpr: {
		one(RoleExpression, anyExpr),
		one(RoleType, anyType),
		one(RolePattern, ofKind(PatternExpr)),
	},
	PatternExpr: {
		one(RoleType, anyType),
	},
	ArrayAccessExpr: {
		one(RoleScope, anyExpr),
		one(RoleIndex, anyExpr),
	},

	ArrayType: {
		one(RoleType, anyType),
	},
}

func schemaOf(k Kind) []slot {
	if !k.Valid() {
		return nil
	}

	return schemas[k]
}

func slotOf(k Kind, role Role) (slot, bool) {
	for _, s := range schemaOf(k) {
		if s.role == role {
			return s, true
		}
	}

	return slot{}, false
}

// inferRole picks the first slot of parent accepting child, skipping filled single slots.
func inferRole(parent Kind, child Kind, filled map[Role]bool) (Role, bool) {
	if child.IsComment() {
		return RoleComment, true
	}

	for _, s := range schemaOf(parent) {
		if !s.accepts(child) {
			continue
		}
		if !s.many && filled[s.role] {
			continue
		}
		return s.role, true
	}

	return RoleNone, false
}
