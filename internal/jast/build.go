package jast

import (
	"strconv"
)

// New creates a detached node. Children are attached with [Node.With] or
// [Node.Add] while the tree is being constructed; after that the tree is
// treated as immutable.
func New(kind Kind, name, value string) *Node {
	return &Node{kind: kind, name: name, value: value}
}

// As presets the role a node will take once attached. It is needed where
// inference by kind is ambiguous, e.g. for-init versus for-update expressions.
func As(role Role, n *Node) *Node {
	if n != nil {
		n.role = role
	}
	return n
}

// With attaches children under the role.
func (n *Node) With(role Role, children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.attach(role, c)
	}
	return n
}

// Add attaches children using their preset role (see [As]) or the first schema
// slot accepting their kind. Nil children are skipped: they stand for absent
// optional parts.
func (n *Node) Add(children ...*Node) *Node {
	filled := map[Role]bool{}
	for _, c := range n.children {
		filled[c.role] = true
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		role := c.role
		if role == RoleNone {
			var ok bool
			role, ok = inferRole(n.kind, c.kind, filled)
			if !ok {
				panic("jast: no slot of " + n.kind.String() + " accepts " + c.kind.String())
			}
		}
		n.attach(role, c)
		filled[role] = true
	}
	return n
}

// WithSpan records the source range of the node.
func (n *Node) WithSpan(start, end int) *Node {
	n.span = Span{Start: start, End: end}
	n.hasSpan = true
	return n
}

func build(kind Kind, name, value string, children ...*Node) *Node {
	return New(kind, name, value).Add(children...)
}

// --- Compilation unit -----------------------------------------------------------------------------------------------

func Unit(children ...*Node) *Node { return build(CompilationUnit, "", "", children...) }
func Package(name string) *Node    { return New(PackageDeclaration, name, "") }

// Import flavours are kept in the node value.
const (
	ImportStatic         = "static"
	ImportAsterisk       = "asterisk"
	ImportStaticAsterisk = "static-asterisk"
)

func Import(name string) *Node            { return New(ImportDeclaration, name, "") }
func ImportAll(pkg string) *Node          { return New(ImportDeclaration, pkg, ImportAsterisk) }
func StaticImport(member string) *Node    { return New(ImportDeclaration, member, ImportStatic) }
func StaticImportAll(typ string) *Node    { return New(ImportDeclaration, typ, ImportStaticAsterisk) }
func IsStaticImport(n *Node) bool         { return n.value == ImportStatic || n.value == ImportStaticAsterisk }
func IsAsteriskImport(n *Node) bool       { return n.value == ImportAsterisk || n.value == ImportStaticAsterisk }

// --- Declarations ---------------------------------------------------------------------------------------------------

func Class(name string, children ...*Node) *Node {
	return build(ClassDeclaration, name, "", children...)
}

func Interface(name string, children ...*Node) *Node {
	return build(InterfaceDeclaration, name, "", children...)
}

func Enum(name string, children ...*Node) *Node {
	return build(EnumDeclaration, name, "", children...)
}

func Record(name string, children ...*Node) *Node {
	return build(RecordDeclaration, name, "", children...)
}

func Extends(name string) *Node    { return As(RoleExtends, Type(name)) }
func Implements(name string) *Node { return As(RoleImplements, Type(name)) }

func EnumConstant(name string, args ...*Node) *Node {
	return build(EnumConstantDeclaration, name, "", args...)
}

func Field(typ *Node, declarators ...*Node) *Node {
	return build(FieldDeclaration, "", "", append([]*Node{typ}, declarators...)...)
}

func Method(name string, children ...*Node) *Node {
	return build(MethodDeclaration, name, "", children...)
}

func Constructor(name string, children ...*Node) *Node {
	return build(ConstructorDeclaration, name, "", children...)
}

func Initializer(static bool, body *Node) *Node {
	value := ""
	if static {
		value = "static"
	}
	return build(InitializerDeclaration, "", value, body)
}

func Param(typ *Node, name string) *Node {
	return build(Parameter, name, "", typ)
}

func Declarator(name string, init *Node) *Node {
	return build(VariableDeclarator, name, "", As(RoleInitializer, init))
}

func TypedDeclarator(typ *Node, name string, init *Node) *Node {
	return build(VariableDeclarator, name, "", typ, As(RoleInitializer, init))
}

// --- Statements -----------------------------------------------------------------------------------------------------

func Block(stmts ...*Node) *Node { return build(BlockStmt, "", "", stmts...) }
func ExprStmt(e *Node) *Node     { return build(ExpressionStmt, "", "", e) }

// LocalVar is the `T name = init;` statement.
func LocalVar(typ *Node, name string, init *Node) *Node {
	return ExprStmt(VarDecl(TypedDeclarator(typ, name, init)))
}

func VarDecl(declarators ...*Node) *Node {
	return build(VariableDeclarationExpr, "", "", declarators...)
}

func If(cond, then, els *Node) *Node {
	return build(IfStmt, "", "", As(RoleCondition, cond), As(RoleThen, then), As(RoleElse, els))
}

func While(cond, body *Node) *Node {
	return build(WhileStmt, "", "", As(RoleCondition, cond), As(RoleBody, body))
}

func Do(body, cond *Node) *Node {
	return build(DoStmt, "", "", As(RoleBody, body), As(RoleCondition, cond))
}

func For(init []*Node, compare *Node, update []*Node, body *Node) *Node {
	n := New(ForStmt, "", "")
	n.With(RoleInit, init...)
	n.With(RoleCompare, compare)
	n.With(RoleUpdate, update...)
	n.With(RoleBody, body)
	return n
}

func ForEach(variable, iterable, body *Node) *Node {
	return build(ForEachStmt, "", "", As(RoleVariable, variable), As(RoleIterable, iterable), As(RoleBody, body))
}

func Try(resources []*Node, body *Node, catches []*Node, finally *Node) *Node {
	n := New(TryStmt, "", "")
	n.With(RoleResource, resources...)
	n.With(RoleBody, body)
	n.With(RoleCatch, catches...)
	n.With(RoleFinally, finally)
	return n
}

func Catch(param, body *Node) *Node {
	return build(CatchClause, "", "", param, body)
}

func Switch(selector *Node, entries ...*Node) *Node {
	return build(SwitchStmt, "", "", append([]*Node{As(RoleSelector, selector)}, entries...)...)
}

// EntryArrow is the value of `case … ->` entries. Colon entries carry no value.
const EntryArrow = "->"

// Entry is a `case …:` switch entry; no labels means `default`.
func Entry(labels []*Node, stmts ...*Node) *Node {
	return entry("", labels, stmts)
}

// Arrow is a `case … ->` switch entry.
func Arrow(labels []*Node, stmts ...*Node) *Node {
	return entry(EntryArrow, labels, stmts)
}

// IsArrowEntry reports whether a switch entry has the arrow form.
func IsArrowEntry(n *Node) bool { return n.kind == SwitchEntry && n.value == EntryArrow }

func entry(value string, labels, stmts []*Node) *Node {
	n := New(SwitchEntry, "", value)
	n.With(RoleLabel, labels...)
	n.With(RoleStatement, stmts...)
	return n
}

func Return(e *Node) *Node { return build(ReturnStmt, "", "", e) }
func Throw(e *Node) *Node  { return build(ThrowStmt, "", "", e) }
func Yield(e *Node) *Node  { return build(YieldStmt, "", "", e) }
func Break(label string) *Node    { return New(BreakStmt, label, "") }
func Continue(label string) *Node { return New(ContinueStmt, label, "") }
func Empty() *Node                { return New(EmptyStmt, "", "") }

func Labeled(label string, stmt *Node) *Node {
	return build(LabeledStmt, label, "", As(RoleBody, stmt))
}

func Synchronized(e, body *Node) *Node {
	return build(SynchronizedStmt, "", "", e, body)
}

func Assert(cond, msg *Node) *Node {
	return build(AssertStmt, "", "", As(RoleCondition, cond), As(RoleMessage, msg))
}

func LocalClass(decl *Node) *Node {
	return build(LocalClassDeclarationStmt, "", "", decl)
}

func ThisCall(args ...*Node) *Node {
	return build(ExplicitConstructorInvocationStmt, "", "this", args...)
}

func SuperCall(args ...*Node) *Node {
	return build(ExplicitConstructorInvocationStmt, "", "super", args...)
}

// --- Expressions ----------------------------------------------------------------------------------------------------

func Name(id string) *Node { return New(NameExpr, id, "") }

// Call builds `scope.name(args...)`; scope may be nil.
func Call(scope *Node, name string, args ...*Node) *Node {
	n := New(MethodCallExpr, name, "")
	n.With(RoleScope, scope)
	n.With(RoleArgument, args...)
	return n
}

func FieldAccess(scope *Node, name string) *Node {
	return build(FieldAccessExpr, name, "", As(RoleScope, scope))
}

func Assign(target *Node, op string, value *Node) *Node {
	return build(AssignExpr, "", op, As(RoleTarget, target), As(RoleValue, value))
}

func Binary(left *Node, op string, right *Node) *Node {
	return build(BinaryExpr, "", op, As(RoleLeft, left), As(RoleRight, right))
}

func Unary(op string, e *Node) *Node { return build(UnaryExpr, "", op, e) }

func Int(v int) *Node       { return New(IntegerLiteralExpr, "", strconv.Itoa(v)) }
func Double(v string) *Node { return New(DoubleLiteralExpr, "", v) }
func Str(v string) *Node    { return New(StringLiteralExpr, "", v) }
func Char(v string) *Node   { return New(CharLiteralExpr, "", v) }
func Bool(v bool) *Node     { return New(BooleanLiteralExpr, "", strconv.FormatBool(v)) }
func Null() *Node           { return New(NullLiteralExpr, "", "") }
func This() *Node           { return New(ThisExpr, "", "") }
func Super() *Node          { return New(SuperExpr, "", "") }

// Lambda builds `(params) -> body`, body is either a block or an expression.
func Lambda(params []*Node, body *Node) *Node {
	n := New(LambdaExpr, "", "")
	n.With(RoleParameter, params...)
	n.With(RoleBody, body)
	return n
}

func ObjectCreation(typ *Node, args ...*Node) *Node {
	n := New(ObjectCreationExpr, "", "")
	n.With(RoleType, typ)
	n.With(RoleArgument, args...)
	return n
}

func Conditional(cond, then, els *Node) *Node {
	return build(ConditionalExpr, "", "", As(RoleCondition, cond), As(RoleThen, then), As(RoleElse, els))
}

func Enclosed(e *Node) *Node { return build(EnclosedExpr, "", "", e) }

func Cast(typ, e *Node) *Node { return build(CastExpr, "", "", typ, e) }

func InstanceOf(e, typ, pattern *Node) *Node {
	return build(InstanceOfExpr, "", "", As(RoleExpression, e), As(RoleType, typ), As(RolePattern, pattern))
}

func Pattern(typ *Node, name string) *Node { return build(PatternExpr, name, "", typ) }

func ArrayAccess(array, index *Node) *Node {
	return build(ArrayAccessExpr, "", "", As(RoleScope, array), As(RoleIndex, index))
}

// --- Types ----------------------------------------------------------------------------------------------------------

func Type(name string) *Node  { return New(ClassOrInterfaceType, name, "") }
func Prim(name string) *Node  { return New(PrimitiveType, name, "") }
func Array(of *Node) *Node    { return build(ArrayType, "", "", of) }
func Void() *Node             { return New(VoidType, "", "") }
func Var() *Node              { return New(VarType, "", "") }
func Unknown() *Node          { return New(UnknownType, "", "") }

// --- Comments -------------------------------------------------------------------------------------------------------

func Comment(text string) *Node      { return New(LineComment, "", text) }
func MultiComment(text string) *Node { return New(BlockComment, "", text) }
func Doc(text string) *Node          { return New(JavadocComment, "", text) }

// Commented attaches comments to n and returns n.
func Commented(n *Node, comments ...*Node) *Node {
	return n.With(RoleComment, comments...)
}
