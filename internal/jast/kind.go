package jast

import (
	"fmt"
)

// Kind is the variant tag of a [Node].
type Kind int

const (
	kindInvalid Kind = iota

	CompilationUnit
	PackageDeclaration
	ImportDeclaration

	ClassDeclaration
	InterfaceDeclaration
	EnumDeclaration
	RecordDeclaration
	FieldDeclaration
	MethodDeclaration
	ConstructorDeclaration
	InitializerDeclaration
	EnumConstantDeclaration
	Parameter
	VariableDeclarator

	BlockStmt
	ExpressionStmt
	IfStmt
	WhileStmt
	DoStmt
	ForStmt
	ForEachStmt
	TryStmt
	CatchClause
	SwitchStmt
	SwitchEntry
	ReturnStmt
	ThrowStmt
	BreakStmt
	ContinueStmt
	EmptyStmt
	LabeledStmt
	SynchronizedStmt
	YieldStmt
	AssertStmt
	LocalClassDeclarationStmt
	ExplicitConstructorInvocationStmt

	NameExpr
	VariableDeclarationExpr
	MethodCallExpr
	FieldAccessExpr
	AssignExpr
	BinaryExpr
	UnaryExpr
	IntegerLiteralExpr
	DoubleLiteralExpr
	StringLiteralExpr
	CharLiteralExpr
	BooleanLiteralExpr
	NullLiteralExpr
	ThisExpr
	SuperExpr
	LambdaExpr
	ObjectCreationExpr
	ConditionalExpr
	EnclosedExpr
	CastExpr
	InstanceOfExpr
	PatternExpr
	ArrayAccessExpr

	ClassOrInterfaceType
	PrimitiveType
	ArrayType
	VoidType
	VarType
	UnknownType

	LineComment
	BlockComment
	JavadocComment

	kindSentinel
)

// Category groups kinds by their syntactic class.
type Category int

const (
	categoryInvalid Category = iota
	CategoryUnit
	CategoryClause
	CategoryTypeDeclaration
	CategoryMember
	CategoryBinding
	CategoryStatement
	CategoryExpression
	CategoryType
	CategoryComment
)

var categoryNames = map[Category]string{
	CategoryUnit:            "unit",
	CategoryClause:          "clause",
	CategoryTypeDeclaration: "type-declaration",
	CategoryMember:          "member",
	CategoryBinding:         "binding",
	CategoryStatement:       "statement",
	CategoryExpression:      "expression",
	CategoryType:            "type",
	CategoryComment:         "comment",
}

func (c Category) String() string {
	v, ok := categoryNames[c]
	if !ok {
		return fmt.Sprintf("category-invalid(%d)", c)
	}

	return v
}

type kindInfo struct {
	name     string
	category Category
}

var kindInfos = [kindSentinel]kindInfo{
	CompilationUnit:    {"CompilationUnit", CategoryUnit},
	PackageDeclaration: {"PackageDeclaration", CategoryClause},
	ImportDeclaration:  {"ImportDeclaration", CategoryClause},

	ClassDeclaration:        {"ClassDeclaration", CategoryTypeDeclaration},
	InterfaceDeclaration:    {"InterfaceDeclaration", CategoryTypeDeclaration},
	EnumDeclaration:         {"EnumDeclaration", CategoryTypeDeclaration},
	RecordDeclaration:       {"RecordDeclaration", CategoryTypeDeclaration},
	FieldDeclaration:        {"FieldDeclaration", CategoryMember},
	MethodDeclaration:       {"MethodDeclaration", CategoryMember},
	ConstructorDeclaration:  {"ConstructorDeclaration", CategoryMember},
	InitializerDeclaration:  {"InitializerDeclaration", CategoryMember},
	EnumConstantDeclaration: {"EnumConstantDeclaration", CategoryBinding},
	Parameter:               {"Parameter", CategoryBinding},
	VariableDeclarator:      {"VariableDeclarator", CategoryBinding},

	BlockStmt:                         {"BlockStmt", CategoryStatement},
	ExpressionStmt:                    {"ExpressionStmt", CategoryStatement},
	IfStmt:                            {"IfStmt", CategoryStatement},
	WhileStmt:                         {"WhileStmt", CategoryStatement},
	DoStmt:                            {"DoStmt", CategoryStatement},
	ForStmt:                           {"ForStmt", CategoryStatement},
	ForEachStmt:                       {"ForEachStmt", CategoryStatement},
	TryStmt:                           {"TryStmt", CategoryStatement},
	CatchClause:                       {"CatchClause", CategoryClause},
	SwitchStmt:                        {"SwitchStmt", CategoryStatement},
	SwitchEntry:                       {"SwitchEntry", CategoryClause},
	ReturnStmt:                        {"ReturnStmt", CategoryStatement},
	ThrowStmt:                         {"ThrowStmt", CategoryStatement},
	BreakStmt:                         {"BreakStmt", CategoryStatement},
	ContinueStmt:                      {"ContinueStmt", CategoryStatement},
	EmptyStmt:                         {"EmptyStmt", CategoryStatement},
	LabeledStmt:                       {"LabeledStmt", CategoryStatement},
	SynchronizedStmt:                  {"SynchronizedStmt", CategoryStatement},
	YieldStmt:                         {"YieldStmt", CategoryStatement},
	AssertStmt:                        {"AssertStmt", CategoryStatement},
	LocalClassDeclarationStmt:         {"LocalClassDeclarationStmt", CategoryStatement},
	ExplicitConstructorInvocationStmt: {"ExplicitConstructorInvocationStmt", CategoryStatement},

	NameExpr:                {"NameExpr", CategoryExpression},
	VariableDeclarationExpr: {"VariableDeclarationExpr", CategoryExpression},
	MethodCallExpr:          {"MethodCallExpr", CategoryExpression},
	FieldAccessExpr:         {"FieldAccessExpr", CategoryExpression},
	AssignExpr:              {"AssignExpr", CategoryExpression},
	BinaryExpr:              {"BinaryExpr", CategoryExpression},
	UnaryExpr:               {"UnaryExpr", CategoryExpression},
	IntegerLiteralExpr:      {"IntegerLiteralExpr", CategoryExpression},
	DoubleLiteralExpr:       {"DoubleLiteralExpr", CategoryExpression},
	StringLiteralExpr:       {"StringLiteralExpr", CategoryExpression},
	CharLiteralExpr:         {"CharLiteralExpr", CategoryExpression},
	BooleanLiteralExpr:      {"BooleanLiteralExpr", CategoryExpression},
	NullLiteralExpr:         {"NullLiteralExpr", CategoryExpression},
	ThisExpr:                {"ThisExpr", CategoryExpression},
	SuperExpr:               {"SuperExpr", CategoryExpression},
	LambdaExpr:              {"LambdaExpr", CategoryExpression},
	ObjectCreationExpr:      {"ObjectCreationExpr", CategoryExpression},
	ConditionalExpr:         {"ConditionalExpr", CategoryExpression},
	EnclosedExpr:            {"EnclosedExpr", CategoryExpression},
	CastExpr:                {"CastExpr", CategoryExpression},
	InstanceOfExpr:          {"InstanceOfExpr", CategoryExpression},
	PatternExpr:             {"PatternExpr", CategoryExpression},
	ArrayAccessExpr:         {"ArrayAccessExpr", CategoryExpression},

	ClassOrInterfaceType: {"ClassOrInterfaceType", CategoryType},
	PrimitiveType:        {"PrimitiveType", CategoryType},
	ArrayType:            {"ArrayType", CategoryType},
	VoidType:             {"VoidType", CategoryType},
	VarType:              {"VarType", CategoryType},
	UnknownType:          {"UnknownType", CategoryType},

	LineComment:    {"LineComment", CategoryComment},
	BlockComment:   {"BlockComment", CategoryComment},
	JavadocComment: {"JavadocComment", CategoryComment},
}

var kindByName = func() map[string]Kind {
	res := make(map[string]Kind, len(kindInfos))
	for k, info := range kindInfos {
		if info.name == "" {
			continue
		}
		res[info.name] = Kind(k)
	}
	return res
}()

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k > kindInvalid && k < kindSentinel
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind-invalid(%d)", k)
	}

	return kindInfos[k].name
}

// Category returns the syntactic class of the kind.
func (k Kind) Category() Category {
	if !k.Valid() {
		return categoryInvalid
	}

	return kindInfos[k].category
}

// IsComment reports whether nodes of this kind are comments.
func (k Kind) IsComment() bool {
	return k.Category() == CategoryComment
}

// IsTypeDeclaration covers class, interface, enum and record declarations.
func (k Kind) IsTypeDeclaration() bool {
	return k.Category() == CategoryTypeDeclaration
}

// HoldsStatements reports whether nodes of this kind carry an ordered statement list.
func (k Kind) HoldsStatements() bool {
	return k == BlockStmt || k == SwitchEntry
}

// UnmarshalText for YAML trees and configs.
func (k *Kind) UnmarshalText(text []byte) error {
	v, ok := kindByName[string(text)]
	if !ok {
		return fmt.Errorf("unknown node kind %q", text)
	}

	*k = v
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", k)
	}

	return []byte(k.String()), nil
}
