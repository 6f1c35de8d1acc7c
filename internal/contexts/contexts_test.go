package contexts

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirkon/symsolve/internal/jast"
	"github.com/sirkon/symsolve/internal/model"
	"github.com/sirkon/symsolve/internal/typesolver"
)

// resolveUse resolves a name use the way the resolver does.
func resolveUse(f *Factory, use *jast.Node) (ValueRef, error) {
	n := NearestEligible(use)
	ctx, err := f.ForNode(n)
	if err != nil {
		return unsolvedValue(), err
	}

	return SolveFromChild(ctx, ChildOnPath(n, use), use.Name())
}

func use(name string) (*jast.Node, *jast.Node) {
	n := jast.Name(name)
	return n, jast.ExprStmt(jast.Call(nil, "use", n))
}

func inMethod(stmts ...*jast.Node) *jast.Node {
	return jast.Unit(jast.Class("A", jast.Method("run", jast.Void(), jast.Block(stmts...))))
}

func local(name string, init *jast.Node) (*jast.Node, *jast.Node) {
	d := jast.TypedDeclarator(jast.Prim("int"), name, init)
	return d, jast.ExprStmt(jast.VarDecl(d))
}

type resolveCase struct {
	name string
	use  *jast.Node
	want *jast.Node
	kind model.DeclarationKind
}

func checkCases(t *testing.T, f *Factory, tests []resolveCase) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := resolveUse(f, tt.use)
			if err != nil {
				t.Fatal(err)
			}

			if tt.want == nil {
				if ref.IsSolved() {
					t.Fatalf("unsolved reference was expected, got %s", ref.Declaration())
				}
				return
			}

			if !ref.IsSolved() {
				t.Fatalf("%s is not resolved", tt.use.Name())
			}
			if ref.Declaration().Node != tt.want {
				t.Errorf("resolved to %s, want %s", ref.Declaration().Node, tt.want)
			}
			if ref.Declaration().Kind != tt.kind {
				t.Errorf("declaration kind = %s, want %s", ref.Declaration().Kind, tt.kind)
			}
		})
	}
}

func TestBlockScoping(t *testing.T) {
	var tests []resolveCase

	{
		useY, stmt := use("y")
		_, declY := local("y", jast.Int(2))
		inMethod(stmt, declY)
		tests = append(tests, resolveCase{name: "no forward reference", use: useY})
	}

	{
		useX := jast.Name("x")
		_, declX := local("x", useX)
		inMethod(declX)
		tests = append(tests, resolveCase{name: "own declaration is invisible", use: useX})
	}

	{
		outer, declOuter := local("a", jast.Int(1))
		inner, declInner := local("a", jast.Int(2))
		useA, stmt := use("a")
		useOuter, stmtOuter := use("a")
		inMethod(declOuter, jast.Block(declInner, stmt), stmtOuter)
		tests = append(tests,
			resolveCase{name: "nearest wins", use: useA, want: inner, kind: model.LocalVariable},
			resolveCase{name: "inner block does not leak", use: useOuter, want: outer, kind: model.LocalVariable},
		)
	}

	{
		first, declFirst := local("a", jast.Int(1))
		_, declOther := local("b", jast.Int(1))
		second, declSecond := local("a", jast.Int(2))
		useA, stmt := use("a")
		useFirst, stmtFirst := use("a")
		inMethod(declFirst, stmtFirst, declOther, declSecond, stmt)
		tests = append(tests,
			resolveCase{name: "latest preceding declaration wins", use: useA, want: second, kind: model.LocalVariable},
			resolveCase{name: "later redeclaration is invisible", use: useFirst, want: first, kind: model.LocalVariable},
		)
	}

	{
		useQ, stmt := use("q")
		inMethod(stmt)
		tests = append(tests, resolveCase{name: "root termination", use: useQ})
	}

	{
		d, decl := local("c", jast.Int(1))
		useC, stmt := use("c")
		inMethod(
			jast.Commented(decl, jast.Comment("counter")),
			jast.Commented(jast.Empty(), jast.Doc("nothing")),
			stmt,
		)
		tests = append(tests, resolveCase{name: "comments are transparent", use: useC, want: d, kind: model.LocalVariable})
	}

	{
		p := jast.Param(jast.Prim("int"), "p")
		useP, stmt := use("p")
		jast.Unit(jast.Class("A", jast.Method("run", jast.Void(), p, jast.Block(stmt))))
		tests = append(tests, resolveCase{name: "method parameter", use: useP, want: p, kind: model.Parameter})
	}

	{
		p := jast.Param(jast.Prim("int"), "p")
		inner, decl := local("p", jast.Int(1))
		useP, stmt := use("p")
		jast.Unit(jast.Class("A", jast.Constructor("A", p, jast.Block(decl, stmt))))
		tests = append(tests, resolveCase{name: "local shadows constructor parameter", use: useP, want: inner, kind: model.LocalVariable})
	}

	checkCases(t, NewFactory(nil), tests)
}

func TestLambdaScoping(t *testing.T) {
	outerX, declOuterX := local("x", jast.Int(0))
	y, declY := local("y", jast.Int(1))
	x := jast.Param(jast.Unknown(), "x")
	useX := jast.Name("x")
	useY := jast.Name("y")
	lambda := jast.Lambda([]*jast.Node{x}, jast.Binary(useX, "+", useY))

	z := jast.Param(jast.Unknown(), "z")
	useZ := jast.Name("z")
	useBlockY := jast.Name("y")
	blockLambda := jast.Lambda([]*jast.Node{z}, jast.Block(jast.Return(jast.Binary(useZ, "*", useBlockY))))

	useLater := jast.Name("x")
	inMethod(
		declOuterX,
		declY,
		jast.LocalVar(jast.Type("F"), "f", lambda),
		jast.LocalVar(jast.Type("F"), "g", blockLambda),
		jast.ExprStmt(jast.Call(nil, "use", jast.Lambda(nil, useLater))),
	)

	checkCases(t, NewFactory(nil), []resolveCase{
		{name: "parameter before captured local", use: useX, want: x, kind: model.Parameter},
		{name: "captured local", use: useY, want: y, kind: model.LocalVariable},
		{name: "block body parameter", use: useZ, want: z, kind: model.Parameter},
		{name: "block body capture", use: useBlockY, want: y, kind: model.LocalVariable},
		{name: "outer local seen from a parameterless lambda", use: useLater, want: outerX, kind: model.LocalVariable},
	})
}

func TestStatementScoping(t *testing.T) {
	var tests []resolveCase

	{
		i := jast.TypedDeclarator(jast.Prim("int"), "i", jast.Int(0))
		j := jast.TypedDeclarator(jast.Prim("int"), "j", nil)
		useInJ := jast.Name("i")
		jInit := jast.Assign(jast.Name("j"), "=", useInJ)
		useCompare := jast.Name("i")
		useUpdate := jast.Name("j")
		useBody, stmt := use("i")
		useAfter, after := use("i")
		loop := jast.For(
			[]*jast.Node{jast.VarDecl(i), jast.VarDecl(j), jInit},
			jast.Binary(useCompare, "<", jast.Int(3)),
			[]*jast.Node{jast.Unary("++", useUpdate)},
			jast.Block(stmt),
		)
		inMethod(loop, after)
		tests = append(tests,
			resolveCase{name: "for init to later init", use: useInJ, want: i, kind: model.LocalVariable},
			resolveCase{name: "for compare", use: useCompare, want: i, kind: model.LocalVariable},
			resolveCase{name: "for update", use: useUpdate, want: j, kind: model.LocalVariable},
			resolveCase{name: "for body", use: useBody, want: i, kind: model.LocalVariable},
			resolveCase{name: "for variable does not leak", use: useAfter},
		)
	}

	{
		item := jast.TypedDeclarator(jast.Type("String"), "item", nil)
		useIterable := jast.Name("item")
		useBody, stmt := use("item")
		inMethod(jast.ForEach(jast.VarDecl(item), useIterable, jast.Block(stmt)))
		tests = append(tests,
			resolveCase{name: "foreach body", use: useBody, want: item, kind: model.LocalVariable},
			resolveCase{name: "foreach iterable", use: useIterable},
		)
	}

	{
		r1 := jast.TypedDeclarator(jast.Type("Res"), "r1", jast.ObjectCreation(jast.Type("Res")))
		useR1 := jast.Name("r1")
		r2 := jast.TypedDeclarator(jast.Type("Res"), "r2", jast.Call(useR1, "open"))
		useBody, bodyStmt := use("r2")
		useInCatch, catchStmt := use("r1")
		e := jast.Param(jast.Type("Exception"), "e")
		useE, eStmt := use("e")
		useEFinally, finallyStmt := use("e")
		inMethod(jast.Try(
			[]*jast.Node{jast.VarDecl(r1), jast.VarDecl(r2)},
			jast.Block(bodyStmt),
			[]*jast.Node{jast.Catch(e, jast.Block(catchStmt, eStmt))},
			jast.Block(finallyStmt),
		))
		tests = append(tests,
			resolveCase{name: "resource to later resource", use: useR1, want: r1, kind: model.LocalVariable},
			resolveCase{name: "resource to try block", use: useBody, want: r2, kind: model.LocalVariable},
			resolveCase{name: "resource invisible in catch", use: useInCatch},
			resolveCase{name: "catch parameter", use: useE, want: e, kind: model.Parameter},
			resolveCase{name: "catch parameter invisible in finally", use: useEFinally},
		)
	}

	{
		c := jast.Pattern(jast.Type("Circle"), "c")
		k, declK := local("k", jast.Int(1))
		useC, stmtC := use("c")
		useK, stmtK := use("k")
		useOther, stmtOther := use("k")
		useOtherC, stmtOtherC := use("c")
		inMethod(jast.Switch(jast.Name("shape"),
			jast.Arrow([]*jast.Node{c}, jast.Block(declK, stmtC, stmtK)),
			jast.Arrow(nil, stmtOther, stmtOtherC),
		))
		tests = append(tests,
			resolveCase{name: "switch pattern", use: useC, want: c, kind: model.PatternVariable},
			resolveCase{name: "arrow entry local", use: useK, want: k, kind: model.LocalVariable},
			resolveCase{name: "arrow entry local does not leak", use: useOther},
			resolveCase{name: "arrow entry pattern does not leak", use: useOtherC},
		)
	}

	{
		x, declX := local("x", jast.Int(1))
		useSame, stmtSame := use("x")
		useLater, stmtLater := use("x")
		useDefault, stmtDefault := use("x")
		useAfter, stmtAfter := use("x")
		inMethod(
			jast.Switch(jast.Name("k"),
				jast.Entry([]*jast.Node{jast.Int(1)}, declX, stmtSame, jast.Break("")),
				jast.Entry([]*jast.Node{jast.Int(2)}, stmtLater),
				jast.Entry(nil, jast.Empty(), stmtDefault),
			),
			stmtAfter,
		)
		tests = append(tests,
			resolveCase{name: "colon entry local", use: useSame, want: x, kind: model.LocalVariable},
			resolveCase{name: "colon entry local in a later entry", use: useLater, want: x, kind: model.LocalVariable},
			resolveCase{name: "colon entry local in default", use: useDefault, want: x, kind: model.LocalVariable},
			resolveCase{name: "switch local does not leak", use: useAfter},
		)
	}

	{
		early, declEarly := local("v", jast.Int(1))
		useEarly, stmtEarly := use("v")
		_, declLate := local("v", jast.Int(2))
		inMethod(jast.Switch(jast.Name("k"),
			jast.Entry([]*jast.Node{jast.Int(1)}, declEarly),
			jast.Entry([]*jast.Node{jast.Int(2)}, stmtEarly),
			jast.Entry([]*jast.Node{jast.Int(3)}, declLate),
		))
		tests = append(tests, resolveCase{name: "later entry local is invisible", use: useEarly, want: early, kind: model.LocalVariable})
	}

	{
		c := jast.Pattern(jast.Type("Circle"), "c")
		useThen, thenStmt := use("c")
		useElse, elseStmt := use("c")
		inMethod(jast.If(jast.InstanceOf(jast.Name("o"), nil, c), jast.Block(thenStmt), jast.Block(elseStmt)))
		tests = append(tests,
			resolveCase{name: "instanceof pattern in then", use: useThen, want: c, kind: model.PatternVariable},
			resolveCase{name: "instanceof pattern not in else", use: useElse},
		)
	}

	{
		s := jast.Pattern(jast.Type("String"), "s")
		useThen, thenStmt := use("s")
		useElse, elseStmt := use("s")
		test := jast.Unary("!", jast.Enclosed(jast.InstanceOf(jast.Name("o"), nil, s)))
		inMethod(jast.If(test, jast.Block(thenStmt), jast.Block(elseStmt)))
		tests = append(tests,
			resolveCase{name: "negated instanceof pattern not in then", use: useThen},
			resolveCase{name: "negated instanceof pattern in else", use: useElse, want: s, kind: model.PatternVariable},
		)
	}

	{
		s := jast.Pattern(jast.Type("String"), "s")
		useRight := jast.Name("s")
		useThen, thenStmt := use("s")
		test := jast.Binary(jast.InstanceOf(jast.Name("o"), nil, s), "&&", jast.Call(useRight, "isEmpty"))
		inMethod(jast.If(test, jast.Block(thenStmt), nil))
		tests = append(tests,
			resolveCase{name: "instanceof pattern in && right operand", use: useRight, want: s, kind: model.PatternVariable},
			resolveCase{name: "instanceof pattern through && in then", use: useThen, want: s, kind: model.PatternVariable},
		)
	}

	{
		s := jast.Pattern(jast.Type("String"), "s")
		useRight := jast.Name("s")
		useThen, thenStmt := use("s")
		test := jast.Binary(jast.Unary("!", jast.InstanceOf(jast.Name("o"), nil, s)), "||", jast.Call(useRight, "isEmpty"))
		inMethod(jast.If(test, jast.Block(thenStmt), nil))
		tests = append(tests,
			resolveCase{name: "negated pattern in || right operand", use: useRight, want: s, kind: model.PatternVariable},
			resolveCase{name: "|| introduces nothing when true", use: useThen},
		)
	}

	{
		s := jast.Pattern(jast.Type("String"), "s")
		useThen := jast.Name("s")
		useElse := jast.Name("s")
		cond := jast.Conditional(jast.InstanceOf(jast.Name("o"), nil, s), useThen, useElse)
		useBody, bodyStmt := use("t")
		t := jast.Pattern(jast.Type("Token"), "t")
		inMethod(
			jast.ExprStmt(jast.Call(nil, "use", cond)),
			jast.While(jast.InstanceOf(jast.Call(nil, "next"), nil, t), jast.Block(bodyStmt)),
		)
		tests = append(tests,
			resolveCase{name: "conditional then operand", use: useThen, want: s, kind: model.PatternVariable},
			resolveCase{name: "conditional else operand", use: useElse},
			resolveCase{name: "while pattern in body", use: useBody, want: t, kind: model.PatternVariable},
		)
	}

	{
		z, declZ := local("z", jast.Int(1))
		useZ, stmt := use("z")
		inMethod(declZ, jast.LocalClass(jast.Class("L", jast.Method("m", jast.Void(), jast.Block(stmt)))))
		tests = append(tests, resolveCase{name: "local class captures", use: useZ, want: z, kind: model.LocalVariable})
	}

	checkCases(t, NewFactory(nil), tests)
}

func TestClassScoping(t *testing.T) {
	count := jast.Declarator("count", jast.Int(0))
	baseClass := jast.Class("Base", jast.Field(jast.Prim("int"), count))

	own := jast.Declarator("own", nil)
	useCount, stmtCount := use("count")
	useExt, stmtExt := use("ext")
	useOwn := jast.Name("own")
	_, selfInit := local("own", useOwn)
	useMax, stmtMax := use("MAX")
	useMin, stmtMin := use("MIN")
	useInit := jast.Name("own")
	derived := jast.Class("Derived",
		jast.Extends("Base"),
		jast.Implements("q.Ext"),
		jast.Field(jast.Prim("int"), own),
		jast.Initializer(false, jast.Block(jast.ExprStmt(jast.Assign(useInit, "=", jast.Int(1))))),
		jast.Method("run", jast.Void(), jast.Block(stmtCount, stmtExt, selfInit, stmtMax, stmtMin)),
	)

	red := jast.EnumConstant("RED")
	useRed, stmtRed := use("RED")
	color := jast.Enum("Color", red, jast.Method("m", jast.Void(), jast.Block(stmtRed)))

	re := jast.Param(jast.Prim("double"), "re")
	useRe, stmtRe := use("re")
	record := jast.Record("Complex", re, jast.Method("abs", jast.Prim("double"), jast.Block(stmtRe)))

	cycleA := jast.Class("CycleA", jast.Extends("CycleB"))
	useNothing, stmtNothing := use("nothing")
	cycleB := jast.Class("CycleB", jast.Extends("CycleA"), jast.Method("m", jast.Void(), jast.Block(stmtNothing)))

	jast.Unit(
		jast.Package("p"),
		jast.StaticImport("util.Consts.MAX"),
		jast.StaticImportAll("util.Limits"),
		baseClass, derived, color, record, cycleA, cycleB,
	)

	solver, err := typesolver.NewMemory(
		typesolver.Type{Name: "q.Ext", Fields: []typesolver.Field{{Name: "ext", Type: "int"}}},
		typesolver.Type{Name: "util.Consts", Fields: []typesolver.Field{{Name: "MAX", Type: "int"}}},
		typesolver.Type{Name: "util.Limits", Fields: []typesolver.Field{{Name: "MIN", Type: "int"}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	f := NewFactory(solver)

	checkCases(t, f, []resolveCase{
		{name: "inherited source field", use: useCount, want: count, kind: model.Field},
		{name: "field seen by a shadowing initializer", use: useOwn, want: own, kind: model.Field},
		{name: "field in initializer block", use: useInit, want: own, kind: model.Field},
		{name: "enum constant", use: useRed, want: red, kind: model.EnumConstant},
		{name: "record component", use: useRe, want: re, kind: model.RecordComponent},
		{name: "cyclic hierarchy terminates", use: useNothing},
	})

	external := []struct {
		name  string
		use   *jast.Node
		owner string
	}{
		{name: "inherited external field", use: useExt, owner: "q.Ext"},
		{name: "static single import", use: useMax, owner: "util.Consts"},
		{name: "static on demand import", use: useMin, owner: "util.Limits"},
	}
	for _, tt := range external {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := resolveUse(f, tt.use)
			if err != nil {
				t.Fatal(err)
			}
			if !ref.IsSolved() {
				t.Fatalf("%s is not resolved", tt.use.Name())
			}
			d := ref.Declaration()
			if d.Node != nil || d.Owner != tt.owner || d.Kind != model.Field {
				t.Errorf("unexpected declaration %s", d)
			}
		})
	}

	ref, err := resolveUse(f, useCount)
	if err != nil {
		t.Fatal(err)
	}
	if owner := ref.Declaration().Owner; owner != "p.Base" {
		t.Errorf("owner = %s, want p.Base", owner)
	}
}

func TestUnitSolveType(t *testing.T) {
	useT, stmt := use("t")
	unit := jast.Unit(
		jast.Package("p"),
		jast.Import("x.Single"),
		jast.ImportAll("y"),
		jast.Class("Local", jast.Class("Member"), jast.Method("run", jast.Void(), jast.Block(stmt))),
	)
	solver, err := typesolver.NewMemory(
		typesolver.Type{Name: "x.Single"},
		typesolver.Type{Name: "p.Sibling"},
		typesolver.Type{Name: "y.OnDemand"},
		typesolver.Type{Name: "java.lang.String"},
		typesolver.Type{Name: "Raw"},
		typesolver.Type{Name: "z.Qualified"},
		typesolver.Type{Name: "y.Single"},
	)
	if err != nil {
		t.Fatal(err)
	}
	f := NewFactory(solver)

	tests := []struct {
		name string
		typ  string
		want string
	}{
		{name: "declared", typ: "Local", want: "p.Local"},
		{name: "member type", typ: "Member", want: "p.Local.Member"},
		{name: "single import beats on demand", typ: "Single", want: "x.Single"},
		{name: "same package", typ: "Sibling", want: "p.Sibling"},
		{name: "on demand import", typ: "OnDemand", want: "y.OnDemand"},
		{name: "implicit java.lang", typ: "String", want: "java.lang.String"},
		{name: "raw name", typ: "Raw", want: "Raw"},
		{name: "qualified", typ: "z.Qualified", want: "z.Qualified"},
		{name: "declared qualified", typ: "p.Local", want: "p.Local"},
		{name: "unknown", typ: "Nope"},
	}

	ctx, err := f.ForNode(NearestEligible(useT))
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ctx.SolveType(tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == "" {
				if ref.IsSolved() {
					t.Fatalf("unexpected type %s", ref.Declaration().QualifiedName())
				}
				return
			}
			if !ref.IsSolved() {
				t.Fatalf("type %s is not found", tt.typ)
			}
			if got := ref.Declaration().QualifiedName(); got != tt.want {
				t.Errorf("type = %s, want %s", got, tt.want)
			}
		})
	}

	if unitCtx, err := f.ForNode(unit); err != nil || unitCtx.Parent() != nil {
		t.Errorf("unit must be the root context: %v", err)
	}
}

func TestContractViolations(t *testing.T) {
	_, decl := local("a", jast.Int(1))
	useA, stmt := use("a")
	unit := inMethod(decl, stmt)
	body := unit.Find(jast.OfKind(jast.BlockStmt))

	loop := jast.For(nil, nil, nil, jast.Block())
	jast.Block(loop)

	f := NewFactory(nil)

	t.Run("no context for expressions", func(t *testing.T) {
		_, err := f.ForNode(useA)
		if !errors.Is(err, ErrNoContext) {
			t.Fatalf("unexpected error %v", err)
		}
		var ce *ContractError
		if !errors.As(err, &ce) || ce.Kind != jast.NameExpr || ce.Op != "ForNode" {
			t.Errorf("unexpected contract error %#v", ce)
		}
	})

	t.Run("block exposure to a stranger", func(t *testing.T) {
		ctx, err := f.ForNode(body)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ctx.LocalVariablesExposedToChild(jast.Return(jast.Int(1))); !errors.Is(err, ErrNotAChild) {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("block exposure to a structural twin", func(t *testing.T) {
		ctx, err := f.ForNode(body)
		if err != nil {
			t.Fatal(err)
		}
		twin := jast.ExprStmt(jast.Call(nil, "use", jast.Name("a")))
		exposed, err := ctx.LocalVariablesExposedToChild(twin)
		if err != nil {
			t.Fatal(err)
		}
		if len(exposed) != 1 || exposed[0].Name() != "a" {
			t.Errorf("unexpected exposure %v", exposed)
		}
	})

	t.Run("loop exposure to a stranger", func(t *testing.T) {
		ctx, err := f.ForNode(loop)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ctx.LocalVariablesExposedToChild(body); !errors.Is(err, ErrNotAChild) {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("unknown names are not errors", func(t *testing.T) {
		ctx, err := f.ForNode(body)
		if err != nil {
			t.Fatal(err)
		}
		ref, err := ctx.SolveSymbol("missing")
		if err != nil {
			t.Fatal(err)
		}
		if ref.IsSolved() {
			t.Error("unsolved reference was expected")
		}
	})
}

func TestRootTermination(t *testing.T) {
	x, declX := local("x", jast.Int(1))
	useX, stmtX := use("x")
	block := jast.Block(declX, stmtX)
	stray := jast.ExprStmt(jast.Call(nil, "use", jast.Name("x")))

	f := NewFactory(nil)

	for _, n := range []*jast.Node{block, stray} {
		t.Run(n.Kind().String(), func(t *testing.T) {
			ctx, err := f.ForNode(n)
			if err != nil {
				t.Fatal(err)
			}
			if ctx.Parent() != nil {
				t.Fatalf("detached %s must have no enclosing context", n.Kind())
			}

			ref, err := ctx.SolveSymbol("x")
			if err != nil {
				t.Fatal(err)
			}
			if ref.IsSolved() {
				t.Errorf("unsolved reference was expected, got %s", ref.Declaration())
			}
		})
	}

	t.Run("detached block still resolves its locals", func(t *testing.T) {
		ref, err := resolveUse(f, useX)
		if err != nil {
			t.Fatal(err)
		}
		if !ref.IsSolved() || ref.Declaration().Node != x {
			t.Error("x must resolve to its declaration")
		}
	})
}

func TestLinearScaling(t *testing.T) {
	const width = 10_000

	a := jast.TypedDeclarator(jast.Type("A"), "a", jast.This())
	stmts := []*jast.Node{jast.ExprStmt(jast.VarDecl(a))}
	for i := 0; i < width; i++ {
		stmts = append(stmts, jast.LocalVar(jast.Type("A"), "_"+strconv.Itoa(i), jast.This()))
	}
	useA := jast.Name("a")
	stmts = append(stmts, jast.Block(jast.ExprStmt(jast.Call(useA, "method"))))
	inMethod(stmts...)

	var built atomic.Int64
	f := NewFactory(nil, WithConstructionHook(func(*jast.Node) {
		built.Add(1)
	}))

	ref, err := resolveUse(f, useA)
	if err != nil {
		t.Fatal(err)
	}
	if !ref.IsSolved() || ref.Declaration().Node != a {
		t.Fatal("a must resolve to its declaration")
	}

	if got := built.Load(); got < width || got > 2*width+100 {
		t.Errorf("%d contexts were built for a list of %d statements", got, width)
	} else {
		t.Logf("%d contexts built", got)
	}
}

func TestConcurrentQueries(t *testing.T) {
	var uses []*jast.Node
	var wants []*jast.Node
	var stmts []*jast.Node
	for i := 0; i < 50; i++ {
		d, decl := local("v"+strconv.Itoa(i), jast.Int(i))
		u, stmt := use("v" + strconv.Itoa(i))
		stmts = append(stmts, decl, stmt)
		uses = append(uses, u)
		wants = append(wants, d)
	}
	inMethod(stmts...)

	f := NewFactory(nil)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, u := range uses {
				ref, err := resolveUse(f, u)
				if err != nil {
					t.Error(err)
					return
				}
				if !ref.IsSolved() || ref.Declaration().Node != wants[i] {
					t.Errorf("%s resolved wrong", u.Name())
					return
				}
			}
		}()
	}
	wg.Wait()
}
