package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLiterals(t *testing.T) {
	cases := map[ast.LitKind]string{
		ast.LitUnit:   "Unit",
		ast.LitInt:    "Int",
		ast.LitFloat:  "Float",
		ast.LitBool:   "Bool",
		ast.LitChar:   "Char",
		ast.LitString: "String",
	}
	for kind, expected := range cases {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, expected, typeOf(t, &ast.Literal{Range: at, Kind: kind}))
		})
	}
}

func TestLet(t *testing.T) {
	t.Run("annotated binding and continuation", func(t *testing.T) {
		expr := &ast.Let{
			Range:   at,
			Name:    "x",
			TypeAnn: ast.IntType,
			Value:   intLit("1"),
			Body:    let("y", binary(ast.OpIntAdd, ref("x"), intLit("2")), ref("y")),
		}
		res, err := Expr(testEnv(), expr)
		require.NoError(t, err)
		assert.Equal(t, "Int", res.Type().String())

		inner := res.(*typed.Let).Body.(*typed.Let)
		assert.Equal(t, "y", inner.Name)
		assert.Equal(t, "Int", inner.Value.Type().String())
	})
	t.Run("annotation mismatch", func(t *testing.T) {
		expr := &ast.Let{Range: at, Name: "x", TypeAnn: ast.StringType, Value: intLit("1"), Body: ref("x")}
		failsWith(t, expr, ilerr.UnexpectedType, "binding 'x'")
	})
	t.Run("undefined annotation", func(t *testing.T) {
		expr := &ast.Let{Range: at, Name: "x", TypeAnn: ast.Named("Foo"), Value: intLit("1"), Body: ref("x")}
		failsWith(t, expr, ilerr.UndefinedTypeIdentifier, "'Foo'")
	})
	t.Run("rebinding in the same scope", func(t *testing.T) {
		expr := let("x", intLit("1"), let("x", intLit("2"), ref("x")))
		failsWith(t, expr, ilerr.ShadowedName, "binding 'x' is already declared")
	})
	t.Run("discard can be bound repeatedly", func(t *testing.T) {
		expr := let("_", intLit("1"), let("_", strLit("a"), boolLit("true")))
		assert.Equal(t, "Bool", typeOf(t, expr))
	})
	t.Run("discard binds nothing", func(t *testing.T) {
		failsWith(t, let("_", intLit("1"), ref("_")), ilerr.UndefinedIdentifier, "'_'")
	})
	t.Run("function literal opens a scope", func(t *testing.T) {
		expr := &ast.FuncLit{
			Range:  at,
			Params: []ast.Param{param("x", ast.IntType)},
			Body:   let("str", ref("x"), ref("str")),
		}
		assert.Equal(t, "Int -> Int", typeOf(t, expr))
	})
}

func TestRef(t *testing.T) {
	assert.Equal(t, "String", typeOf(t, ref("str")))
	assert.Equal(t, "Int -> Int", typeOf(t, ref("id", ast.IntType)))

	failsWith(t, ref("nope"), ilerr.UndefinedIdentifier, "identifier 'nope' is not defined")
	failsWith(t, ref("id"), ilerr.GenericsArityMismatch, "'id' takes 1 generic argument(s), but 0 were supplied")
	failsWith(t, ref("str", ast.IntType), ilerr.GenericsArityMismatch, "but 1 were supplied")
	failsWith(t, ref("id", ast.Named("Foo")), ilerr.UndefinedTypeIdentifier, "'Foo'")

	res, err := Expr(testEnv(), ref("id", ast.BoolType))
	require.NoError(t, err)
	assert.True(t, ast.TypesEqual([]ast.TypeExpr{ast.BoolType}, res.(*typed.Ref).Generics))
}

func TestBinary(t *testing.T) {
	ok := []struct {
		expr     ast.Expr
		expected string
	}{
		{binary(ast.OpIntMul, intLit("1"), intLit("2")), "Int"},
		{binary(ast.OpFloatAdd, floatLit("1.0"), floatLit("2.0")), "Float"},
		{binary(ast.OpConcat, strLit("a"), ref("str")), "String"},
		{binary(ast.OpLess, intLit("1"), intLit("2")), "Bool"},
		{binary(ast.OpGreaterEq, strLit("a"), strLit("b")), "Bool"},
		{binary(ast.OpLessEq, &ast.Literal{Range: at, Kind: ast.LitChar}, &ast.Literal{Range: at, Kind: ast.LitChar}), "Bool"},
		{binary(ast.OpEq, ref("someInt"), ref("someInt")), "Bool"},
		{binary(ast.OpNotEq, ref("point"), ref("point")), "Bool"},
		{binary(ast.OpAnd, boolLit("true"), boolLit("false")), "Bool"},
	}
	for _, c := range ok {
		t.Run(c.expr.Describe(), func(t *testing.T) {
			assert.Equal(t, c.expected, typeOf(t, c.expr))
		})
	}

	failing := []struct {
		name string
		expr ast.Expr
		msg  string
	}{
		{"int and string", binary(ast.OpIntAdd, intLit("1"), strLit("a")), "operand of '+': expected type 'Int', but found a different type 'String'"},
		{"int for float", binary(ast.OpFloatAdd, intLit("1"), floatLit("2.0")), "operand of '+.'"},
		{"concat of ints", binary(ast.OpConcat, intLit("1"), intLit("2")), "operand of '++'"},
		{"ordering of variants", binary(ast.OpLess, ref("someInt"), ref("someInt")), "expected type 'Int | Float | Char | String'"},
		{"ordering of different types", binary(ast.OpLess, intLit("1"), floatLit("1.0")), "found a different type 'Float'"},
		{"equality of different types", binary(ast.OpEq, ref("someInt"), ref("someString")), "'Option<String>'"},
		{"logical on int", binary(ast.OpOr, intLit("1"), boolLit("true")), "operand of '||'"},
	}
	for _, c := range failing {
		t.Run(c.name, func(t *testing.T) {
			failsWith(t, c.expr, ilerr.UnexpectedType, c.msg)
		})
	}
}

func TestNot(t *testing.T) {
	assert.Equal(t, "Bool", typeOf(t, &ast.Not{Range: at, Operand: boolLit("true")}))
	failsWith(t, &ast.Not{Range: at, Operand: intLit("1")}, ilerr.UnexpectedType, "operand of '!'")
}

func TestIf(t *testing.T) {
	ifElse := func(cond, then, els ast.Expr) ast.Expr {
		return &ast.If{Range: at, Cond: cond, Then: then, Else: els}
	}
	assert.Equal(t, "Int", typeOf(t, ifElse(boolLit("true"), intLit("1"), intLit("2"))))
	failsWith(t, ifElse(intLit("1"), intLit("1"), intLit("2")), ilerr.UnexpectedType, "if condition")
	failsWith(t, ifElse(boolLit("true"), intLit("1"), strLit("2")), ilerr.UnexpectedType, "else branch")
}

func TestThrow(t *testing.T) {
	assert.Equal(t, "Point", typeOf(t, &ast.Throw{Range: at, Payload: strLit("oops"), As: ast.Named("Point")}))
	assert.Equal(t, "Option<Int>", typeOf(t, &ast.Throw{Range: at, Payload: ref("str"), As: ast.Named("Option", ast.IntType)}))
	failsWith(t, &ast.Throw{Range: at, Payload: intLit("1"), As: ast.IntType}, ilerr.UnexpectedType, "thrown value")
	failsWith(t, &ast.Throw{Range: at, Payload: strLit("oops"), As: ast.Named("Option")}, ilerr.UndefinedTypeIdentifier, "")
}

func TestTryCatch(t *testing.T) {
	tryCatch := func(try ast.Expr, ident string, catch ast.Expr) ast.Expr {
		return &ast.TryCatch{Range: at, Try: try, Ident: ident, Catch: catch}
	}
	assert.Equal(t, "String", typeOf(t, tryCatch(strLit("a"), "e", binary(ast.OpConcat, ref("e"), strLit("!")))))
	assert.Equal(t, "Int", typeOf(t, tryCatch(intLit("1"), "_", intLit("2"))))
	failsWith(t, tryCatch(intLit("1"), "e", ref("e")), ilerr.UnexpectedType, "catch branch")
	failsWith(t, tryCatch(intLit("1"), "_", ref("_")), ilerr.UndefinedIdentifier, "")
	failsWith(t, tryCatch(strLit("a"), "str", strLit("b")), ilerr.ShadowedName, "catch identifier 'str'")
}

func TestFuncLit(t *testing.T) {
	fn := func(body ast.Expr, params ...ast.Param) ast.Expr {
		return &ast.FuncLit{Range: at, Params: params, Body: body}
	}
	assert.Equal(t, "Int -> Int", typeOf(t, fn(binary(ast.OpIntAdd, ref("x"), intLit("1")), param("x", ast.IntType))))
	assert.Equal(t, "(Int, String) -> String", typeOf(t, fn(ref("s"), param("i", ast.IntType), param("s", ast.StringType))))
	assert.Equal(t, "() -> Unit", typeOf(t, fn(&ast.Literal{Range: at, Kind: ast.LitUnit})))
	assert.Equal(t, "Option<Int> -> Int", typeOf(t, fn(intLit("1"), param("_", ast.Named("Option", ast.IntType)))))

	failsWith(t, fn(ref("x"), param("x", ast.IntType), param("x", ast.IntType)), ilerr.ShadowedName, "parameter 'x'")
	failsWith(t, fn(intLit("1"), param("x", ast.Named("Foo"))), ilerr.UndefinedTypeIdentifier, "'Foo'")
	failsWith(t, fn(intLit("1"), param("x", ast.Named("Option"))), ilerr.UndefinedTypeIdentifier, "generic argument(s)")
}

type unknownExpr struct{ *ast.Literal }

func TestUnknownExpressionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unreachable: unknown expression *check.unknownExpr", func() {
		_, _ = Expr(testEnv(), &unknownExpr{intLit("1")})
	})
}
