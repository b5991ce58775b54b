package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"full application", apply(ref("add"), intLit("1"), intLit("2")), "Int"},
		{"partial application", apply(ref("add"), intLit("1")), "Int -> Int"},
		{"no arguments", apply(ref("add")), "(Int, Int) -> Int"},
		{"application of a partial application", apply(apply(ref("add"), intLit("1")), intLit("2")), "Int"},
		{"inferred generic", apply(ref("id"), ref("str")), "String"},
		{"explicit generic", apply(ref("id", ast.IntType), intLit("1")), "Int"},
		{"inferred from a generic type", apply(ref("id"), ref("someInt")), "Option<Int>"},
		{"inferred from both arguments", apply(ref("same"), intLit("1"), intLit("2")), "Bool"},
		{
			"inferred through a function argument",
			apply(ref("mapOpt"), &ast.FuncLit{
				Range:  at,
				Params: []ast.Param{param("x", ast.IntType)},
				Body:   binary(ast.OpGreater, ref("x"), intLit("0")),
			}, ref("someInt")),
			"Option<Bool>",
		},
		{
			"function literal applied directly",
			apply(&ast.FuncLit{Range: at, Params: []ast.Param{param("s", ast.StringType)}, Body: ref("s")}, strLit("a")),
			"String",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, typeOf(t, c.expr))
		})
	}
}

func TestApplyRecordsInferredGenerics(t *testing.T) {
	res, err := Expr(testEnv(), apply(ref("id"), ref("str")))
	require.NoError(t, err)
	fn := res.(*typed.Apply).Func.(*typed.Ref)
	assert.Equal(t, "id", fn.Name)
	assert.True(t, ast.TypesEqual([]ast.TypeExpr{ast.StringType}, fn.Generics))
	assert.Equal(t, "String -> String", fn.Type().String())
}

func TestApplyFailures(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expr
		code ilerr.ErrCode
		msg  string
	}{
		{"too many arguments", apply(ref("add"), intLit("1"), intLit("2"), intLit("3")), ilerr.TooManyArguments, "function takes 2, but 3 were supplied"},
		{"too many arguments to a generic function", apply(ref("id"), intLit("1"), intLit("2")), ilerr.TooManyArguments, ""},
		{"argument of the wrong type", apply(ref("add"), strLit("a"), intLit("1")), ilerr.UnexpectedType, "argument 1 of reference"},
		{"not a function", apply(ref("str"), intLit("1")), ilerr.NotAFunction, "type 'String'"},
		{"undefined function", apply(ref("nope"), intLit("1")), ilerr.UndefinedIdentifier, "'nope'"},
		{"undefined function before its arguments", apply(ref("nope"), ref("missing")), ilerr.UndefinedIdentifier, "'nope'"},
		{"ill-typed argument", apply(ref("add"), binary(ast.OpIntAdd, intLit("1"), strLit("a"))), ilerr.UnexpectedType, "operand of '+'"},
		{"conflicting inferred generic", apply(ref("same"), intLit("1"), strLit("a")), ilerr.GenericsShapeMismatch, "already inferred as 'Int'"},
		{"generic missing from the arguments", apply(ref("first"), intLit("1")), ilerr.GenericsIncomplete, "cannot infer generic(s) B of 'first'"},
		{"explicit generic disagrees", apply(ref("id", ast.IntType), strLit("a")), ilerr.UnexpectedType, "expected type 'Int'"},
		{
			"function argument of the wrong shape",
			apply(ref("mapOpt"), ref("add"), ref("someInt")),
			ilerr.GenericsShapeMismatch,
			"number of parameters differs",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			failsWith(t, c.expr, c.code, c.msg)
		})
	}
}
