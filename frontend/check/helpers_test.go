package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/types"
	"github.com/stretchr/testify/assert"
	"testing"
)

// builders for raw trees, all placed at line 1

var at = ast.AtLine(1)

func intLit(syntax string) *ast.Literal {
	return &ast.Literal{Range: at, Kind: ast.LitInt, Syntax: syntax}
}

func floatLit(syntax string) *ast.Literal {
	return &ast.Literal{Range: at, Kind: ast.LitFloat, Syntax: syntax}
}

func strLit(syntax string) *ast.Literal {
	return &ast.Literal{Range: at, Kind: ast.LitString, Syntax: syntax}
}

func boolLit(syntax string) *ast.Literal {
	return &ast.Literal{Range: at, Kind: ast.LitBool, Syntax: syntax}
}

func ref(name string, generics ...ast.TypeExpr) *ast.Ref {
	return &ast.Ref{Range: at, Name: name, Generics: generics}
}

func binary(op ast.BinOp, left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Range: at, Op: op, Left: left, Right: right}
}

func apply(fn ast.Expr, args ...ast.Expr) *ast.Apply {
	return &ast.Apply{Range: at, Func: fn, Args: args}
}

func let(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Range: at, Name: name, Value: value, Body: body}
}

func construct(typeName, tag string, arg ast.Expr, generics ...ast.TypeExpr) *ast.Construct {
	return &ast.Construct{Range: at, Type: typeName, Tag: tag, Generics: generics, Arg: arg}
}

func field(name string, value ast.Expr) ast.FieldInit {
	return ast.FieldInit{Range: at, Name: name, Value: value}
}

func structLit(typeName string, fields ...ast.FieldInit) *ast.StructLit {
	return &ast.StructLit{Range: at, Type: typeName, Fields: fields}
}

func arm(pattern ast.Pattern, body ast.Expr) ast.MatchArm {
	return ast.MatchArm{Range: at, Pattern: pattern, Body: body}
}

func match(scrutinee ast.Expr, arms ...ast.MatchArm) *ast.Match {
	return &ast.Match{Range: at, Scrutinee: scrutinee, Arms: arms}
}

func tagP(tag, binding string) *ast.TagPattern {
	return &ast.TagPattern{Range: at, Tag: tag, Binding: binding}
}

func param(name string, typ ast.TypeExpr) ast.Param {
	return ast.Param{Range: at, Name: name, Type: typ}
}

func typeList(ts ...ast.TypeExpr) []ast.TypeExpr { return ts }

// declarations

func optionClass() *ast.Class {
	return &ast.Class{
		Range: at,
		Name:  ast.TypeIdentifier{Range: at, Name: "Option", Generics: []string{"T"}},
		Decl: &ast.VariantDecl{Range: at, Tags: []ast.TagDecl{
			{Range: at, Name: "None"},
			{Range: at, Name: "Some", Payload: ast.Named("T")},
		}},
	}
}

func pointClass() *ast.Class {
	return &ast.Class{
		Range: at,
		Name:  ast.TypeIdentifier{Range: at, Name: "Point"},
		Decl: &ast.StructDecl{Range: at, Fields: []ast.FieldDecl{
			{Range: at, Name: "x", Type: ast.IntType},
			{Range: at, Name: "y", Type: ast.IntType},
		}},
	}
}

func pairClass() *ast.Class {
	return &ast.Class{
		Range: at,
		Name:  ast.TypeIdentifier{Range: at, Name: "Pair", Generics: []string{"A", "B"}},
		Decl: &ast.StructDecl{Range: at, Fields: []ast.FieldDecl{
			{Range: at, Name: "fst", Type: ast.Named("A")},
			{Range: at, Name: "snd", Type: ast.Named("B")},
		}},
	}
}

func colorClass() *ast.Class {
	return &ast.Class{
		Range: at,
		Name:  ast.TypeIdentifier{Range: at, Name: "Color"},
		Decl: &ast.VariantDecl{Range: at, Tags: []ast.TagDecl{
			{Range: at, Name: "Red"},
			{Range: at, Name: "Green"},
			{Range: at, Name: "Blue"},
		}},
	}
}

// testEnv holds Option, Point, Pair and Color, and a few values of those types
func testEnv() types.Env {
	env := types.NewInitialEnv()
	for _, class := range []*ast.Class{optionClass(), pointClass(), pairClass(), colorClass()} {
		env = env.EnterContainer(class).ExitContainer(class)
	}
	return env.
		Put("someInt", types.TypeInfo{Type: ast.Named("Option", ast.IntType)}).
		Put("someString", types.TypeInfo{Type: ast.Named("Option", ast.StringType)}).
		Put("point", types.TypeInfo{Type: ast.Named("Point")}).
		Put("pair", types.TypeInfo{Type: ast.Named("Pair", ast.IntType, ast.StringType)}).
		Put("color", types.TypeInfo{Type: ast.Named("Color")}).
		Put("str", types.TypeInfo{Type: ast.StringType}).
		Put("add", types.TypeInfo{Type: ast.Fn(typeList(ast.IntType, ast.IntType), ast.IntType)}).
		Put("id", types.TypeInfo{
			Type:     ast.Fn(typeList(ast.Named("T")), ast.Named("T")),
			Generics: []string{"T"},
		}).
		Put("same", types.TypeInfo{
			Type:     ast.Fn(typeList(ast.Named("T"), ast.Named("T")), ast.BoolType),
			Generics: []string{"T"},
		}).
		Put("first", types.TypeInfo{
			Type:     ast.Fn(typeList(ast.Named("A"), ast.Named("B")), ast.Named("A")),
			Generics: []string{"A", "B"},
		}).
		Put("mapOpt", types.TypeInfo{
			Type: ast.Fn(
				typeList(ast.Fn(typeList(ast.Named("T")), ast.Named("U")), ast.Named("Option", ast.Named("T"))),
				ast.Named("Option", ast.Named("U")),
			),
			Generics: []string{"T", "U"},
		})
}

// typeOf checks expr in testEnv and returns its rendered type
func typeOf(t *testing.T, expr ast.Expr) string {
	t.Helper()
	res, err := Expr(testEnv(), expr)
	if !assert.NoError(t, err) {
		return ""
	}
	return res.Type().String()
}

// failsWith checks expr in testEnv and asserts it fails with code and a message containing msg
func failsWith(t *testing.T, expr ast.Expr, code ilerr.ErrCode, msg string) {
	t.Helper()
	_, err := Expr(testEnv(), expr)
	assert.Equal(t, code, ilerr.CodeOf(err), "error: %v", err)
	if msg != "" {
		assert.ErrorContains(t, err, msg)
	}
}
