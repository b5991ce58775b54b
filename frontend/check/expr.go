package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/cottand/ilec/frontend/types"
	"reflect"
	"slices"
	"strings"
)

// expr checks expr in env and returns it decorated with its type
func (c *checker) expr(env types.Env, expr ast.Expr) (ret typed.Expr, err error) {
	c.logger.Debug("typing expression", "expr", ast.Slog(expr))
	defer func() {
		if err == nil && ret != nil {
			c.logger.Debug("done typing expression", "expr", ast.Slog(expr), "result", ast.SlogType(ret.Type()))
		}
	}()

	switch expr := expr.(type) {
	case *ast.Literal:
		return &typed.Literal{
			Range:  expr.Range,
			Typed:  typed.Typed{T: expr.Kind.Type()},
			Kind:   expr.Kind,
			Syntax: expr.Syntax,
		}, nil
	case *ast.Ref:
		ref, err := c.ref(env, expr)
		if err != nil {
			return nil, err
		}
		return ref, nil
	case *ast.Construct:
		return c.construct(env, expr)
	case *ast.StructLit:
		return c.structLit(env, expr)
	case *ast.StructCopy:
		return c.structCopy(env, expr)
	case *ast.FieldAccess:
		return c.fieldAccess(env, expr)
	case *ast.Not:
		operand, err := c.exprOfType(env, expr.Operand, ast.BoolType, "operand of '!'")
		if err != nil {
			return nil, err
		}
		return &typed.Not{Range: expr.Range, Typed: typed.Typed{T: ast.BoolType}, Operand: operand}, nil
	case *ast.Binary:
		return c.binary(env, expr)
	case *ast.Throw:
		return c.throw(env, expr)
	case *ast.If:
		return c.ifElse(env, expr)
	case *ast.Match:
		return c.match(env, expr)
	case *ast.Apply:
		return c.apply(env, expr)
	case *ast.FuncLit:
		return c.funcLit(env, expr)
	case *ast.TryCatch:
		return c.tryCatch(env, expr)
	case *ast.Let:
		return c.let(env, expr)
	default:
		panic("unreachable: unknown expression " + reflect.TypeOf(expr).String())
	}
}

// exprOfType checks expr and requires its type to be expected
func (c *checker) exprOfType(env types.Env, expr ast.Expr, expected ast.TypeExpr, context string) (typed.Expr, error) {
	res, err := c.expr(env, expr)
	if err != nil {
		return nil, err
	}
	if err := expect(expr, expected, res.Type(), context); err != nil {
		return nil, err
	}
	return res, nil
}

// ref resolves a reference used as a value. A generic binding needs
// all of its generics written explicitly here, see apply for call sites.
func (c *checker) ref(env types.Env, ref *ast.Ref) (*typed.Ref, error) {
	info, ok := env.Get(ref.Name)
	if !ok {
		return nil, ilerr.New(ilerr.NewUndefinedIdentifier{
			Positioner: ilerr.At(ref),
			Name:       ref.Name,
		})
	}
	if len(info.Generics) != len(ref.Generics) {
		return nil, ilerr.New(ilerr.NewGenericsArityMismatch{
			Positioner: ilerr.At(ref),
			Name:       ref.Name,
			Expected:   len(info.Generics),
			Got:        len(ref.Generics),
		})
	}
	if err := env.CheckAllValid(ref, ref.Generics); err != nil {
		return nil, err
	}
	return &typed.Ref{
		Range:    ref.Range,
		Typed:    typed.Typed{T: info.Instantiate(ref.Generics)},
		Name:     ref.Name,
		Generics: ref.Generics,
	}, nil
}

var comparablePrimitives = []string{ast.IntTypeName, ast.FloatTypeName, ast.CharTypeName, ast.StringTypeName}

func (c *checker) binary(env types.Env, expr *ast.Binary) (typed.Expr, error) {
	context := "operand of '" + expr.Op.String() + "'"
	var operand, result ast.TypeExpr
	switch expr.Op.Class() {
	case ast.IntArith:
		operand, result = ast.IntType, ast.IntType
	case ast.FloatArith:
		operand, result = ast.FloatType, ast.FloatType
	case ast.StringConcat:
		operand, result = ast.StringType, ast.StringType
	case ast.Logical:
		operand, result = ast.BoolType, ast.BoolType
	case ast.Ordering, ast.Equality:
		result = ast.BoolType
	}

	left, err := c.expr(env, expr.Left)
	if err != nil {
		return nil, err
	}
	if operand == nil {
		// both sides must have the left side's type
		operand = left.Type()
		if expr.Op.Class() == ast.Ordering && !isComparable(operand) {
			return nil, ilerr.New(ilerr.NewUnexpectedType{
				Positioner: ilerr.At(expr.Left),
				Expected:   ast.Named(strings.Join(comparablePrimitives, " | ")),
				Actual:     operand,
				Context:    context,
			})
		}
	} else if err := expect(expr.Left, operand, left.Type(), context); err != nil {
		return nil, err
	}
	right, err := c.exprOfType(env, expr.Right, operand, context)
	if err != nil {
		return nil, err
	}
	return &typed.Binary{
		Range: expr.Range,
		Typed: typed.Typed{T: result},
		Op:    expr.Op,
		Left:  left,
		Right: right,
	}, nil
}

func isComparable(t ast.TypeExpr) bool {
	ident, ok := t.(*ast.TypeIdent)
	return ok && len(ident.Args) == 0 && slices.Contains(comparablePrimitives, ident.Name)
}

func (c *checker) throw(env types.Env, expr *ast.Throw) (typed.Expr, error) {
	payload, err := c.exprOfType(env, expr.Payload, ast.StringType, "thrown value")
	if err != nil {
		return nil, err
	}
	if err := env.CheckValid(expr, expr.As); err != nil {
		return nil, err
	}
	return &typed.Throw{Range: expr.Range, Typed: typed.Typed{T: expr.As}, Payload: payload}, nil
}

func (c *checker) ifElse(env types.Env, expr *ast.If) (typed.Expr, error) {
	cond, err := c.exprOfType(env, expr.Cond, ast.BoolType, "if condition")
	if err != nil {
		return nil, err
	}
	then, err := c.expr(env, expr.Then)
	if err != nil {
		return nil, err
	}
	els, err := c.exprOfType(env, expr.Else, then.Type(), "else branch")
	if err != nil {
		return nil, err
	}
	return &typed.If{Range: expr.Range, Typed: typed.Typed{T: then.Type()}, Cond: cond, Then: then, Else: els}, nil
}

func (c *checker) funcLit(env types.Env, expr *ast.FuncLit) (typed.Expr, error) {
	bodyEnv := env.EnterScope()
	params := make([]ast.TypeExpr, len(expr.Params))
	for i, param := range expr.Params {
		if err := env.CheckValid(param, param.Type); err != nil {
			return nil, err
		}
		params[i] = param.Type
		if param.Name == ast.Discard {
			continue
		}
		if bodyEnv.IsLocal(param.Name) {
			return nil, shadowed(param, "parameter", param.Name)
		}
		bodyEnv = bodyEnv.Put(param.Name, types.TypeInfo{Type: param.Type})
	}
	body, err := c.expr(bodyEnv, expr.Body)
	if err != nil {
		return nil, err
	}
	fnType := ast.Fn(params, body.Type())
	if err := env.CheckValid(expr, fnType); err != nil {
		return nil, err
	}
	return &typed.FuncLit{Range: expr.Range, Typed: typed.Typed{T: fnType}, Params: expr.Params, Body: body}, nil
}

func (c *checker) tryCatch(env types.Env, expr *ast.TryCatch) (typed.Expr, error) {
	try, err := c.expr(env, expr.Try)
	if err != nil {
		return nil, err
	}
	catchEnv := env
	if expr.Ident != ast.Discard && expr.Ident != "" {
		if env.IsLocal(expr.Ident) {
			return nil, shadowed(expr, "catch identifier", expr.Ident)
		}
		catchEnv = env.Put(expr.Ident, types.TypeInfo{Type: ast.StringType})
	}
	catch, err := c.exprOfType(catchEnv, expr.Catch, try.Type(), "catch branch")
	if err != nil {
		return nil, err
	}
	return &typed.TryCatch{Range: expr.Range, Typed: typed.Typed{T: try.Type()}, Try: try, Ident: expr.Ident, Catch: catch}, nil
}

func (c *checker) let(env types.Env, expr *ast.Let) (typed.Expr, error) {
	if expr.Name != ast.Discard && env.IsLocal(expr.Name) {
		return nil, shadowed(expr, "binding", expr.Name)
	}
	value, err := c.expr(env, expr.Value)
	if err != nil {
		return nil, err
	}
	if expr.TypeAnn != nil {
		if err := c.expectAnnotated(env, expr, expr.TypeAnn, value, "binding '"+expr.Name+"'"); err != nil {
			return nil, err
		}
	}
	bodyEnv := env
	if expr.Name != ast.Discard {
		bodyEnv = env.Put(expr.Name, types.TypeInfo{Type: value.Type()})
	}
	body, err := c.expr(bodyEnv, expr.Body)
	if err != nil {
		return nil, err
	}
	return &typed.Let{Range: expr.Range, Typed: typed.Typed{T: body.Type()}, Name: expr.Name, Value: value, Body: body}, nil
}
