package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/cottand/ilec/frontend/types"
	"github.com/cottand/ilec/util"
	"strconv"
)

func (c *checker) apply(env types.Env, expr *ast.Apply) (typed.Expr, error) {
	// a generic function without explicit generics is resolved after its arguments
	var generic *ast.Ref
	var genericInfo types.TypeInfo
	if ref, ok := expr.Func.(*ast.Ref); ok && len(ref.Generics) == 0 {
		if info, ok := env.Get(ref.Name); ok && info.IsGeneric() {
			generic, genericInfo = ref, info
		}
	}

	var fn typed.Expr
	if generic == nil {
		checked, err := c.expr(env, expr.Func)
		if err != nil {
			return nil, err
		}
		fn = checked
	}

	args := make([]typed.Expr, len(expr.Args))
	for i, arg := range expr.Args {
		checked, err := c.expr(env, arg)
		if err != nil {
			return nil, err
		}
		args[i] = checked
	}

	if generic != nil {
		inferred, err := c.inferredRef(generic, genericInfo, args)
		if err != nil {
			return nil, err
		}
		fn = inferred
	}

	fnType, err := callable(expr.Func, fn.Type(), len(args))
	if err != nil {
		return nil, err
	}
	for i, arg := range args {
		if err := expect(expr.Args[i], fnType.Params[i], arg.Type(), "argument "+strconv.Itoa(i+1)+" of "+fn.Describe()); err != nil {
			return nil, err
		}
	}

	var result ast.TypeExpr = fnType.Return
	if len(args) < len(fnType.Params) {
		result = ast.Fn(fnType.Params[len(args):], fnType.Return)
	}
	return &typed.Apply{Range: expr.Range, Typed: typed.Typed{T: result}, Func: fn, Args: args}, nil
}

// inferredRef resolves a reference to a generic function called without explicit
// generics, inferring them from the types of the supplied arguments
func (c *checker) inferredRef(ref *ast.Ref, info types.TypeInfo, args []typed.Expr) (*typed.Ref, error) {
	fnType, err := callable(ref, info.Type, len(args))
	if err != nil {
		return nil, err
	}
	generics, err := types.Unify(ref, ref.Name, info.Generics, util.Zip(fnType.Params[:len(args)], argTypes(args))...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("inferred generics at call site", "name", ref.Name, "generics", generics)
	return &typed.Ref{
		Range:    ref.Range,
		Typed:    typed.Typed{T: info.Instantiate(generics)},
		Name:     ref.Name,
		Generics: generics,
	}, nil
}

// callable requires t to be a function type taking at least argc arguments
func callable(at ast.Positioner, t ast.TypeExpr, argc int) (*ast.FuncType, error) {
	fnType, ok := t.(*ast.FuncType)
	if !ok {
		return nil, ilerr.New(ilerr.NewNotAFunction{Positioner: ilerr.At(at), Type: t})
	}
	if argc > len(fnType.Params) {
		return nil, ilerr.New(ilerr.NewTooManyArguments{
			Positioner: ilerr.At(at),
			Expected:   len(fnType.Params),
			Got:        argc,
		})
	}
	return fnType, nil
}

func argTypes(args []typed.Expr) []ast.TypeExpr {
	ts := make([]ast.TypeExpr, len(args))
	for i, arg := range args {
		ts[i] = arg.Type()
	}
	return ts
}
