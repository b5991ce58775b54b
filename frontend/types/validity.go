package types

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"reflect"
)

// CheckValid fails with ilerr.UndefinedTypeIdentifier if t mentions a type that
// is not declared in e, or uses a declared type with the wrong number of generic arguments
func (e Env) CheckValid(at ast.Positioner, t ast.TypeExpr) error {
	switch t := t.(type) {
	case *ast.TypeIdent:
		generics, ok := e.declaredTypes.Get(t.Name)
		if !ok {
			return ilerr.New(ilerr.NewUndefinedTypeIdentifier{
				Positioner: ilerr.At(at),
				Name:       t.Name,
				Arity:      len(t.Args),
				Expected:   -1,
			})
		}
		if len(generics) != len(t.Args) {
			return ilerr.New(ilerr.NewUndefinedTypeIdentifier{
				Positioner: ilerr.At(at),
				Name:       t.Name,
				Arity:      len(t.Args),
				Expected:   len(generics),
			})
		}
		for _, arg := range t.Args {
			if err := e.CheckValid(at, arg); err != nil {
				return err
			}
		}
		return nil
	case *ast.FuncType:
		for _, param := range t.Params {
			if err := e.CheckValid(at, param); err != nil {
				return err
			}
		}
		return e.CheckValid(at, t.Return)
	default:
		panic("unreachable: unknown type expression " + reflect.TypeOf(t).String())
	}
}

// CheckAllValid calls CheckValid on each of ts, stopping at the first failure
func (e Env) CheckAllValid(at ast.Positioner, ts []ast.TypeExpr) error {
	for _, t := range ts {
		if err := e.CheckValid(at, t); err != nil {
			return err
		}
	}
	return nil
}
