package types

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/internal/log"
	"github.com/cottand/ilec/util"
	"reflect"
)

var unifyLogger = log.DefaultLogger.With("section", "unify")

// UsePair is a declared type, written in terms of some generic parameters,
// and the type found for it at a use site
type UsePair = util.Pair[ast.TypeExpr, ast.TypeExpr]

// Unify infers one concrete type for each of generics by reconciling every
// template (Fst) with its actual use-site type (Snd).
//
// The result is in the order of generics. Unify fails with
//   - ilerr.GenericsShapeMismatch if a template and its actual type cannot be reconciled,
//     or if a generic parameter would need two different types
//   - ilerr.GenericsIncomplete if some generic parameter is not mentioned by any template
//
// name is what the generics belong to, for error messages.
func Unify(at ast.Positioner, name string, generics []string, pairs ...UsePair) ([]ast.TypeExpr, error) {
	u := &unifier{
		at:      at,
		indices: make(map[string]int, len(generics)),
		known:   make([]ast.TypeExpr, len(generics)),
	}
	for i, generic := range generics {
		u.indices[generic] = i
	}
	for _, pair := range pairs {
		if _, err := u.unify(pair.Fst, pair.Snd); err != nil {
			return nil, err
		}
	}
	var missing []string
	for i, known := range u.known {
		if known == nil {
			missing = append(missing, generics[i])
		}
	}
	if len(missing) > 0 {
		return nil, ilerr.New(ilerr.NewGenericsIncomplete{
			Positioner: ilerr.At(at),
			Name:       name,
			Missing:    missing,
		})
	}
	unifyLogger.Debug("unified generics", "name", name, "generics", generics, "inferred", u.known)
	return u.known, nil
}

// UnifyOne is Unify for a single template and actual type
func UnifyOne(at ast.Positioner, name string, generics []string, template, actual ast.TypeExpr) ([]ast.TypeExpr, error) {
	return Unify(at, name, generics, util.NewPair(template, actual))
}

type unifier struct {
	at      ast.Positioner
	indices map[string]int
	// known holds the type bound to each generic so far, nil when unbound
	known []ast.TypeExpr
}

func (u *unifier) unify(template, actual ast.TypeExpr) (ast.TypeExpr, error) {
	switch tmpl := template.(type) {
	case *ast.TypeIdent:
		if i, isGeneric := u.indices[tmpl.Name]; isGeneric && len(tmpl.Args) == 0 {
			return u.bind(i, tmpl, actual)
		}
		act, ok := actual.(*ast.TypeIdent)
		if !ok {
			return nil, u.mismatch(template, actual, "expected a named type")
		}
		if act.Name != tmpl.Name {
			return nil, u.mismatch(template, actual, "type names differ")
		}
		if len(act.Args) != len(tmpl.Args) {
			return nil, u.mismatch(template, actual, "number of generic arguments differs")
		}
		args := make([]ast.TypeExpr, len(tmpl.Args))
		for i := range tmpl.Args {
			arg, err := u.unify(tmpl.Args[i], act.Args[i])
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &ast.TypeIdent{Name: tmpl.Name, Args: args}, nil

	case *ast.FuncType:
		act, ok := actual.(*ast.FuncType)
		if !ok {
			return nil, u.mismatch(template, actual, "expected a function")
		}
		if len(act.Params) != len(tmpl.Params) {
			return nil, u.mismatch(template, actual, "number of parameters differs")
		}
		params := make([]ast.TypeExpr, len(tmpl.Params))
		for i := range tmpl.Params {
			param, err := u.unify(tmpl.Params[i], act.Params[i])
			if err != nil {
				return nil, err
			}
			params[i] = param
		}
		ret, err := u.unify(tmpl.Return, act.Return)
		if err != nil {
			return nil, err
		}
		return ast.Fn(params, ret), nil

	default:
		panic("unreachable: unknown type expression " + reflect.TypeOf(template).String())
	}
}

// bind records actual as the type of the generic at index i. A generic that is
// already bound must be bound to the same type again.
func (u *unifier) bind(i int, template *ast.TypeIdent, actual ast.TypeExpr) (ast.TypeExpr, error) {
	if known := u.known[i]; known != nil && !ast.TypeEqual(known, actual) {
		return nil, u.mismatch(template, actual, "'"+template.Name+"' is already inferred as '"+known.String()+"'")
	}
	u.known[i] = actual
	return actual, nil
}

func (u *unifier) mismatch(template, actual ast.TypeExpr, reason string) error {
	return ilerr.New(ilerr.NewGenericsShapeMismatch{
		Positioner: ilerr.At(u.at),
		Template:   template,
		Actual:     actual,
		Reason:     reason,
	})
}
