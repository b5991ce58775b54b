package ast

import (
	"reflect"
	"strings"
)

// TypeExpr is a type as written in the source or as resolved by the checker.
//
// The set of implementations is closed:
//
//	TypeIdent: a named type applied to generic arguments, like Int or Option<T>
//	FuncType:  a function from parameter types to a return type
//
// TypeExpr values are never mutated, operations return new values.
type TypeExpr interface {
	// SubstituteGenerics replaces every argument-less TypeIdent whose name is a key of subst
	SubstituteGenerics(subst map[string]TypeExpr) TypeExpr
	// ContainsIdentifier reports whether a TypeIdent called name appears anywhere in the type
	ContainsIdentifier(name string) bool
	String() string

	typeExpr()
}

var (
	_ TypeExpr = (*TypeIdent)(nil)
	_ TypeExpr = (*FuncType)(nil)
)

type TypeIdent struct {
	Name string
	Args []TypeExpr
}

type FuncType struct {
	Params []TypeExpr
	Return TypeExpr
}

func (*TypeIdent) typeExpr() {}
func (*FuncType) typeExpr()  {}

// Named is a shorthand for a TypeIdent
func Named(name string, args ...TypeExpr) *TypeIdent {
	return &TypeIdent{Name: name, Args: args}
}

// Fn is a shorthand for a FuncType
func Fn(params []TypeExpr, ret TypeExpr) *FuncType {
	return &FuncType{Params: params, Return: ret}
}

func (t *TypeIdent) SubstituteGenerics(subst map[string]TypeExpr) TypeExpr {
	if len(t.Args) == 0 {
		if replacement, ok := subst[t.Name]; ok {
			return replacement
		}
		return t
	}
	return &TypeIdent{Name: t.Name, Args: substituteAll(t.Args, subst)}
}

func (t *FuncType) SubstituteGenerics(subst map[string]TypeExpr) TypeExpr {
	return &FuncType{
		Params: substituteAll(t.Params, subst),
		Return: t.Return.SubstituteGenerics(subst),
	}
}

func substituteAll(ts []TypeExpr, subst map[string]TypeExpr) []TypeExpr {
	if ts == nil {
		return nil
	}
	res := make([]TypeExpr, len(ts))
	for i, t := range ts {
		res[i] = t.SubstituteGenerics(subst)
	}
	return res
}

func (t *TypeIdent) ContainsIdentifier(name string) bool {
	if t.Name == name {
		return true
	}
	for _, arg := range t.Args {
		if arg.ContainsIdentifier(name) {
			return true
		}
	}
	return false
}

func (t *FuncType) ContainsIdentifier(name string) bool {
	for _, param := range t.Params {
		if param.ContainsIdentifier(name) {
			return true
		}
	}
	return t.Return.ContainsIdentifier(name)
}

func (t *TypeIdent) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	sb := strings.Builder{}
	sb.WriteString(t.Name)
	sb.WriteString("<")
	sb.WriteString(joinTypes(t.Args))
	sb.WriteString(">")
	return sb.String()
}

func (t *FuncType) String() string {
	ret := t.Return.String()
	if len(t.Params) == 1 {
		if _, isFn := t.Params[0].(*FuncType); !isFn {
			return t.Params[0].String() + " -> " + ret
		}
	}
	return "(" + joinTypes(t.Params) + ") -> " + ret
}

func joinTypes(ts []TypeExpr) string {
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = t.String()
	}
	return strings.Join(strs, ", ")
}

// TypeEqual compares two types by shape
func TypeEqual(a, b TypeExpr) bool {
	switch a := a.(type) {
	case *TypeIdent:
		b, ok := b.(*TypeIdent)
		return ok && a.Name == b.Name && TypesEqual(a.Args, b.Args)
	case *FuncType:
		b, ok := b.(*FuncType)
		return ok && TypesEqual(a.Params, b.Params) && TypeEqual(a.Return, b.Return)
	case nil:
		return b == nil
	default:
		panic("unreachable: unknown type expression " + reflect.TypeOf(a).String())
	}
}

// TypesEqual compares two lists of types pairwise with TypeEqual
func TypesEqual(a, b []TypeExpr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !TypeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
