package ast

import "iter"

// Class is a container: a type declaration together with the constants,
// functions and nested classes declared inside it.
//
// Members are checked in the order they appear here: the type declaration,
// then Constants in order, then all Functions at once, then nested Classes.
type Class struct {
	Range
	Name TypeIdentifier
	// Decl may be nil, in which case the class is only a namespace
	Decl      TypeDeclaration
	Constants []Constant
	Functions []FuncGroup
	Classes   []*Class
}

// Constant is a named value declared in a Class
type Constant struct {
	Range
	Name   string
	Public bool
	// TypeAnn is optional
	TypeAnn TypeExpr
	Value   Expr
}

// FuncGroup is a set of mutually recursive functions
type FuncGroup struct {
	Range
	Functions []Function
}

// Function is a named function declared in a Class
type Function struct {
	Range
	Name     string
	Public   bool
	Generics []string
	Params   []Param
	Return   TypeExpr
	Body     Expr
}

// Param is a function parameter. Its type is always written down.
type Param struct {
	Range
	Name string
	Type TypeExpr
}

// Signature is the type of f, still abstract over f.Generics
func (f *Function) Signature() *FuncType {
	params := make([]TypeExpr, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return Fn(params, f.Return)
}

// Members yields the name of every constant and function declared directly in c,
// together with whether it is public
func (c *Class) Members() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, constant := range c.Constants {
			if !yield(constant.Name, constant.Public) {
				return
			}
		}
		for _, group := range c.Functions {
			for _, f := range group.Functions {
				if !yield(f.Name, f.Public) {
					return
				}
			}
		}
	}
}
