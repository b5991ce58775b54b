// Package typed holds the decorated tree: the same shape as the raw tree in
// package ast, where every expression and pattern carries its resolved type.
package typed

import (
	"github.com/cottand/ilec/frontend/ast"
)

// Expr is a checked expression
type Expr interface {
	ast.Positioner
	Type() ast.TypeExpr
	Describe() string
	exprNode()
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Ref)(nil)
	_ Expr = (*Construct)(nil)
	_ Expr = (*StructLit)(nil)
	_ Expr = (*StructCopy)(nil)
	_ Expr = (*FieldAccess)(nil)
	_ Expr = (*Not)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Throw)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*FuncLit)(nil)
	_ Expr = (*TryCatch)(nil)
	_ Expr = (*Let)(nil)
)

// Typed is embedded in every decorated node
type Typed struct {
	T ast.TypeExpr
}

func (t Typed) Type() ast.TypeExpr { return t.T }

type Literal struct {
	ast.Range
	Typed
	Kind   ast.LitKind
	Syntax string
}

type Ref struct {
	ast.Range
	Typed
	Name string
	// Generics are the types the referenced value was instantiated with,
	// whether written explicitly or inferred at a call site
	Generics []ast.TypeExpr
}

type Construct struct {
	ast.Range
	Typed
	TypeName string
	Tag      string
	// Arg is nil for tags without payload
	Arg Expr
}

type StructLit struct {
	ast.Range
	Typed
	TypeName string
	Fields   []FieldInit
}

type StructCopy struct {
	ast.Range
	Typed
	Base   Expr
	Fields []FieldInit
}

type FieldInit struct {
	ast.Range
	Name  string
	Value Expr
}

type FieldAccess struct {
	ast.Range
	Typed
	Base  Expr
	Field string
}

type Not struct {
	ast.Range
	Typed
	Operand Expr
}

type Binary struct {
	ast.Range
	Typed
	Op    ast.BinOp
	Left  Expr
	Right Expr
}

type Throw struct {
	ast.Range
	Typed
	Payload Expr
}

type If struct {
	ast.Range
	Typed
	Cond Expr
	Then Expr
	Else Expr
}

type Match struct {
	ast.Range
	Typed
	Scrutinee Expr
	Arms      []MatchArm
}

type MatchArm struct {
	ast.Range
	Pattern Pattern
	Body    Expr
}

type Apply struct {
	ast.Range
	Typed
	Func Expr
	Args []Expr
}

type FuncLit struct {
	ast.Range
	Typed
	Params []ast.Param
	Body   Expr
}

type TryCatch struct {
	ast.Range
	Typed
	Try   Expr
	Ident string
	Catch Expr
}

type Let struct {
	ast.Range
	Typed
	Name  string
	Value Expr
	Body  Expr
}

func (*Literal) exprNode()     {}
func (*Ref) exprNode()         {}
func (*Construct) exprNode()   {}
func (*StructLit) exprNode()   {}
func (*StructCopy) exprNode()  {}
func (*FieldAccess) exprNode() {}
func (*Not) exprNode()         {}
func (*Binary) exprNode()      {}
func (*Throw) exprNode()       {}
func (*If) exprNode()          {}
func (*Match) exprNode()       {}
func (*Apply) exprNode()       {}
func (*FuncLit) exprNode()     {}
func (*TryCatch) exprNode()    {}
func (*Let) exprNode()         {}

func (e *Literal) Describe() string   { return e.Kind.String() + " literal" }
func (*Ref) Describe() string         { return "reference" }
func (*Construct) Describe() string   { return "variant constructor" }
func (*StructLit) Describe() string   { return "struct constructor" }
func (*StructCopy) Describe() string  { return "struct copy" }
func (*FieldAccess) Describe() string { return "field access" }
func (*Not) Describe() string         { return "logical not" }
func (e *Binary) Describe() string    { return "'" + e.Op.String() + "' operation" }
func (*Throw) Describe() string       { return "throw" }
func (*If) Describe() string          { return "if expression" }
func (*Match) Describe() string       { return "match" }
func (*Apply) Describe() string       { return "function application" }
func (*FuncLit) Describe() string     { return "function literal" }
func (*TryCatch) Describe() string    { return "try/catch" }
func (*Let) Describe() string         { return "let binding" }
