package ast

import (
	"strconv"
)

// Expr is the base for all raw expressions, as produced by the parser.
//
// The following expressions are supported:
//
//	Literal:     literal value of a primitive type
//	Ref:         reference to a value, optionally with explicit generics
//	Construct:   variant constructor, with or without a payload
//	StructLit:   struct constructor
//	StructCopy:  copy of a struct with some fields replaced
//	FieldAccess: selecting a field of a struct
//	Not:         logical negation
//	Binary:      binary operation
//	Throw:       raising an exception
//	If:          conditional
//	Match:       variant-matching switch
//	Apply:       function application, possibly partial
//	FuncLit:     function literal
//	TryCatch:    exception handling
//	Let:         let-binding
type Expr interface {
	Positioner
	// Describe is what to call this expression in error messages
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

type LitKind uint8

const (
	_ LitKind = iota
	LitUnit
	LitInt
	LitFloat
	LitBool
	LitChar
	LitString
)

func (k LitKind) String() string {
	switch k {
	case LitUnit:
		return "unit"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	case LitChar:
		return "char"
	case LitString:
		return "string"
	default:
		return "invalid"
	}
}

// Type is the primitive type every literal of this kind has
func (k LitKind) Type() *TypeIdent {
	switch k {
	case LitUnit:
		return UnitType
	case LitInt:
		return IntType
	case LitFloat:
		return FloatType
	case LitBool:
		return BoolType
	case LitChar:
		return CharType
	case LitString:
		return StringType
	default:
		panic("unreachable: invalid literal kind " + strconv.Itoa(int(k)))
	}
}

type Literal struct {
	Range
	Kind LitKind
	// Syntax is the literal as written in the source
	Syntax string
}

// Ref is a reference to a value by name. Name may be qualified, like Outer.member
type Ref struct {
	Range
	Name     string
	Generics []TypeExpr
}

// Construct builds a value of a variant type. Arg is nil for tags without payload.
type Construct struct {
	Range
	Type     string
	Tag      string
	Generics []TypeExpr
	Arg      Expr
}

type StructLit struct {
	Range
	Type     string
	Generics []TypeExpr
	Fields   []FieldInit
}

// StructCopy is Base with the given Fields replaced
type StructCopy struct {
	Range
	Base   Expr
	Fields []FieldInit
}

type FieldInit struct {
	Range
	Name  string
	Value Expr
}

type FieldAccess struct {
	Range
	Base  Expr
	Field string
}

type Not struct {
	Range
	Operand Expr
}

type Binary struct {
	Range
	Op    BinOp
	Left  Expr
	Right Expr
}

// Throw raises Payload as an exception. As is the type the expression is coerced to.
type Throw struct {
	Range
	Payload Expr
	As      TypeExpr
}

type If struct {
	Range
	Cond Expr
	Then Expr
	Else Expr
}

type Match struct {
	Range
	Scrutinee Expr
	Arms      []MatchArm
}

type MatchArm struct {
	Range
	Pattern Pattern
	Body    Expr
}

type Apply struct {
	Range
	Func Expr
	Args []Expr
}

type FuncLit struct {
	Range
	Params []Param
	Body   Expr
}

// TryCatch evaluates Try, and Catch with the exception message bound to Ident if Try throws
type TryCatch struct {
	Range
	Try   Expr
	Ident string
	Catch Expr
}

// Let binds Name to Value while evaluating Body
type Let struct {
	Range
	Name string
	// TypeAnn is optional
	TypeAnn TypeExpr
	Value   Expr
	Body    Expr
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
