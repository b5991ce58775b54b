package typed

import (
	"github.com/cottand/ilec/frontend/ast"
)

// Class is a checked ast.Class
type Class struct {
	ast.Range
	Name      ast.TypeIdentifier
	Decl      ast.TypeDeclaration
	Constants []Constant
	Functions []FuncGroup
	Classes   []*Class
}

type Constant struct {
	ast.Range
	Name   string
	Public bool
	Value  Expr
}

type FuncGroup struct {
	ast.Range
	Functions []Function
}

type Function struct {
	ast.Range
	Name     string
	Public   bool
	Generics []string
	Params   []ast.Param
	// Type is the declared signature, abstract over Generics
	Type *ast.FuncType
	Body Expr
}
