package typed

import (
	"github.com/cottand/ilec/frontend/ast"
)

// Pattern is a checked pattern. Its Type is the type of the scrutinee it matches.
type Pattern interface {
	ast.Positioner
	Type() ast.TypeExpr
	patternNode()
}

var (
	_ Pattern = (*TagPattern)(nil)
	_ Pattern = (*BindPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
)

type TagPattern struct {
	ast.Range
	Typed
	Tag     string
	Binding string
	// Payload is the type Binding is bound to, nil for tags without payload
	Payload ast.TypeExpr
}

type BindPattern struct {
	ast.Range
	Typed
	Name string
}

type WildcardPattern struct {
	ast.Range
	Typed
}

func (*TagPattern) patternNode()      {}
func (*BindPattern) patternNode()     {}
func (*WildcardPattern) patternNode() {}
