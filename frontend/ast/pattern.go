package ast

// Pattern is the left-hand side of a MatchArm.
//
// The set of implementations is closed:
//
//	TagPattern:      a single tag, optionally binding its payload
//	BindPattern:     catch-all which binds the whole scrutinee
//	WildcardPattern: catch-all without binding
type Pattern interface {
	Positioner
	Describe() string
	patternNode()
}

var (
	_ Pattern = (*TagPattern)(nil)
	_ Pattern = (*BindPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
)

type TagPattern struct {
	Range
	Tag string
	// Binding is empty when the pattern binds nothing
	Binding string
}

type BindPattern struct {
	Range
	Name string
}

type WildcardPattern struct {
	Range
}

func (*TagPattern) patternNode()      {}
func (*BindPattern) patternNode()     {}
func (*WildcardPattern) patternNode() {}

func (p *TagPattern) Describe() string    { return "pattern '" + p.Tag + "'" }
func (p *BindPattern) Describe() string   { return "binding pattern '" + p.Name + "'" }
func (*WildcardPattern) Describe() string { return "wildcard pattern" }
