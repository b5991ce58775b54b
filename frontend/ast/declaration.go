package ast

// TypeIdentifier is the name of a declared type together with its generic parameters.
// The number of Generics is the arity every use site must respect.
type TypeIdentifier struct {
	Range
	Name     string
	Generics []string
}

// TypeDeclaration is the body of a declared type.
//
// The set of implementations is closed: VariantDecl and StructDecl
type TypeDeclaration interface {
	Positioner
	Describe() string
	typeDeclaration()
}

var (
	_ TypeDeclaration = (*VariantDecl)(nil)
	_ TypeDeclaration = (*StructDecl)(nil)
)

// VariantDecl declares a type whose values are one of several tags,
// each optionally carrying a payload
type VariantDecl struct {
	Range
	Tags []TagDecl
}

type TagDecl struct {
	Range
	Name string
	// Payload is nil for tags which carry no value
	Payload TypeExpr
}

// StructDecl declares a type whose values carry a fixed set of named fields.
// The order of Fields is the order they were declared in.
type StructDecl struct {
	Range
	Fields []FieldDecl
}

type FieldDecl struct {
	Range
	Name string
	Type TypeExpr
}

func (*VariantDecl) typeDeclaration() {}
func (*StructDecl) typeDeclaration()  {}

func (*VariantDecl) Describe() string { return "variant" }
func (*StructDecl) Describe() string  { return "struct" }

// Tag returns the declaration of the tag called name
func (d *VariantDecl) Tag(name string) (TagDecl, bool) {
	for _, tag := range d.Tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return TagDecl{}, false
}

// Field returns the declaration of the field called name
func (d *StructDecl) Field(name string) (FieldDecl, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDecl{}, false
}
