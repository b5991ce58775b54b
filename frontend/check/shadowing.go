package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/hashicorp/go-set/v3"
)

// validateShadowing runs before any type checking and fails on the first name
// declared twice:
//   - constants and functions declared directly in the same class
//   - type names and tag names anywhere in the tree
//   - generic parameters, function parameters and struct fields of a single declaration
func validateShadowing(root *ast.Class) error {
	v := &shadowValidator{
		types: set.From(ast.PrimitiveTypeNames),
		tags:  set.New[string](0),
	}
	return v.class(root)
}

type shadowValidator struct {
	types *set.Set[string]
	tags  *set.Set[string]
}

func shadowed(at ast.Positioner, kind, name string) error {
	return ilerr.New(ilerr.NewShadowedName{
		Positioner: ilerr.At(at),
		Name:       name,
		Kind:       kind,
	})
}

func (v *shadowValidator) class(class *ast.Class) error {
	if class.Decl != nil && !v.types.Insert(class.Name.Name) {
		return shadowed(class.Name, "type", class.Name.Name)
	}
	if err := uniqueNames(class.Name, "generic parameter", class.Name.Generics); err != nil {
		return err
	}

	switch decl := class.Decl.(type) {
	case *ast.VariantDecl:
		for _, tag := range decl.Tags {
			if !v.tags.Insert(tag.Name) {
				return shadowed(tag, "tag", tag.Name)
			}
		}
	case *ast.StructDecl:
		fields := set.New[string](len(decl.Fields))
		for _, field := range decl.Fields {
			if !fields.Insert(field.Name) {
				return shadowed(field, "field", field.Name)
			}
		}
	}

	members := set.New[string](len(class.Constants))
	for _, constant := range class.Constants {
		if !members.Insert(constant.Name) {
			return shadowed(constant, "member", constant.Name)
		}
	}
	for _, group := range class.Functions {
		for _, f := range group.Functions {
			if !members.Insert(f.Name) {
				return shadowed(f, "member", f.Name)
			}
			if err := uniqueNames(f, "generic parameter", f.Generics); err != nil {
				return err
			}
			params := make([]string, 0, len(f.Params))
			for _, param := range f.Params {
				if param.Name != ast.Discard {
					params = append(params, param.Name)
				}
			}
			if err := uniqueNames(f, "parameter", params); err != nil {
				return err
			}
		}
	}

	for _, nested := range class.Classes {
		if err := v.class(nested); err != nil {
			return err
		}
	}
	return nil
}

func uniqueNames(at ast.Positioner, kind string, names []string) error {
	seen := set.New[string](len(names))
	for _, name := range names {
		if !seen.Insert(name) {
			return shadowed(at, kind, name)
		}
	}
	return nil
}
