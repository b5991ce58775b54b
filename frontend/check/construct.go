package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/cottand/ilec/frontend/types"
	"github.com/cottand/ilec/util"
	"github.com/hashicorp/go-set/v3"
)

// variant looks up the variant type called name
func variant(env types.Env, at ast.Positioner, name string) (types.TypeDefinition, *ast.VariantDecl, error) {
	def, ok := env.TypeDefinition(name)
	if !ok {
		return def, nil, ilerr.New(ilerr.NewVariantNotFound{Positioner: ilerr.At(at), Type: name})
	}
	decl, ok := def.Decl.(*ast.VariantDecl)
	if !ok {
		return def, nil, ilerr.New(ilerr.NewVariantNotFound{Positioner: ilerr.At(at), Type: name})
	}
	return def, decl, nil
}

// structDef looks up the struct type called name
func structDef(env types.Env, at ast.Positioner, name string) (types.TypeDefinition, *ast.StructDecl, error) {
	def, ok := env.TypeDefinition(name)
	if !ok {
		return def, nil, ilerr.New(ilerr.NewStructNotFound{Positioner: ilerr.At(at), Name: name})
	}
	decl, ok := def.Decl.(*ast.StructDecl)
	if !ok {
		return def, nil, ilerr.New(ilerr.NewStructNotFound{Positioner: ilerr.At(at), Name: name})
	}
	return def, decl, nil
}

// structOf returns the struct declaration of t, which must be a struct type
func structOf(env types.Env, at ast.Positioner, t ast.TypeExpr) (*ast.TypeIdent, types.TypeDefinition, *ast.StructDecl, error) {
	notFound := ilerr.New(ilerr.NewStructNotFound{Positioner: ilerr.At(at), Type: t})
	ident, ok := t.(*ast.TypeIdent)
	if !ok {
		return nil, types.TypeDefinition{}, nil, notFound
	}
	def, ok := env.TypeDefinition(ident.Name)
	if !ok {
		return nil, def, nil, notFound
	}
	decl, ok := def.Decl.(*ast.StructDecl)
	if !ok {
		return nil, def, nil, notFound
	}
	return ident, def, decl, nil
}

// explicitGenerics checks generics written at a use site of the type called name
func explicitGenerics(env types.Env, at ast.Positioner, name string, def types.TypeDefinition, generics []ast.TypeExpr) error {
	if len(generics) != len(def.Generics) {
		return ilerr.New(ilerr.NewGenericsArityMismatch{
			Positioner: ilerr.At(at),
			Name:       name,
			Expected:   len(def.Generics),
			Got:        len(generics),
		})
	}
	return env.CheckAllValid(at, generics)
}

func (c *checker) construct(env types.Env, expr *ast.Construct) (typed.Expr, error) {
	def, decl, err := variant(env, expr, expr.Type)
	if err != nil {
		return nil, err
	}
	tag, ok := decl.Tag(expr.Tag)
	if !ok {
		return nil, ilerr.New(ilerr.NewVariantNotFound{Positioner: ilerr.At(expr), Type: expr.Type, Tag: expr.Tag})
	}
	if (tag.Payload == nil) != (expr.Arg == nil) {
		return nil, ilerr.New(ilerr.NewPayloadMismatch{
			Positioner: ilerr.At(expr),
			Type:       expr.Type,
			Tag:        expr.Tag,
			HasPayload: tag.Payload != nil,
		})
	}
	res := &typed.Construct{Range: expr.Range, TypeName: expr.Type, Tag: expr.Tag}

	if expr.Arg == nil {
		if err := explicitGenerics(env, expr, expr.Type, def, expr.Generics); err != nil {
			return nil, err
		}
		res.T = ast.Named(expr.Type, expr.Generics...)
		return res, nil
	}

	arg, err := c.expr(env, expr.Arg)
	if err != nil {
		return nil, err
	}
	res.Arg = arg
	generics := expr.Generics
	switch {
	case len(expr.Generics) > 0 || len(def.Generics) == 0:
		if err := explicitGenerics(env, expr, expr.Type, def, expr.Generics); err != nil {
			return nil, err
		}
		payload := tag.Payload.SubstituteGenerics(types.Bind(def.Generics, generics))
		if err := expect(expr.Arg, payload, arg.Type(), "payload of '"+expr.Type+"."+expr.Tag+"'"); err != nil {
			return nil, err
		}
	default:
		generics, err = types.UnifyOne(expr, expr.Type, def.Generics, tag.Payload, arg.Type())
		if err != nil {
			return nil, err
		}
	}
	res.T = ast.Named(expr.Type, generics...)
	return res, nil
}

// fieldInits checks that each of inits names a field of decl, once.
// With requireAll, every field of decl must be among inits.
func (c *checker) fieldInits(env types.Env, at ast.Positioner, typeName string, decl *ast.StructDecl, inits []ast.FieldInit, requireAll bool) ([]typed.FieldInit, error) {
	seen := set.New[string](len(inits))
	res := make([]typed.FieldInit, 0, len(inits))
	for _, init := range inits {
		if _, ok := decl.Field(init.Name); !ok {
			return nil, ilerr.New(ilerr.NewNoSuchMember{Positioner: ilerr.At(init), Type: typeName, Member: init.Name})
		}
		if !seen.Insert(init.Name) {
			return nil, shadowed(init, "field", init.Name)
		}
		value, err := c.expr(env, init.Value)
		if err != nil {
			return nil, err
		}
		res = append(res, typed.FieldInit{Range: init.Range, Name: init.Name, Value: value})
	}
	if requireAll {
		for _, field := range decl.Fields {
			if !seen.Contains(field.Name) {
				return nil, ilerr.New(ilerr.NewMissingMember{Positioner: ilerr.At(at), Type: typeName, Member: field.Name})
			}
		}
	}
	return res, nil
}

func (c *checker) structLit(env types.Env, expr *ast.StructLit) (typed.Expr, error) {
	def, decl, err := structDef(env, expr, expr.Type)
	if err != nil {
		return nil, err
	}
	fields, err := c.fieldInits(env, expr, expr.Type, decl, expr.Fields, true)
	if err != nil {
		return nil, err
	}

	generics := expr.Generics
	if len(expr.Generics) > 0 || len(def.Generics) == 0 {
		if err := explicitGenerics(env, expr, expr.Type, def, expr.Generics); err != nil {
			return nil, err
		}
		subst := types.Bind(def.Generics, generics)
		for _, field := range fields {
			declared, _ := decl.Field(field.Name)
			want := declared.Type.SubstituteGenerics(subst)
			if err := expect(field.Value, want, field.Value.Type(), "field '"+field.Name+"' of '"+expr.Type+"'"); err != nil {
				return nil, err
			}
		}
	} else {
		pairs := make([]types.UsePair, 0, len(fields))
		for _, field := range fields {
			declared, _ := decl.Field(field.Name)
			pairs = append(pairs, util.NewPair(declared.Type, field.Value.Type()))
		}
		generics, err = types.Unify(expr, expr.Type, def.Generics, pairs...)
		if err != nil {
			return nil, err
		}
	}
	return &typed.StructLit{
		Range:    expr.Range,
		Typed:    typed.Typed{T: ast.Named(expr.Type, generics...)},
		TypeName: expr.Type,
		Fields:   fields,
	}, nil
}

func (c *checker) structCopy(env types.Env, expr *ast.StructCopy) (typed.Expr, error) {
	base, err := c.expr(env, expr.Base)
	if err != nil {
		return nil, err
	}
	ident, def, decl, err := structOf(env, expr.Base, base.Type())
	if err != nil {
		return nil, err
	}
	fields, err := c.fieldInits(env, expr, ident.Name, decl, expr.Fields, false)
	if err != nil {
		return nil, err
	}
	subst := types.Bind(def.Generics, ident.Args)
	for _, field := range fields {
		declared, _ := decl.Field(field.Name)
		want := declared.Type.SubstituteGenerics(subst)
		if err := expect(field.Value, want, field.Value.Type(), "field '"+field.Name+"' of '"+ident.Name+"'"); err != nil {
			return nil, err
		}
	}
	return &typed.StructCopy{Range: expr.Range, Typed: typed.Typed{T: base.Type()}, Base: base, Fields: fields}, nil
}

func (c *checker) fieldAccess(env types.Env, expr *ast.FieldAccess) (typed.Expr, error) {
	base, err := c.expr(env, expr.Base)
	if err != nil {
		return nil, err
	}
	ident, def, decl, err := structOf(env, expr.Base, base.Type())
	if err != nil {
		return nil, err
	}
	field, ok := decl.Field(expr.Field)
	if !ok {
		return nil, ilerr.New(ilerr.NewNoSuchMember{Positioner: ilerr.At(expr), Type: ident.Name, Member: expr.Field})
	}
	t := field.Type.SubstituteGenerics(types.Bind(def.Generics, ident.Args))
	return &typed.FieldAccess{Range: expr.Range, Typed: typed.Typed{T: t}, Base: base, Field: expr.Field}, nil
}
