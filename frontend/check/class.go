package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/cottand/ilec/frontend/types"
	"reflect"
)

// class checks a container and everything nested in it, in this order:
//  1. enter its scope, registering its own type
//  2. validate its type declaration
//  3. constants, each one visible to the next
//  4. all function signatures at once, then every function body
//  5. nested classes, in declaration order
//  6. exit its scope
func (c *checker) class(env types.Env, class *ast.Class) (*typed.Class, types.Env, error) {
	logger := c.logger.With("class", class.Name.Name)
	res := &typed.Class{
		Range: class.Range,
		Name:  class.Name,
		Decl:  class.Decl,
	}

	env = env.EnterContainer(class)
	logger.Debug("entered class")

	if err := c.typeDeclaration(env, class); err != nil {
		return nil, env, err
	}
	logger.Debug("type declaration checked")

	for _, constant := range class.Constants {
		checked, info, err := c.constant(env, constant)
		if err != nil {
			return nil, env, err
		}
		env = env.Put(constant.Name, info)
		res.Constants = append(res.Constants, checked)
	}
	logger.Debug("constants checked", "count", len(class.Constants))

	// every signature goes in before any body is checked, so that
	// functions can call each other regardless of order
	for _, group := range class.Functions {
		for _, f := range group.Functions {
			info, err := c.signature(env, &f)
			if err != nil {
				return nil, env, err
			}
			env = env.Put(f.Name, info)
		}
	}
	for _, group := range class.Functions {
		checkedGroup := typed.FuncGroup{Range: group.Range}
		for _, f := range group.Functions {
			checked, err := c.function(env, &f)
			if err != nil {
				return nil, env, err
			}
			checkedGroup.Functions = append(checkedGroup.Functions, checked)
		}
		res.Functions = append(res.Functions, checkedGroup)
	}
	logger.Debug("functions checked", "groups", len(class.Functions))

	for _, nested := range class.Classes {
		checked, nestedEnv, err := c.class(env, nested)
		if err != nil {
			return nil, env, err
		}
		env = nestedEnv
		res.Classes = append(res.Classes, checked)
	}

	env = env.ExitContainer(class)
	logger.Debug("exited class")
	return res, env, nil
}

// typeDeclaration checks every payload and field type of the class's declaration,
// where the class's generics may be used
func (c *checker) typeDeclaration(env types.Env, class *ast.Class) error {
	declEnv := env.WithGenerics(class.Name.Generics)
	switch decl := class.Decl.(type) {
	case nil:
		return nil
	case *ast.VariantDecl:
		for _, tag := range decl.Tags {
			if tag.Payload == nil {
				continue
			}
			if err := declEnv.CheckValid(tag, tag.Payload); err != nil {
				return err
			}
		}
		return nil
	case *ast.StructDecl:
		for _, field := range decl.Fields {
			if err := declEnv.CheckValid(field, field.Type); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("unreachable: unknown type declaration " + reflect.TypeOf(decl).String())
	}
}

// constant checks the initializer in a scope of its own, so lets in it may hide members
func (c *checker) constant(env types.Env, constant ast.Constant) (typed.Constant, types.TypeInfo, error) {
	value, err := c.expr(env.EnterScope(), constant.Value)
	if err != nil {
		return typed.Constant{}, types.TypeInfo{}, err
	}
	if constant.TypeAnn != nil {
		if err := c.expectAnnotated(env, constant, constant.TypeAnn, value, "constant '"+constant.Name+"'"); err != nil {
			return typed.Constant{}, types.TypeInfo{}, err
		}
	}
	checked := typed.Constant{
		Range:  constant.Range,
		Name:   constant.Name,
		Public: constant.Public,
		Value:  value,
	}
	return checked, types.TypeInfo{Type: value.Type()}, nil
}

// signature validates the declared types of f, which may use f's generics
func (c *checker) signature(env types.Env, f *ast.Function) (types.TypeInfo, error) {
	sig := f.Signature()
	if err := env.WithGenerics(f.Generics).CheckValid(f, sig); err != nil {
		return types.TypeInfo{}, err
	}
	return types.TypeInfo{Type: sig, Generics: f.Generics}, nil
}

func (c *checker) function(env types.Env, f *ast.Function) (typed.Function, error) {
	bodyEnv := env.WithGenerics(f.Generics).EnterScope()
	for _, param := range f.Params {
		if param.Name == ast.Discard {
			continue
		}
		bodyEnv = bodyEnv.Put(param.Name, types.TypeInfo{Type: param.Type})
	}
	body, err := c.expr(bodyEnv, f.Body)
	if err != nil {
		return typed.Function{}, err
	}
	if err := expect(f.Body, f.Return, body.Type(), "return value of '"+f.Name+"'"); err != nil {
		return typed.Function{}, err
	}
	return typed.Function{
		Range:    f.Range,
		Name:     f.Name,
		Public:   f.Public,
		Generics: f.Generics,
		Params:   f.Params,
		Type:     f.Signature(),
		Body:     body,
	}, nil
}

// expectAnnotated checks that annotation is a valid type and that value has exactly that type
func (c *checker) expectAnnotated(env types.Env, at ast.Positioner, annotation ast.TypeExpr, value typed.Expr, context string) error {
	if err := env.CheckValid(at, annotation); err != nil {
		return err
	}
	return expect(value, annotation, value.Type(), context)
}

// expect fails with ilerr.UnexpectedType unless actual is expected
func expect(at ast.Positioner, expected, actual ast.TypeExpr, context string) error {
	if ast.TypeEqual(expected, actual) {
		return nil
	}
	return ilerr.New(ilerr.NewUnexpectedType{
		Positioner: ilerr.At(at),
		Expected:   expected,
		Actual:     actual,
		Context:    context,
	})
}
