package types

import (
	"github.com/benbjohnson/immutable"
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/internal/log"
	"iter"
	"slices"
	"strings"
)

var envLogger = log.DefaultLogger.With("section", "env")

// TypeInfo is the type of a value binding, together with the generic
// parameters it is still abstract over (none for ordinary values)
type TypeInfo struct {
	Type     ast.TypeExpr
	Generics []string
}

// IsGeneric reports whether the binding must be instantiated before use
func (t TypeInfo) IsGeneric() bool { return len(t.Generics) > 0 }

// TypeDefinition is a declared type: its generic parameters and its declaration
type TypeDefinition struct {
	Generics []string
	Decl     ast.TypeDeclaration
}

// Env is the scoped environment. It is immutable: every operation returns a new Env
// which shares structure with the receiver, so an Env can be kept and reused freely.
type Env struct {
	typeDefinitions *immutable.SortedMap[string, TypeDefinition]
	// declaredTypes holds the generic parameters of every type name usable at this point,
	// and is only used to check types are valid
	declaredTypes *immutable.SortedMap[string, []string]
	valueTypes    *immutable.SortedMap[string, TypeInfo]
	// locals are the value names bound in the innermost scope
	locals *immutable.SortedMap[string, struct{}]

	// enclosing is the Env before the innermost container was entered
	enclosing *Env
}

// NewEnv returns an Env without any bindings, not even primitive types.
// Most callers want NewInitialEnv
func NewEnv() Env {
	return Env{
		typeDefinitions: immutable.NewSortedMap[string, TypeDefinition](immutable.NewComparer("")),
		declaredTypes:   immutable.NewSortedMap[string, []string](immutable.NewComparer("")),
		valueTypes:      immutable.NewSortedMap[string, TypeInfo](immutable.NewComparer("")),
		locals:          immutable.NewSortedMap[string, struct{}](immutable.NewComparer("")),
	}
}

// NewInitialEnv returns an Env where the primitive types are declared
func NewInitialEnv() Env {
	env := NewEnv()
	for _, name := range ast.PrimitiveTypeNames {
		env.declaredTypes = env.declaredTypes.Set(name, nil)
	}
	return env
}

// Get returns the type of the value called name
func (e Env) Get(name string) (TypeInfo, bool) {
	return e.valueTypes.Get(name)
}

// Put binds name to info in the current scope
func (e Env) Put(name string, info TypeInfo) Env {
	e.valueTypes = e.valueTypes.Set(name, info)
	e.locals = e.locals.Set(name, struct{}{})
	return e
}

// IsLocal reports whether name was bound by Put since the innermost scope was entered
func (e Env) IsLocal(name string) bool {
	_, ok := e.locals.Get(name)
	return ok
}

// EnterScope opens a new scope for local bindings, like a function body.
// Bindings made so far stay visible, but are no longer local.
func (e Env) EnterScope() Env {
	e.locals = immutable.NewSortedMap[string, struct{}](immutable.NewComparer(""))
	return e
}

// TypeDefinition returns the declaration of the type called name
func (e Env) TypeDefinition(name string) (TypeDefinition, bool) {
	return e.typeDefinitions.Get(name)
}

// DeclaredGenerics returns the generic parameters of the type called name,
// if a type with that name can be used here
func (e Env) DeclaredGenerics(name string) ([]string, bool) {
	return e.declaredTypes.Get(name)
}

// WithGenerics declares each of names as a type without generic arguments,
// so that they can be used in type expressions
func (e Env) WithGenerics(names []string) Env {
	for _, name := range names {
		e.declaredTypes = e.declaredTypes.Set(name, nil)
	}
	return e
}

// EnterContainer registers the type of class, without checking it, so that
// its own declaration and members can refer to it.
func (e Env) EnterContainer(class *ast.Class) Env {
	enclosing := e
	if class.Decl != nil {
		name := class.Name.Name
		e.typeDefinitions = e.typeDefinitions.Set(name, TypeDefinition{
			Generics: class.Name.Generics,
			Decl:     class.Decl,
		})
		e.declaredTypes = e.declaredTypes.Set(name, class.Name.Generics)
	}
	e = e.EnterScope()
	e.enclosing = &enclosing
	envLogger.Debug("entered container", "class", class.Name.Name)
	return e
}

// ExitContainer closes the scope opened by EnterContainer:
//   - types declared directly inside class are renamed to <class>.<type>
//   - public members are renamed to <class>.<member>
//   - private members are removed
//
// A bare member name which hid a binding of an enclosing scope goes back to that binding.
func (e Env) ExitContainer(class *ast.Class) Env {
	container := class.Name.Name
	for _, nested := range class.Classes {
		name := nested.Name.Name
		if generics, ok := e.declaredTypes.Get(name); ok {
			e.declaredTypes = e.declaredTypes.Delete(name).Set(ast.Qualify(container, name), generics)
		}
		if def, ok := e.typeDefinitions.Get(name); ok {
			e.typeDefinitions = e.typeDefinitions.Delete(name).Set(ast.Qualify(container, name), def)
		}
	}
	var outer *immutable.SortedMap[string, TypeInfo]
	if e.enclosing != nil {
		outer = e.enclosing.valueTypes
	}
	for member, public := range class.Members() {
		info, ok := e.valueTypes.Get(member)
		if !ok {
			continue
		}
		e.valueTypes = e.valueTypes.Delete(member)
		if outer != nil {
			if hidden, wasHidden := outer.Get(member); wasHidden {
				e.valueTypes = e.valueTypes.Set(member, hidden)
			}
		}
		if public {
			e.valueTypes = e.valueTypes.Set(ast.Qualify(container, member), info)
		}
	}
	if e.enclosing != nil {
		e.locals = e.enclosing.locals
		e.enclosing = e.enclosing.enclosing
	}
	envLogger.Debug("exited container", "class", container)
	return e
}

// Values yields every value binding, ordered by name
func (e Env) Values() iter.Seq2[string, TypeInfo] {
	return sortedMapSeq(e.valueTypes)
}

// DeclaredTypes yields every usable type name and its generic parameters, ordered by name
func (e Env) DeclaredTypes() iter.Seq2[string, []string] {
	return sortedMapSeq(e.declaredTypes)
}

func sortedMapSeq[V any](m *immutable.SortedMap[string, V]) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		it := m.Iterator()
		for !it.Done() {
			k, v, _ := it.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

// String renders a TypeInfo like a declaration, e.g. <T>(T) -> T
func (t TypeInfo) String() string {
	if !t.IsGeneric() {
		return t.Type.String()
	}
	return "<" + strings.Join(t.Generics, ", ") + ">" + t.Type.String()
}

// Bind pairs each generic parameter name with the type at the same position of args.
// Parameters past the end of args are left out.
func Bind(generics []string, args []ast.TypeExpr) map[string]ast.TypeExpr {
	subst := make(map[string]ast.TypeExpr, len(generics))
	for i, name := range generics {
		if i >= len(args) {
			break
		}
		subst[name] = args[i]
	}
	return subst
}

// Instantiate substitutes args for the generics of t
func (t TypeInfo) Instantiate(args []ast.TypeExpr) ast.TypeExpr {
	if !t.IsGeneric() {
		return t.Type
	}
	return t.Type.SubstituteGenerics(Bind(t.Generics, args))
}

// GenericsOf returns the generic parameter names of def that the type t mentions,
// in declaration order. It is used to find the minimal generics of a variant payload.
func GenericsOf(def TypeDefinition, t ast.TypeExpr) []string {
	return slices.DeleteFunc(slices.Clone(def.Generics), func(name string) bool {
		return !t.ContainsIdentifier(name)
	})
}
