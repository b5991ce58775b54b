package check

import (
	"cmp"
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/cottand/ilec/frontend/types"
	"github.com/hashicorp/go-set/v3"
	"reflect"
)

// coverage holds the tags of a variant that no arm has matched yet
type coverage struct {
	scrutinee ast.TypeExpr
	remaining *set.TreeSet[string]
	// payloads are the payload types of every tag, with the scrutinee's generics substituted in
	payloads map[string]ast.TypeExpr
}

func newCoverage(scrutinee *ast.TypeIdent, def types.TypeDefinition, decl *ast.VariantDecl) *coverage {
	subst := types.Bind(def.Generics, scrutinee.Args)
	c := &coverage{
		scrutinee: scrutinee,
		remaining: set.NewTreeSet[string](cmp.Compare[string]),
		payloads:  make(map[string]ast.TypeExpr, len(decl.Tags)),
	}
	for _, tag := range decl.Tags {
		c.remaining.Insert(tag.Name)
		if tag.Payload != nil {
			c.payloads[tag.Name] = tag.Payload.SubstituteGenerics(subst)
		}
	}
	return c
}

func (c *coverage) clear() {
	c.remaining = set.NewTreeSet[string](cmp.Compare[string])
}

func (c *checker) match(env types.Env, expr *ast.Match) (typed.Expr, error) {
	scrutinee, err := c.expr(env, expr.Scrutinee)
	if err != nil {
		return nil, err
	}
	unmatchable := ilerr.New(ilerr.NewUnmatchableType{Positioner: ilerr.At(expr.Scrutinee), Type: scrutinee.Type()})
	ident, ok := scrutinee.Type().(*ast.TypeIdent)
	if !ok {
		return nil, unmatchable
	}
	def, ok := env.TypeDefinition(ident.Name)
	if !ok {
		return nil, unmatchable
	}
	decl, ok := def.Decl.(*ast.VariantDecl)
	if !ok {
		return nil, unmatchable
	}
	if len(expr.Arms) == 0 {
		return nil, ilerr.New(ilerr.NewNonExhaustive{Positioner: ilerr.At(expr), Type: ident})
	}

	cov := newCoverage(ident, def, decl)
	res := &typed.Match{Range: expr.Range, Scrutinee: scrutinee}
	for _, arm := range expr.Arms {
		if cov.remaining.Empty() {
			return nil, ilerr.New(ilerr.NewUnusedArm{Positioner: ilerr.At(arm)})
		}
		pattern, armEnv, err := c.pattern(env, arm.Pattern, cov)
		if err != nil {
			return nil, err
		}
		body, err := c.expr(armEnv, arm.Body)
		if err != nil {
			return nil, err
		}
		if len(res.Arms) == 0 {
			res.T = body.Type()
		} else if err := expect(arm.Body, res.T, body.Type(), "match arm"); err != nil {
			return nil, err
		}
		res.Arms = append(res.Arms, typed.MatchArm{Range: arm.Range, Pattern: pattern, Body: body})
	}

	if !cov.remaining.Empty() {
		return nil, ilerr.New(ilerr.NewNonExhaustive{
			Positioner: ilerr.At(expr),
			Type:       ident,
			Missing:    cov.remaining.Slice(),
		})
	}
	return res, nil
}

// pattern checks one arm's pattern against the tags still in cov, removing the
// ones it matches. It returns the env the arm's body is checked in.
func (c *checker) pattern(env types.Env, pattern ast.Pattern, cov *coverage) (typed.Pattern, types.Env, error) {
	scrutinee := typed.Typed{T: cov.scrutinee}
	switch pattern := pattern.(type) {
	case *ast.TagPattern:
		if !cov.remaining.Contains(pattern.Tag) {
			return nil, env, ilerr.New(ilerr.NewUnknownTag{
				Positioner: ilerr.At(pattern),
				Tag:        pattern.Tag,
				Type:       cov.scrutinee,
			})
		}
		cov.remaining.Remove(pattern.Tag)
		payload, hasPayload := cov.payloads[pattern.Tag]
		if hasPayload != (pattern.Binding != "") {
			return nil, env, ilerr.New(ilerr.NewMalformedPattern{
				Positioner: ilerr.At(pattern),
				Tag:        pattern.Tag,
				HasPayload: hasPayload,
			})
		}
		if hasPayload && pattern.Binding != ast.Discard {
			if env.IsLocal(pattern.Binding) {
				return nil, env, shadowed(pattern, "binding", pattern.Binding)
			}
			env = env.Put(pattern.Binding, types.TypeInfo{Type: payload})
		}
		return &typed.TagPattern{
			Range:   pattern.Range,
			Typed:   scrutinee,
			Tag:     pattern.Tag,
			Binding: pattern.Binding,
			Payload: payload,
		}, env, nil

	case *ast.BindPattern:
		cov.clear()
		if pattern.Name == ast.Discard {
			return &typed.WildcardPattern{Range: pattern.Range, Typed: scrutinee}, env, nil
		}
		if env.IsLocal(pattern.Name) {
			return nil, env, shadowed(pattern, "binding", pattern.Name)
		}
		env = env.Put(pattern.Name, types.TypeInfo{Type: cov.scrutinee})
		return &typed.BindPattern{Range: pattern.Range, Typed: scrutinee, Name: pattern.Name}, env, nil

	case *ast.WildcardPattern:
		cov.clear()
		return &typed.WildcardPattern{Range: pattern.Range, Typed: scrutinee}, env, nil

	default:
		panic("unreachable: unknown pattern " + reflect.TypeOf(pattern).String())
	}
}
