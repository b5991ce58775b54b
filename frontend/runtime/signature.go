// Package runtime describes functions provided by the host runtime, which
// programs can call without declaring them
package runtime

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/cottand/ilec/internal/log"
)

var logger = log.DefaultLogger.With("section", "runtime")

// Signature is a provided function. Params and Returns name primitive types.
type Signature struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params"`
	Returns string   `yaml:"returns"`
}

// Validate fails with ilerr.DisallowedRuntimeSignature if the signature uses a non-primitive type
func (s Signature) Validate() error {
	for _, param := range s.Params {
		if !ast.IsPrimitive(param) {
			return disallowed(s.Name, param)
		}
	}
	if !ast.IsPrimitive(s.Returns) {
		return disallowed(s.Name, s.Returns)
	}
	return nil
}

// Type is the function type of s
func (s Signature) Type() *ast.FuncType {
	params := make([]ast.TypeExpr, len(s.Params))
	for i, param := range s.Params {
		params[i] = ast.Named(param)
	}
	return ast.Fn(params, ast.Named(s.Returns))
}

// Validate calls Validate on every signature, stopping at the first failure
func Validate(sigs []Signature) error {
	for _, sig := range sigs {
		if err := sig.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func disallowed(name, typeName string) error {
	logger.Warn("rejected provided runtime signature", "name", name, "type", typeName)
	return ilerr.New(ilerr.NewDisallowedRuntimeSignature{
		Positioner: ast.Range{},
		Name:       name,
		Type:       typeName,
	})
}
