// Package check turns a raw ast.Class tree into a typed.Class tree,
// or fails with the first ilerr.IleError it finds.
package check

import (
	"github.com/cottand/ilec/frontend/ast"
	"github.com/cottand/ilec/frontend/runtime"
	"github.com/cottand/ilec/frontend/typed"
	"github.com/cottand/ilec/frontend/types"
	"github.com/cottand/ilec/internal/log"
	"log/slog"
)

type settings struct {
	runtime []runtime.Signature
	logger  *slog.Logger
}

type Option func(*settings)

// WithRuntime makes the provided functions callable from the checked program
func WithRuntime(sigs []runtime.Signature) Option {
	return func(s *settings) {
		s.runtime = append(s.runtime, sigs...)
	}
}

// WithLogger replaces the logger the checker reports its progress to
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// checker holds no state about the program being checked: the environment is
// passed explicitly to every method
type checker struct {
	logger *slog.Logger
}

// Program type-checks root and every class nested in it.
//
// It returns the decorated tree and the environment after root's scope has been
// exited, where public members of root are reachable as <root>.<member>.
func Program(root *ast.Class, opts ...Option) (*typed.Class, types.Env, error) {
	s := &settings{
		logger: log.DefaultLogger.With("section", "check"),
	}
	for _, opt := range opts {
		opt(s)
	}
	env, err := InitialEnv(s.runtime)
	if err != nil {
		return nil, types.Env{}, err
	}
	if err := validateShadowing(root); err != nil {
		return nil, types.Env{}, err
	}
	c := &checker{logger: s.logger}
	return c.class(env, root)
}

// InitialEnv returns the environment programs are checked in: primitive types
// plus the provided runtime functions
func InitialEnv(sigs []runtime.Signature) (types.Env, error) {
	if err := runtime.Validate(sigs); err != nil {
		return types.Env{}, err
	}
	env := types.NewInitialEnv()
	for _, sig := range sigs {
		env = env.Put(sig.Name, types.TypeInfo{Type: sig.Type()})
	}
	return env, nil
}

// Expr checks a single expression in env. It is meant for tools and tests
// which do not hold a whole program.
func Expr(env types.Env, expr ast.Expr) (typed.Expr, error) {
	c := &checker{logger: log.DefaultLogger.With("section", "check")}
	return c.expr(env, expr)
}
