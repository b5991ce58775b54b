package ast

import (
	"log/slog"
)

// Slog wraps an Expr as a slog.LogValuer to not render expressions
// unless they definitely need to be logged
func Slog(expr Expr) slog.LogValuer {
	return exprLogValuer{expr}
}

// SlogType does the same as Slog for a TypeExpr
func SlogType(t TypeExpr) slog.LogValuer {
	return typeLogValuer{t}
}

type exprLogValuer struct{ Expr }
type typeLogValuer struct{ TypeExpr }

func (l exprLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", l.Describe()),
		slog.String("pos", RangeOf(l).String()),
	)
}

func (l typeLogValuer) LogValue() slog.Value {
	if l.TypeExpr == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(l.String())
}
