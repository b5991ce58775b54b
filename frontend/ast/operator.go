package ast

type BinOp uint8

const (
	_ BinOp = iota
	OpIntAdd
	OpIntSub
	OpIntMul
	OpIntDiv
	OpIntRem
	OpFloatAdd
	OpFloatSub
	OpFloatMul
	OpFloatDiv
	OpConcat
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpEq
	OpNotEq
	OpAnd
	OpOr
)

var binOpSyntax = map[BinOp]string{
	OpIntAdd:    "+",
	OpIntSub:    "-",
	OpIntMul:    "*",
	OpIntDiv:    "/",
	OpIntRem:    "%",
	OpFloatAdd:  "+.",
	OpFloatSub:  "-.",
	OpFloatMul:  "*.",
	OpFloatDiv:  "/.",
	OpConcat:    "++",
	OpLess:      "<",
	OpLessEq:    "<=",
	OpGreater:   ">",
	OpGreaterEq: ">=",
	OpEq:        "==",
	OpNotEq:     "!=",
	OpAnd:       "&&",
	OpOr:        "||",
}

func (op BinOp) String() string {
	if s, ok := binOpSyntax[op]; ok {
		return s
	}
	return "invalid"
}

type OpClass uint8

const (
	_ OpClass = iota
	// IntArith takes two Int and returns Int
	IntArith
	// FloatArith takes two Float and returns Float
	FloatArith
	// StringConcat takes two String and returns String
	StringConcat
	// Ordering takes two values of the same comparable primitive type and returns Bool
	Ordering
	// Equality takes two values of the same type and returns Bool
	Equality
	// Logical takes two Bool and returns Bool
	Logical
)

func (op BinOp) Class() OpClass {
	switch op {
	case OpIntAdd, OpIntSub, OpIntMul, OpIntDiv, OpIntRem:
		return IntArith
	case OpFloatAdd, OpFloatSub, OpFloatMul, OpFloatDiv:
		return FloatArith
	case OpConcat:
		return StringConcat
	case OpLess, OpLessEq, OpGreater, OpGreaterEq:
		return Ordering
	case OpEq, OpNotEq:
		return Equality
	case OpAnd, OpOr:
		return Logical
	default:
		panic("unreachable: unknown binary operator " + op.String())
	}
}
