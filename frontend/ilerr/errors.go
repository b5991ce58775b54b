package ilerr

import (
	"fmt"
	"github.com/cottand/ilec/frontend/ast"
	"strings"
)

type ErrCode int

const (
	None ErrCode = iota
	UndefinedIdentifier
	UndefinedTypeIdentifier
	ShadowedName
	GenericsArityMismatch
	GenericsShapeMismatch
	GenericsIncomplete
	UnexpectedType
	VariantNotFound
	MissingMember
	NoSuchMember
	StructNotFound
	NonExhaustive
	UnmatchableType
	UnusedArm
	UnknownTag
	MalformedPattern
	TooManyArguments
	DisallowedRuntimeSignature
	PayloadMismatch
	NotAFunction
)

type NewUndefinedIdentifier struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedIdentifier) Error() string {
	return fmt.Sprintf("identifier '%s' is not defined", e.Name)
}
func (e NewUndefinedIdentifier) Code() ErrCode    { return UndefinedIdentifier }
func (e NewUndefinedIdentifier) getStack() []byte { return e.stack }
func (e NewUndefinedIdentifier) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUndefinedTypeIdentifier struct {
	ast.Positioner
	Name string
	// Arity is the number of generic arguments found at the use site
	Arity int
	// Expected is -1 when no type called Name exists
	Expected int
	stack    []byte
}

func (e NewUndefinedTypeIdentifier) Error() string {
	return e.message()
}
func (e NewUndefinedTypeIdentifier) Code() ErrCode    { return UndefinedTypeIdentifier }
func (e NewUndefinedTypeIdentifier) getStack() []byte { return e.stack }
func (e NewUndefinedTypeIdentifier) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewShadowedName struct {
	ast.Positioner
	Name string
	// Kind is what was declared twice, e.g. "member" or "tag"
	Kind  string
	stack []byte
}

func (e NewShadowedName) Error() string {
	return fmt.Sprintf("%s '%s' is already declared in this scope", e.Kind, e.Name)
}
func (e NewShadowedName) Code() ErrCode    { return ShadowedName }
func (e NewShadowedName) getStack() []byte { return e.stack }
func (e NewShadowedName) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewGenericsArityMismatch struct {
	ast.Positioner
	Name     string
	Expected int
	Got      int
	stack    []byte
}

func (e NewGenericsArityMismatch) Error() string {
	return fmt.Sprintf("'%s' takes %d generic argument(s), but %d were supplied", e.Name, e.Expected, e.Got)
}
func (e NewGenericsArityMismatch) Code() ErrCode    { return GenericsArityMismatch }
func (e NewGenericsArityMismatch) getStack() []byte { return e.stack }
func (e NewGenericsArityMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewGenericsShapeMismatch struct {
	ast.Positioner
	Template ast.TypeExpr
	Actual   ast.TypeExpr
	Reason   string
	stack    []byte
}

func (e NewGenericsShapeMismatch) Error() string {
	return fmt.Sprintf("cannot reconcile declared type '%v' with '%v': %s", e.Template, e.Actual, e.Reason)
}
func (e NewGenericsShapeMismatch) Code() ErrCode    { return GenericsShapeMismatch }
func (e NewGenericsShapeMismatch) getStack() []byte { return e.stack }
func (e NewGenericsShapeMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewGenericsIncomplete struct {
	ast.Positioner
	Name    string
	Missing []string
	stack   []byte
}

func (e NewGenericsIncomplete) Error() string {
	return fmt.Sprintf("cannot infer generic(s) %s of '%s' from available use sites", strings.Join(e.Missing, ", "), e.Name)
}
func (e NewGenericsIncomplete) Code() ErrCode    { return GenericsIncomplete }
func (e NewGenericsIncomplete) getStack() []byte { return e.stack }
func (e NewGenericsIncomplete) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnexpectedType struct {
	ast.Positioner
	Expected ast.TypeExpr
	Actual   ast.TypeExpr
	// Context describes what required Expected, e.g. "if condition"
	Context string
	stack   []byte
}

func (e NewUnexpectedType) Error() string {
	return fmt.Sprintf("type mismatch in %s: expected type '%v', but found a different type '%v'", e.Context, e.Expected, e.Actual)
}
func (e NewUnexpectedType) Code() ErrCode    { return UnexpectedType }
func (e NewUnexpectedType) getStack() []byte { return e.stack }
func (e NewUnexpectedType) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewVariantNotFound struct {
	ast.Positioner
	Type string
	// Tag may be empty when Type itself is not a variant
	Tag   string
	stack []byte
}

func (e NewVariantNotFound) Error() string {
	return e.message()
}
func (e NewVariantNotFound) Code() ErrCode    { return VariantNotFound }
func (e NewVariantNotFound) getStack() []byte { return e.stack }
func (e NewVariantNotFound) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewMissingMember struct {
	ast.Positioner
	Type   string
	Member string
	stack  []byte
}

func (e NewMissingMember) Error() string {
	return fmt.Sprintf("struct '%s' requires field '%s', but it was not supplied", e.Type, e.Member)
}
func (e NewMissingMember) Code() ErrCode    { return MissingMember }
func (e NewMissingMember) getStack() []byte { return e.stack }
func (e NewMissingMember) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNoSuchMember struct {
	ast.Positioner
	Type   string
	Member string
	stack  []byte
}

func (e NewNoSuchMember) Error() string {
	return fmt.Sprintf("struct '%s' has no field '%s'", e.Type, e.Member)
}
func (e NewNoSuchMember) Code() ErrCode    { return NoSuchMember }
func (e NewNoSuchMember) getStack() []byte { return e.stack }
func (e NewNoSuchMember) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewStructNotFound struct {
	ast.Positioner
	Type ast.TypeExpr
	// Name is set instead of Type when the struct was referenced by name
	Name  string
	stack []byte
}

func (e NewStructNotFound) Error() string {
	return e.message()
}
func (e NewStructNotFound) Code() ErrCode    { return StructNotFound }
func (e NewStructNotFound) getStack() []byte { return e.stack }
func (e NewStructNotFound) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNonExhaustive struct {
	ast.Positioner
	Type    ast.TypeExpr
	Missing []string
	stack   []byte
}

func (e NewNonExhaustive) Error() string {
	return e.message()
}
func (e NewNonExhaustive) Code() ErrCode    { return NonExhaustive }
func (e NewNonExhaustive) getStack() []byte { return e.stack }
func (e NewNonExhaustive) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnmatchableType struct {
	ast.Positioner
	Type  ast.TypeExpr
	stack []byte
}

func (e NewUnmatchableType) Error() string {
	return fmt.Sprintf("cannot match on a value of type '%v', which is not a variant", e.Type)
}
func (e NewUnmatchableType) Code() ErrCode    { return UnmatchableType }
func (e NewUnmatchableType) getStack() []byte { return e.stack }
func (e NewUnmatchableType) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnusedArm struct {
	ast.Positioner
	stack []byte
}

func (e NewUnusedArm) Error() string {
	return "match arm is unreachable: all cases are already covered"
}
func (e NewUnusedArm) Code() ErrCode    { return UnusedArm }
func (e NewUnusedArm) getStack() []byte { return e.stack }
func (e NewUnusedArm) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnknownTag struct {
	ast.Positioner
	Tag   string
	Type  ast.TypeExpr
	stack []byte
}

func (e NewUnknownTag) Error() string {
	return fmt.Sprintf("tag '%s' is not a remaining case of '%v'", e.Tag, e.Type)
}
func (e NewUnknownTag) Code() ErrCode    { return UnknownTag }
func (e NewUnknownTag) getStack() []byte { return e.stack }
func (e NewUnknownTag) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewMalformedPattern struct {
	ast.Positioner
	Tag string
	// HasPayload is whether the tag was declared with a payload
	HasPayload bool
	stack      []byte
}

func (e NewMalformedPattern) Error() string {
	return e.message()
}
func (e NewMalformedPattern) Code() ErrCode    { return MalformedPattern }
func (e NewMalformedPattern) getStack() []byte { return e.stack }
func (e NewMalformedPattern) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewTooManyArguments struct {
	ast.Positioner
	Expected int
	Got      int
	stack    []byte
}

func (e NewTooManyArguments) Error() string {
	return fmt.Sprintf("too many arguments: function takes %d, but %d were supplied", e.Expected, e.Got)
}
func (e NewTooManyArguments) Code() ErrCode    { return TooManyArguments }
func (e NewTooManyArguments) getStack() []byte { return e.stack }
func (e NewTooManyArguments) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewDisallowedRuntimeSignature struct {
	ast.Positioner
	Name  string
	Type  string
	stack []byte
}

func (e NewDisallowedRuntimeSignature) Error() string {
	return fmt.Sprintf("provided runtime function '%s' uses type '%s', which is not a primitive type", e.Name, e.Type)
}
func (e NewDisallowedRuntimeSignature) Code() ErrCode    { return DisallowedRuntimeSignature }
func (e NewDisallowedRuntimeSignature) getStack() []byte { return e.stack }
func (e NewDisallowedRuntimeSignature) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewPayloadMismatch struct {
	ast.Positioner
	Type       string
	Tag        string
	HasPayload bool
	stack      []byte
}

func (e NewPayloadMismatch) Error() string {
	return e.message()
}
func (e NewPayloadMismatch) Code() ErrCode    { return PayloadMismatch }
func (e NewPayloadMismatch) getStack() []byte { return e.stack }
func (e NewPayloadMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotAFunction struct {
	ast.Positioner
	Type  ast.TypeExpr
	stack []byte
}

func (e NewNotAFunction) Error() string {
	return fmt.Sprintf("cannot apply a value of type '%v', which is not a function", e.Type)
}
func (e NewNotAFunction) Code() ErrCode    { return NotAFunction }
func (e NewNotAFunction) getStack() []byte { return e.stack }
func (e NewNotAFunction) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

func (e NewUndefinedTypeIdentifier) message() string {
	if e.Expected < 0 {
		return fmt.Sprintf("type '%s' is not defined", e.Name)
	}
	return fmt.Sprintf("type '%s' takes %d generic argument(s), but is used with %d", e.Name, e.Expected, e.Arity)
}

func (e NewVariantNotFound) message() string {
	if e.Tag == "" {
		return fmt.Sprintf("type '%s' is not a variant", e.Type)
	}
	return fmt.Sprintf("variant '%s' has no tag '%s'", e.Type, e.Tag)
}

func (e NewStructNotFound) message() string {
	if e.Type == nil {
		return fmt.Sprintf("type '%s' is not a struct", e.Name)
	}
	return fmt.Sprintf("expected a struct, but found type '%v'", e.Type)
}

func (e NewNonExhaustive) message() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("match on '%v' has no arms", e.Type)
	}
	return fmt.Sprintf("match on '%v' is not exhaustive: missing %s", e.Type, strings.Join(e.Missing, ", "))
}

func (e NewMalformedPattern) message() string {
	if e.HasPayload {
		return fmt.Sprintf("tag '%s' carries a payload, so its pattern must bind a name", e.Tag)
	}
	return fmt.Sprintf("tag '%s' carries no payload, so its pattern cannot bind a name", e.Tag)
}

func (e NewPayloadMismatch) message() string {
	if e.HasPayload {
		return fmt.Sprintf("'%s.%s' carries a payload and must be constructed with an argument", e.Type, e.Tag)
	}
	return fmt.Sprintf("'%s.%s' carries no payload and cannot be constructed with an argument", e.Type, e.Tag)
}
