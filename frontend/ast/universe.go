package ast

import "slices"

const (
	UnitTypeName   = "Unit"
	IntTypeName    = "Int"
	FloatTypeName  = "Float"
	BoolTypeName   = "Bool"
	CharTypeName   = "Char"
	StringTypeName = "String"
)

// Discard is the placeholder name which never introduces a binding
const Discard = "_"

// Separator joins a container name and one of its members into a qualified name
const Separator = "."

var (
	UnitType   = &TypeIdent{Name: UnitTypeName}
	IntType    = &TypeIdent{Name: IntTypeName}
	FloatType  = &TypeIdent{Name: FloatTypeName}
	BoolType   = &TypeIdent{Name: BoolTypeName}
	CharType   = &TypeIdent{Name: CharTypeName}
	StringType = &TypeIdent{Name: StringTypeName}
)

// PrimitiveTypeNames lists the built-in types, which take no generic arguments
var PrimitiveTypeNames = []string{
	UnitTypeName,
	IntTypeName,
	FloatTypeName,
	BoolTypeName,
	CharTypeName,
	StringTypeName,
}

// IsPrimitive reports whether name is one of PrimitiveTypeNames
func IsPrimitive(name string) bool {
	return slices.Contains(PrimitiveTypeNames, name)
}

// Qualify returns member as seen from outside the container called container
func Qualify(container, member string) string {
	return container + Separator + member
}
