package runtime

import (
	"github.com/cottand/ilec/frontend/ast"
	"reflect"
	"unicode"
	"unicode/utf8"
)

var runeType = reflect.TypeFor[rune]()

// Scan returns a Signature for every exported method of host.
//
// Go parameter and result kinds map to primitive types as follows:
// int and int64 to Int, float64 to Float, bool to Bool, rune to Char, string to String,
// struct{} or no result to Unit. A method using any other kind, or with more than one result,
// is rejected with ilerr.DisallowedRuntimeSignature.
//
// Method names are converted to lower camel case, so Println becomes println.
func Scan(host any) ([]Signature, error) {
	if host == nil {
		return nil, nil
	}
	hostType := reflect.TypeOf(host)
	sigs := make([]Signature, 0, hostType.NumMethod())
	for i := range hostType.NumMethod() {
		method := hostType.Method(i)
		name := lowerFirst(method.Name)
		// the receiver is the first input of a method obtained from a reflect.Type
		fnType := method.Type
		sig := Signature{Name: name}
		for p := 1; p < fnType.NumIn(); p++ {
			typeName, ok := primitiveOf(fnType.In(p))
			if !ok {
				return nil, disallowed(name, fnType.In(p).String())
			}
			sig.Params = append(sig.Params, typeName)
		}
		switch fnType.NumOut() {
		case 0:
			sig.Returns = ast.UnitTypeName
		case 1:
			typeName, ok := primitiveOf(fnType.Out(0))
			if !ok {
				return nil, disallowed(name, fnType.Out(0).String())
			}
			sig.Returns = typeName
		default:
			return nil, disallowed(name, fnType.String())
		}
		logger.Debug("scanned provided function", "name", sig.Name, "type", ast.SlogType(sig.Type()))
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func primitiveOf(t reflect.Type) (string, bool) {
	if t == runeType {
		return ast.CharTypeName, true
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return ast.IntTypeName, true
	case reflect.Float64:
		return ast.FloatTypeName, true
	case reflect.Bool:
		return ast.BoolTypeName, true
	case reflect.String:
		return ast.StringTypeName, true
	case reflect.Struct:
		if t.NumField() == 0 {
			return ast.UnitTypeName, true
		}
	}
	return "", false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
