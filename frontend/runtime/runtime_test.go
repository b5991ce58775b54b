package runtime

import (
	"github.com/cottand/ilec/frontend/ilerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestSignatureValidate(t *testing.T) {
	valid := Signature{Name: "concat", Params: []string{"String", "String"}, Returns: "String"}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, "(String, String) -> String", valid.Type().String())

	cases := map[string]Signature{
		"param":  {Name: "bad", Params: []string{"Option"}, Returns: "Unit"},
		"return": {Name: "bad", Params: []string{"Int"}, Returns: "List"},
	}
	for name, sig := range cases {
		t.Run(name, func(t *testing.T) {
			err := sig.Validate()
			assert.Equal(t, ilerr.DisallowedRuntimeSignature, ilerr.CodeOf(err))
			assert.ErrorContains(t, err, "'bad'")
		})
	}
	assert.Error(t, Validate([]Signature{valid, cases["param"]}))
}

func TestLoadDescriptor(t *testing.T) {
	doc := `
functions:
  - name: println
    params: [String]
    returns: Unit
  - name: now
    returns: Int
`
	sigs, err := LoadDescriptor(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	assert.Equal(t, "String -> Unit", sigs[0].Type().String())
	assert.Equal(t, "() -> Int", sigs[1].Type().String())
}

func TestLoadDescriptorErrors(t *testing.T) {
	cases := map[string]string{
		"parse":              "functions: [",
		"unknown field":      "functions:\n  - name: f\n    returns: Int\n    pure: true\n",
		"has no name":        "functions:\n  - returns: Int\n",
		"has no return type": "functions:\n  - name: f\n",
		"not a primitive":    "functions:\n  - name: f\n    params: [Foo]\n    returns: Int\n",
	}
	for msg, doc := range cases {
		t.Run(msg, func(t *testing.T) {
			_, err := LoadDescriptor(strings.NewReader(doc))
			assert.Error(t, err)
			if msg != "parse" && msg != "unknown field" {
				assert.ErrorContains(t, err, msg)
			}
		})
	}
}

func TestLoadEmptyDescriptor(t *testing.T) {
	sigs, err := LoadDescriptor(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, sigs)
}

type host struct{}

func (host) Println(string)          {}
func (host) Add(a, b int) int       { return a + b }
func (host) Half(x float64) float64 { return x / 2 }
func (host) IsUpper(c rune) bool    { return c >= 'A' && c <= 'Z' }
func (host) Tick() struct{}         { return struct{}{} }

type badHost struct{}

func (badHost) Split(s string) []string { return strings.Fields(s) }

type twoResults struct{}

func (twoResults) Div(a, b int) (int, int) { return a / b, a % b }

func TestScan(t *testing.T) {
	sigs, err := Scan(host{})
	require.NoError(t, err)

	types := make(map[string]string, len(sigs))
	for _, sig := range sigs {
		types[sig.Name] = sig.Type().String()
	}
	assert.Equal(t, map[string]string{
		"add":     "(Int, Int) -> Int",
		"half":    "Float -> Float",
		"isUpper": "Char -> Bool",
		"println": "String -> Unit",
		"tick":    "() -> Unit",
	}, types)
}

func TestScanRejects(t *testing.T) {
	_, err := Scan(badHost{})
	assert.Equal(t, ilerr.DisallowedRuntimeSignature, ilerr.CodeOf(err))
	assert.ErrorContains(t, err, "[]string")

	_, err = Scan(twoResults{})
	assert.Equal(t, ilerr.DisallowedRuntimeSignature, ilerr.CodeOf(err))

	sigs, err := Scan(nil)
	assert.NoError(t, err)
	assert.Empty(t, sigs)
}
