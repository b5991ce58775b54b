package cmd

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runtime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validDescriptor = `
functions:
  - name: println
    params: [String]
    returns: Unit
  - name: max
    params: [Int, Int]
    returns: Int
`

func TestValidate(t *testing.T) {
	var out bytes.Buffer
	RuntimeCmd.SetOut(&out)
	RuntimeCmd.SetArgs([]string{"validate", writeDescriptor(t, validDescriptor)})

	require.NoError(t, RuntimeCmd.Execute())
	assert.Contains(t, out.String(), "println: String -> Unit")
	assert.Contains(t, out.String(), "max: (Int, Int) -> Int")
	assert.Contains(t, out.String(), "2 provided function(s) OK")
}

func TestValidateRejects(t *testing.T) {
	RuntimeCmd.SetOut(&bytes.Buffer{})
	RuntimeCmd.SetErr(&bytes.Buffer{})
	RuntimeCmd.SetArgs([]string{"validate", writeDescriptor(t, "functions:\n  - name: f\n    params: [List]\n    returns: Int\n")})

	err := RuntimeCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(E018)")
	assert.Contains(t, err.Error(), "'List'")
}

func TestValidateMissingFile(t *testing.T) {
	RuntimeCmd.SetOut(&bytes.Buffer{})
	RuntimeCmd.SetErr(&bytes.Buffer{})
	RuntimeCmd.SetArgs([]string{"validate", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, RuntimeCmd.Execute(), "could not open descriptor")
}

func TestEnv(t *testing.T) {
	var out bytes.Buffer
	EnvCmd.SetOut(&out)
	EnvCmd.SetArgs([]string{"--descriptor", writeDescriptor(t, validDescriptor)})

	require.NoError(t, EnvCmd.Execute())
	assert.Contains(t, out.String(), "types:\n  Bool\n  Char\n  Float\n  Int\n  String\n  Unit\n")
	assert.Contains(t, out.String(), "values:\n  max: (Int, Int) -> Int\n  println: String -> Unit\n")
}
