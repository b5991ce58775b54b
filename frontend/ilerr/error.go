package ilerr

import (
	"errors"
	"fmt"
	"github.com/cottand/ilec/frontend/ast"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include where in the checker they were raised when printed
var enableDebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

// SetDebug toggles printing the checker location that raised an error in FormatWithCode
func SetDebug(enabled bool) { enableDebugErrorPrinting = enabled }

// IleError is a diagnostic about the checked program. The first IleError
// found stops the check.
type IleError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

func FormatWithCode(e IleError) string {
	msg := fmt.Sprintf("(E%03d) %v: %s", e.Code(), e.Pos(), e.Error())
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s: %s", stack, msg)
	}
	return msg
}

// New records where err was raised, for debugging
func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

// At returns a Positioner for errors with no better location than a node
func At(p ast.Positioner) ast.Positioner {
	if p == nil {
		return ast.Range{}
	}
	return ast.RangeOf(p)
}

func (c ErrCode) String() string {
	if c == None {
		return "None"
	}
	return fmt.Sprintf("E%03d", int(c))
}

// CodeOf returns the ErrCode of err, or None when err is not an IleError
func CodeOf(err error) ErrCode {
	var ileErr IleError
	if errors.As(err, &ileErr) {
		return ileErr.Code()
	}
	return None
}
