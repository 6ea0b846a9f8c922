package assoc

import (
	"fmt"

	"github.com/sunholo/assocprove/internal/errors"
)

// fatalAssertion aborts with a descriptive, structured message. It must
// only be reached for conditions the prover itself guarantees can't arise
// on well-formed input; it is not a substitute for the
// is_associative=false outcome channel that ordinary proof failures use.
func fatalAssertion(code, phase, format string, args ...interface{}) {
	rep := &errors.Report{
		Schema:  "assocprove.error/v1",
		Code:    code,
		Phase:   phase,
		Message: fmt.Sprintf(format, args...),
		Pos:     -1,
	}
	str, err := rep.ToJSON(true)
	if err != nil {
		panic(fmt.Sprintf("%s %s[%s]: %s", rep.Schema, rep.Phase, rep.Code, rep.Message))
	}
	panic(str)
}
