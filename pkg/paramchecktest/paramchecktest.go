// Package paramchecktest plugs parameter contract verification
// into go test.
//
//	func TestJoin_Contract(t *testing.T) {
//		paramchecktest.Verify(t, join,
//			paramchecktest.Param("parts", []string{"a"}, "defined", "notNull", "object"),
//			paramchecktest.Param("sep", ",", "string"),
//		)
//	}
package paramchecktest

import (
	"github.com/stretchr/testify/assert"

	"digital.vasic.paramcheck/pkg/contract"
	"digital.vasic.paramcheck/pkg/verifier"
)

type tHelper interface {
	Helper()
}

// Param builds a definition with a present valid value. Pass
// nil for a null valid value; use Undefined for an absent one.
func Param(
	name string,
	valid any,
	assertions ...string,
) verifier.ParameterDefinition {
	return verifier.ParameterDefinition{
		ParamName:  name,
		ValidValue: contract.Of(valid),
		Assertions: assertions,
	}
}

// Undefined builds a definition whose valid value is absent.
func Undefined(name string, assertions ...string) verifier.ParameterDefinition {
	return verifier.ParameterDefinition{
		ParamName:  name,
		Assertions: assertions,
	}
}

// Verify asserts that fn applies every assertion in defs.
func Verify(
	t assert.TestingT,
	fn contract.Func,
	defs ...verifier.ParameterDefinition,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.NoError(t, verifier.VerifyAssertions(fn, defs))
}

// Reject asserts that verifying fn against defs fails with
// exactly msg.
func Reject(
	t assert.TestingT,
	fn contract.Func,
	msg string,
	defs ...verifier.ParameterDefinition,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.EqualError(t, verifier.VerifyAssertions(fn, defs), msg)
}
