package assertion

import (
	"errors"

	"digital.vasic.paramcheck/pkg/contract"
)

// interpret decides whether the error a target returned for the
// probe is the violation this entry expects. A structured
// *contract.Violation is compared on rule and parameter; any
// other error falls back to an exact message comparison.
func (e Entry) interpret(observed error, paramName string) error {
	if e.matches(observed, paramName) {
		return nil
	}
	return &VerificationError{
		Assertion: e.Name,
		Param:     paramName,
		Cause:     observed,
	}
}

func (e Entry) matches(observed error, paramName string) bool {
	if observed == nil {
		return false
	}

	var v *contract.Violation
	if errors.As(observed, &v) {
		return v.Rule == e.Rule && v.Param == paramName
	}

	return observed.Error() == e.ExpectedMessage(paramName)
}
