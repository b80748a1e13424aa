package verifier

import (
	"errors"

	"digital.vasic.paramcheck/pkg/assertion"
)

// Errors returned by verification. They are the registry's
// errors re-exported for callers that only import verifier.
var (
	ErrUnknownAssertion   = assertion.ErrUnknownAssertion
	ErrVerificationFailed = assertion.ErrVerificationFailed
)

type (
	UnknownAssertionError = assertion.UnknownAssertionError
	VerificationError     = assertion.VerificationError
)

// ErrNoDefinitions is returned when VerifyAssertions is called
// without parameter definitions.
var ErrNoDefinitions = errors.New("Parameter paramDefs must not be empty.")
