package assertion

import "errors"

var (
	// ErrUnknownAssertion is wrapped by UnknownAssertionError.
	ErrUnknownAssertion = errors.New("assertion not implemented")

	// ErrVerificationFailed is wrapped by VerificationError.
	ErrVerificationFailed = errors.New("assertion verification failed")
)

// UnknownAssertionError reports an assertion name with no
// registered verifier.
type UnknownAssertionError struct {
	Assertion string
}

func (e *UnknownAssertionError) Error() string {
	return `Verification for assertion "` + e.Assertion +
		`" not implemented.`
}

func (e *UnknownAssertionError) Unwrap() error {
	return ErrUnknownAssertion
}

// VerificationError reports that a target did not reject a
// probe, or rejected it with the wrong violation.
type VerificationError struct {
	Assertion string
	Param     string

	// Cause is what the target returned for the probe; nil
	// when the probe was accepted. It is kept for diagnostics
	// and is not part of Error.
	Cause error
}

func (e *VerificationError) Error() string {
	return `Verification for assertion "` + e.Assertion +
		`" on parameter "` + e.Param + `" failed.`
}

func (e *VerificationError) Unwrap() error {
	return ErrVerificationFailed
}
