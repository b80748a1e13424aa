package contract

import "errors"

// ErrViolation is the sentinel wrapped by every Violation.
var ErrViolation = errors.New("parameter assertion violated")

// Violation reports that a parameter failed a rule.
type Violation struct {
	Rule  Rule
	Param string
}

// Error returns the canonical message, e.g.
// "Parameter options must not be null.".
func (v *Violation) Error() string {
	return v.Rule.Message(v.Param)
}

// Unwrap returns ErrViolation.
func (v *Violation) Unwrap() error {
	return ErrViolation
}

// Violate returns the violation of rule by param.
func Violate(rule Rule, param string) *Violation {
	return &Violation{Rule: rule, Param: param}
}

// Must panics with err when it is non-nil. It lets target
// functions written in panic style reuse the checks.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
