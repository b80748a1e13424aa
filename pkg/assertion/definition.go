// Package assertion holds the verifier registry: for every
// assertion name it knows one argument value that is guaranteed
// to violate the rule, and how to judge what the target function
// did with it.
package assertion

import "digital.vasic.paramcheck/pkg/contract"

// Proxy invokes a target function with one argument replaced by
// probe and every other argument held at its valid value.
type Proxy func(probe contract.Arg) error

// Verifier feeds a proxy the entry's probe and returns an error
// when the target did not reject it as expected.
type Verifier func(proxy Proxy, paramName string) error

// Entry is one registered assertion verifier.
type Entry struct {
	// Name is the assertion name used in parameter
	// definitions, e.g. "notNull".
	Name string

	// Rule is the contract rule the target is expected to
	// enforce.
	Rule contract.Rule

	// Probe is the value that violates Rule.
	Probe contract.Arg

	// Verify interprets the probe outcome. NewEntry fills it
	// with the uniform interpretation.
	Verify Verifier
}

// NewEntry builds an entry that probes with probe and expects
// the target to report a violation of rule.
func NewEntry(
	name string,
	rule contract.Rule,
	probe contract.Arg,
) Entry {
	e := Entry{Name: name, Rule: rule, Probe: probe}
	e.Verify = func(proxy Proxy, paramName string) error {
		return e.interpret(proxy(probe), paramName)
	}
	return e
}

// ExpectedMessage returns the message the target must produce
// when paramName receives the probe.
func (e Entry) ExpectedMessage(paramName string) string {
	return e.Rule.Message(paramName)
}
