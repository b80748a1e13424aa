// Package contract implements the parameter assertions that
// target functions apply to their own arguments, together with
// the guard clauses used on options-style inputs.
//
// Arguments travel as an ordered list of slots (Args). A slot is
// either absent, present with a nil value (null), or present
// with a concrete value, which lets a function distinguish "not
// specified" from "specified as nil" the way the assertion
// messages require.
//
// Every failed check returns a *Violation. Its Error text is the
// canonical message for the rule, for example
//
//	Parameter name must be of type string.
//
// and its Rule and Param fields carry the same information in
// structured form.
package contract
