package assertion

import "digital.vasic.paramcheck/pkg/contract"

// Builtins returns the built-in entries, one per contract rule.
//
// Probes: defined gets no argument at all, notNull gets nil,
// notEmpty gets "", and the type rules get a value of the wrong
// type (1 for bool, func, object and string; true for number).
func Builtins() []Entry {
	return []Entry{
		NewEntry("defined", contract.Defined, contract.Absent()),
		NewEntry("notNull", contract.NotNull, contract.Null()),
		NewEntry("bool", contract.Bool, contract.Of(1)),
		NewEntry("func", contract.Function, contract.Of(1)),
		NewEntry("number", contract.Number, contract.Of(true)),
		NewEntry("object", contract.Object, contract.Of(1)),
		NewEntry("string", contract.String, contract.Of(1)),
		NewEntry("notEmpty", contract.NotEmpty, contract.Of("")),
	}
}
