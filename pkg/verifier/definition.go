package verifier

import "digital.vasic.paramcheck/pkg/contract"

// ParameterDefinition declares one positional parameter of a
// target function and the assertions it is expected to apply.
type ParameterDefinition struct {
	// ParamName is the name the target uses in its violation
	// messages.
	ParamName string `json:"paramName"`

	// ValidValue satisfies every assertion of the parameter.
	// The zero value is the absent slot.
	ValidValue contract.Arg `json:"-"`

	// Assertions are checked in this order.
	Assertions []string `json:"assertions"`
}

// ValidValues projects the valid value of every definition into
// an argument vector aligned with the definitions.
func ValidValues(defs []ParameterDefinition) contract.Args {
	out := make(contract.Args, len(defs))
	for i, d := range defs {
		out[i] = d.ValidValue
	}
	return out
}
