// Package bank loads declarative parameter contracts from JSON
// and YAML files.
package bank

import (
	"encoding/json"
	"fmt"

	"digital.vasic.paramcheck/pkg/assertion"
	"digital.vasic.paramcheck/pkg/contract"
	"digital.vasic.paramcheck/pkg/verifier"
)

// File represents the structure of a contract bank file.
type File struct {
	Version   string         `json:"version"`
	Name      string         `json:"name,omitempty"`
	Contracts []Contract     `json:"contracts"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Contract declares the parameter assertions of one target
// function.
type Contract struct {
	// ID uniquely identifies the contract across loaded files.
	ID string `json:"id"`

	// Target is the name the function is registered under.
	Target string `json:"target"`

	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// Parameters are positional: Parameters[i] describes
	// argument i of the target.
	Parameters []Param `json:"parameters"`
}

// Param is one parameter definition as written in a bank file.
type Param struct {
	Name string

	// ValidValue is absent when the key is omitted and null
	// when it is written as null.
	ValidValue contract.Arg

	Assertions []string
}

// UnmarshalJSON keeps an omitted validValue distinct from an
// explicit null and accepts assertions either as a list or as
// a compact string such as "defined, notNull".
func (p *Param) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       string          `json:"name"`
		ValidValue json.RawMessage `json:"validValue"`
		Assertions json.RawMessage `json:"assertions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Name = raw.Name
	p.ValidValue = contract.Absent()
	if raw.ValidValue != nil {
		var v any
		if err := json.Unmarshal(raw.ValidValue, &v); err != nil {
			return fmt.Errorf("parameter %s validValue: %w", raw.Name, err)
		}
		p.ValidValue = contract.Of(v)
	}

	p.Assertions = nil
	if len(raw.Assertions) == 0 || string(raw.Assertions) == "null" {
		return nil
	}
	if raw.Assertions[0] == '"' {
		var s string
		if err := json.Unmarshal(raw.Assertions, &s); err != nil {
			return err
		}
		p.Assertions = assertion.ParseList(s)
		return nil
	}
	return json.Unmarshal(raw.Assertions, &p.Assertions)
}

// MarshalJSON writes the parameter back in bank-file form. An
// absent valid value is omitted.
func (p Param) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"name":       p.Name,
		"assertions": p.Assertions,
	}
	if p.Assertions == nil {
		out["assertions"] = []string{}
	}
	if p.ValidValue.Defined() {
		out["validValue"] = p.ValidValue.Value()
	}
	return json.Marshal(out)
}

// Definitions converts the contract's parameters into verifier
// parameter definitions.
func (c *Contract) Definitions() []verifier.ParameterDefinition {
	out := make([]verifier.ParameterDefinition, len(c.Parameters))
	for i, p := range c.Parameters {
		out[i] = verifier.ParameterDefinition{
			ParamName:  p.Name,
			ValidValue: p.ValidValue,
			Assertions: append([]string(nil), p.Assertions...),
		}
	}
	return out
}
