// Package verifier proves that a function really applies the
// parameter assertions it claims to apply.
//
// For every declared parameter the verifier builds a proxy that
// calls the target with all arguments at known-valid values
// except the parameter under test. Each assertion declared for
// that parameter is then checked by feeding the proxy the
// registry's probe value and comparing the violation the target
// reports with the one the rule prescribes.
//
//	err := verifier.VerifyAssertions(join, []verifier.ParameterDefinition{
//		{ParamName: "parts", ValidValue: contract.Of([]string{"a"}), Assertions: []string{"defined", "object"}},
//		{ParamName: "sep", ValidValue: contract.Of(","), Assertions: []string{"string"}},
//	})
//
// Verification is fail-fast: the first parameter/assertion pair
// that does not behave as declared aborts the run.
package verifier
