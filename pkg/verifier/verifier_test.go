package verifier_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.paramcheck/pkg/assertion"
	"digital.vasic.paramcheck/pkg/contract"
	"digital.vasic.paramcheck/pkg/logging"
	"digital.vasic.paramcheck/pkg/metrics"
	"digital.vasic.paramcheck/pkg/verifier"
)

// onlyFirstNotNull asserts that a is not null and ignores b.
func onlyFirstNotNull(args contract.Args) error {
	return contract.CheckNotNull("a", args.At(0))
}

// nonEmptyString asserts that x is a non-empty string.
func nonEmptyString(args contract.Args) error {
	return contract.Require("x", args.At(0), contract.String, contract.NotEmpty)
}

func TestVerifyAssertions_UnenforcedSecondParameter(t *testing.T) {
	err := verifier.VerifyAssertions(onlyFirstNotNull, []verifier.ParameterDefinition{
		{ParamName: "a", ValidValue: contract.Of(1), Assertions: []string{"notNull"}},
		{ParamName: "b", ValidValue: contract.Of(2), Assertions: []string{"notNull"}},
	})

	require.Error(t, err)
	assert.EqualError(t, err, `Verification for assertion "notNull" on parameter "b" failed.`)
	assert.ErrorIs(t, err, verifier.ErrVerificationFailed)
}

func TestVerifyAssertions_NonEmptyString(t *testing.T) {
	err := verifier.VerifyAssertions(nonEmptyString, []verifier.ParameterDefinition{
		{ParamName: "x", ValidValue: contract.Of("ok"), Assertions: []string{"string", "notEmpty"}},
	})

	assert.NoError(t, err)
}

func TestVerifyAssertions_UnknownAssertion(t *testing.T) {
	calls := 0
	anyFunc := func(contract.Args) error {
		calls++
		return nil
	}

	err := verifier.VerifyAssertions(anyFunc, []verifier.ParameterDefinition{
		{ParamName: "z", ValidValue: contract.Of(1), Assertions: []string{"madeUpRule"}},
	})

	assert.EqualError(t, err, `Verification for assertion "madeUpRule" not implemented.`)
	assert.ErrorIs(t, err, verifier.ErrUnknownAssertion)
	assert.Zero(t, calls)
}

func TestVerifyAssertions_NoDefinitions(t *testing.T) {
	err := verifier.VerifyAssertions(onlyFirstNotNull, nil)
	assert.ErrorIs(t, err, verifier.ErrNoDefinitions)
}

func TestVerifyAssertions_NilFunc(t *testing.T) {
	err := verifier.VerifyAssertions(nil, []verifier.ParameterDefinition{
		{ParamName: "a", Assertions: []string{"defined"}},
	})
	assert.EqualError(t, err, "Parameter func must be of type function.")
}

// Every built-in assertion passes against a target that
// enforces it and fails against one that does not.
func TestVerifyAssertions_AllBuiltins(t *testing.T) {
	valid := map[contract.Rule]contract.Arg{
		contract.Defined:  contract.Of(1),
		contract.NotNull:  contract.Of(1),
		contract.Bool:     contract.Of(true),
		contract.Function: contract.Of(func() {}),
		contract.Number:   contract.Of(3.5),
		contract.Object:   contract.Of(map[string]int{}),
		contract.String:   contract.Of("s"),
		contract.NotEmpty: contract.Of("s"),
	}

	for _, rule := range contract.Rules() {
		rule := rule
		t.Run(rule.String(), func(t *testing.T) {
			defs := []verifier.ParameterDefinition{
				{ParamName: "first", ValidValue: contract.Of("fixed")},
				{ParamName: "param", ValidValue: valid[rule], Assertions: []string{rule.String()}},
			}

			enforced := func(args contract.Args) error {
				return contract.Check(rule, "param", args.At(1))
			}
			assert.NoError(t, verifier.VerifyAssertions(enforced, defs))

			ignored := func(contract.Args) error { return nil }
			err := verifier.VerifyAssertions(ignored, defs)
			assert.EqualError(t, err,
				`Verification for assertion "`+rule.String()+`" on parameter "param" failed.`)

			wrongName := func(args contract.Args) error {
				return contract.Check(rule, "other", args.At(1))
			}
			assert.ErrorIs(t, verifier.VerifyAssertions(wrongName, defs), verifier.ErrVerificationFailed)
		})
	}
}

func TestVerifyAssertions_OmittedValidValueIsUndefined(t *testing.T) {
	var seen []contract.Arg
	target := func(args contract.Args) error {
		seen = append(seen, args.At(0))
		return contract.CheckNotNull("a", args.At(0))
	}

	err := verifier.VerifyAssertions(target, []verifier.ParameterDefinition{
		{ParamName: "a", Assertions: []string{"notNull"}},
		{ParamName: "b", ValidValue: contract.Of(1)},
	})

	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, contract.Null(), seen[0])
	assert.NoError(t, target(verifier.ValidValues([]verifier.ParameterDefinition{{ParamName: "a"}})))
}

func TestVerifyAssertions_WrongAssertionOrderInTarget(t *testing.T) {
	// The target checks string before defined, so an absent
	// argument is reported as a type error.
	target := func(args contract.Args) error {
		return contract.Require("x", args.At(0), contract.String, contract.Defined)
	}

	err := verifier.VerifyAssertions(target, []verifier.ParameterDefinition{
		{ParamName: "x", ValidValue: contract.Of("ok"), Assertions: []string{"defined"}},
	})

	var verr *verifier.VerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "defined", verr.Assertion)
	assert.Equal(t, "x", verr.Param)
	assert.EqualError(t, verr.Cause, "Parameter x must be of type string.")
}

func TestVerifyAssertions_PanickingTarget(t *testing.T) {
	target := func(args contract.Args) error {
		contract.Must(contract.Require("name", args.At(0), contract.Defined, contract.NotNull, contract.String))
		return nil
	}

	err := verifier.VerifyAssertions(target, []verifier.ParameterDefinition{
		{ParamName: "name", ValidValue: contract.Of("bob"), Assertions: []string{"defined", "notNull", "string"}},
	})
	assert.NoError(t, err)
}

func TestVerifyAssertions_CustomRegistry(t *testing.T) {
	reg := assertion.NewRegistry()
	require.NoError(t, reg.Register(assertion.NewEntry("required", contract.Defined, contract.Absent())))

	v := verifier.New(verifier.WithRegistry(reg))
	target := func(args contract.Args) error {
		return contract.CheckDefined("id", args.At(0))
	}

	err := v.VerifyAssertions(target, []verifier.ParameterDefinition{
		{ParamName: "id", ValidValue: contract.Of(7), Assertions: []string{"required"}},
	})
	assert.NoError(t, err)
	assert.Same(t, reg, v.Registry())
}

func TestVerifier_LogsAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewJSONLogger(logging.LoggerConfig{
		Output:  &buf,
		Level:   logging.LevelDebug,
		Verbose: true,
	})
	require.NoError(t, err)
	m := metrics.NewInMemoryMetrics()

	v := verifier.New(verifier.WithLogger(logger), verifier.WithMetrics(m))

	err = v.VerifyAssertions(onlyFirstNotNull, []verifier.ParameterDefinition{
		{ParamName: "a", ValidValue: contract.Of(1), Assertions: []string{"notNull"}},
		{ParamName: "b", ValidValue: contract.Of(2), Assertions: []string{"notNull"}},
	})
	require.Error(t, err)

	assert.Equal(t, 1, m.ProbeCount("notNull", true))
	assert.Equal(t, 1, m.ProbeCount("notNull", false))

	out := buf.String()
	assert.Contains(t, out, `"assertion verification failed"`)
	assert.Contains(t, out, `"parameter":"b"`)
	assert.Contains(t, out, `"probe":"null"`)
}
