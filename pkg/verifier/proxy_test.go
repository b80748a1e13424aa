package verifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.paramcheck/pkg/contract"
)

func TestBuildProxy_Guards(t *testing.T) {
	var missing any
	var nilOpts *ProxyOptions

	_, err := BuildProxyFrom(missing)
	assert.EqualError(t, err, "Parameter options must be specified.")

	_, err = BuildProxyFrom(nilOpts)
	assert.EqualError(t, err, "Parameter options must not be null.")

	_, err = BuildProxyFrom(1)
	assert.EqualError(t, err, "Parameter options must be of type object.")

	_, err = BuildProxy(nil)
	assert.EqualError(t, err, "Parameter options must not be null.")

	_, err = BuildProxy(&ProxyOptions{})
	assert.EqualError(t, err, "Parameter func must be of type function.")

	_, err = BuildProxy(&ProxyOptions{
		ParameterIndex: -1,
		Func:           func(contract.Args) error { return nil },
	})
	assert.Error(t, err)
}

func TestBuildProxy_NoSideEffects(t *testing.T) {
	called := false
	_, err := BuildProxy(&ProxyOptions{
		ValidValues: contract.ArgsOf(1),
		Func: func(contract.Args) error {
			called = true
			return nil
		},
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestBuildProxy_Works(t *testing.T) {
	var calls []contract.Args
	options := ProxyOptions{
		ParameterIndex: 0,
		ValidValues:    contract.ArgsOf("valid1", "valid2"),
		Func: func(args contract.Args) error {
			calls = append(calls, args)
			return nil
		},
	}

	proxy, err := BuildProxyFrom(options)
	require.NoError(t, err)

	require.NoError(t, proxy(contract.Of("invalid value")))

	require.Len(t, calls, 1)
	assert.Equal(t, contract.Of("invalid value"), calls[0].At(0))
	assert.Equal(t, contract.Of("valid2"), calls[0].At(1))
	assert.Equal(t, 2, calls[0].Len())
}

func TestBuildProxy_IsolatesEachProbe(t *testing.T) {
	valid := contract.ArgsOf("a", "b", "c")
	var calls []contract.Args

	proxy, err := BuildProxy(&ProxyOptions{
		ValidValues:    valid,
		ParameterIndex: 1,
		Func: func(args contract.Args) error {
			calls = append(calls, args)
			args[0] = contract.Of("mutated by target")
			return nil
		},
	})
	require.NoError(t, err)

	require.NoError(t, proxy(contract.Null()))
	require.NoError(t, proxy(contract.Absent()))

	require.Len(t, calls, 2)
	assert.Equal(t, contract.Null(), calls[0].At(1))
	assert.Equal(t, contract.Absent(), calls[1].At(1))
	assert.Equal(t, contract.Of("a"), calls[1].At(0))
	assert.Equal(t, contract.Of("c"), calls[1].At(2))
	assert.Equal(t, contract.ArgsOf("a", "b", "c"), valid)
}

func TestBuildProxy_ReturnsTargetError(t *testing.T) {
	proxy, err := BuildProxy(&ProxyOptions{
		ValidValues: contract.ArgsOf(1),
		Func: func(args contract.Args) error {
			return contract.CheckNotNull("a", args.At(0))
		},
	})
	require.NoError(t, err)

	assert.EqualError(t, proxy(contract.Null()), "Parameter a must not be null.")
	assert.NoError(t, proxy(contract.Of(2)))
}

func TestBuildProxy_RecoversPanics(t *testing.T) {
	sentinel := errors.New("boom")
	tests := []struct {
		name   string
		panicV any
		want   string
	}{
		{"error", sentinel, "boom"},
		{"string", "Parameter a must be specified.", "Parameter a must be specified."},
		{"violation", contract.Violate(contract.Defined, "a"), "Parameter a must be specified."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy, err := BuildProxy(&ProxyOptions{
				Func: func(contract.Args) error { panic(tt.panicV) },
			})
			require.NoError(t, err)
			assert.EqualError(t, proxy(contract.Absent()), tt.want)
		})
	}
}
