package verifier

import (
	"fmt"

	"digital.vasic.paramcheck/pkg/assertion"
	"digital.vasic.paramcheck/pkg/contract"
)

// ProxyOptions describes the call a proxy isolates.
type ProxyOptions struct {
	// ValidValues is the baseline argument vector.
	ValidValues contract.Args
	// ParameterIndex is the slot replaced by the probe.
	ParameterIndex int
	// Func is the target function.
	Func contract.Func
}

// BuildProxy returns a proxy that calls opts.Func with
// opts.ValidValues, slot opts.ParameterIndex replaced by the
// probe. Building has no side effects; the valid values are
// copied on every call and never modified.
func BuildProxy(opts *ProxyOptions) (assertion.Proxy, error) {
	if err := contract.Guard("options", opts); err != nil {
		return nil, err
	}
	if opts.Func == nil {
		return nil, contract.Violate(contract.Function, "func")
	}
	if opts.ParameterIndex < 0 {
		return nil, fmt.Errorf(
			"parameter index must not be negative: %d",
			opts.ParameterIndex,
		)
	}

	valid := opts.ValidValues
	index := opts.ParameterIndex
	fn := opts.Func

	return func(probe contract.Arg) error {
		return invoke(fn, valid.With(index, probe))
	}, nil
}

// BuildProxyFrom is BuildProxy for an untyped options value. It
// accepts *ProxyOptions or ProxyOptions and reports the guard
// messages for anything else.
func BuildProxyFrom(options any) (assertion.Proxy, error) {
	if err := contract.Guard("options", options); err != nil {
		return nil, err
	}
	switch o := options.(type) {
	case *ProxyOptions:
		return BuildProxy(o)
	case ProxyOptions:
		return BuildProxy(&o)
	default:
		return nil, contract.Violate(contract.Object, "options")
	}
}

// invoke calls fn and turns a panic into the returned error so
// targets that assert by panicking can be verified too.
func invoke(fn contract.Func, args contract.Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn(args)
}
