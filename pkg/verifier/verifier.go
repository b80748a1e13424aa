package verifier

import (
	"errors"

	"digital.vasic.paramcheck/pkg/assertion"
	"digital.vasic.paramcheck/pkg/contract"
	"digital.vasic.paramcheck/pkg/logging"
	"digital.vasic.paramcheck/pkg/metrics"
)

// AssertionOptions identifies one assertion check.
type AssertionOptions struct {
	ParamName     string
	AssertionName string
	Proxy         assertion.Proxy
}

// ParamOptions identifies one parameter and its assertions.
type ParamOptions struct {
	Func        contract.Func
	ValidValues contract.Args
	ParamIndex  int
	ParamName   string
	Assertions  []string
}

// Verifier runs assertion verification against a registry. A
// Verifier holds no per-run state and may be shared between
// goroutines as long as its registry is.
type Verifier struct {
	registry assertion.Registry
	logger   logging.Logger
	metrics  metrics.VerificationMetrics

	buildProxy func(*ProxyOptions) (assertion.Proxy, error)
}

// New creates a Verifier with the built-in registry, a null
// logger and no-op metrics, then applies opts.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		registry:   assertion.NewRegistry(),
		logger:     logging.NullLogger{},
		metrics:    metrics.NoopMetrics{},
		buildProxy: BuildProxy,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the verifier's assertion registry.
func (v *Verifier) Registry() assertion.Registry {
	return v.registry
}

var defaultVerifier = New()

// VerifyAssertions verifies fn with the default verifier.
func VerifyAssertions(
	fn contract.Func,
	defs []ParameterDefinition,
) error {
	return defaultVerifier.VerifyAssertions(fn, defs)
}

// VerifyAssertions checks that fn applies every assertion
// declared in defs. Definitions are positional: defs[i]
// describes argument i. The first failing parameter/assertion
// pair aborts verification and its error is returned.
func (v *Verifier) VerifyAssertions(
	fn contract.Func,
	defs []ParameterDefinition,
) error {
	if len(defs) == 0 {
		return ErrNoDefinitions
	}

	valid := ValidValues(defs)
	for i, d := range defs {
		if err := v.VerifyParam(ParamOptions{
			Func:        fn,
			ValidValues: valid,
			ParamIndex:  i,
			ParamName:   d.ParamName,
			Assertions:  d.Assertions,
		}); err != nil {
			return err
		}
	}
	return nil
}

// VerifyParam builds one proxy for the parameter and checks its
// assertions in declared order, stopping at the first failure.
func (v *Verifier) VerifyParam(opts ParamOptions) error {
	proxy, err := v.buildProxy(&ProxyOptions{
		ValidValues:    opts.ValidValues,
		ParameterIndex: opts.ParamIndex,
		Func:           opts.Func,
	})
	if err != nil {
		return err
	}

	for _, name := range opts.Assertions {
		if err := v.VerifyAssertion(AssertionOptions{
			ParamName:     opts.ParamName,
			AssertionName: name,
			Proxy:         proxy,
		}); err != nil {
			return err
		}
	}
	return nil
}

// VerifyAssertion resolves the named verifier and runs it
// against the proxy.
func (v *Verifier) VerifyAssertion(opts AssertionOptions) error {
	entry, ok := v.registry.Lookup(opts.AssertionName)
	if !ok {
		v.logger.Warn("assertion not implemented",
			logging.StringField("assertion", opts.AssertionName),
			logging.StringField("parameter", opts.ParamName),
		)
		return &assertion.UnknownAssertionError{
			Assertion: opts.AssertionName,
		}
	}

	if opts.Proxy == nil {
		return contract.Violate(contract.Function, "proxy")
	}

	var probes []logging.ProbeLog
	recording := func(probe contract.Arg) error {
		observed := opts.Proxy(probe)
		rec := logging.ProbeLog{
			Assertion: opts.AssertionName,
			Parameter: opts.ParamName,
			Probe:     probe.String(),
		}
		if observed != nil {
			rec.Observed = observed.Error()
		}
		probes = append(probes, rec)
		return observed
	}

	err := entry.Verify(recording, opts.ParamName)
	for _, rec := range probes {
		rec.Passed = err == nil
		v.logger.LogProbe(rec)
	}
	v.metrics.RecordProbe(opts.AssertionName, err == nil)
	if err != nil {
		v.logger.Warn("assertion verification failed",
			logging.StringField("assertion", opts.AssertionName),
			logging.StringField("parameter", opts.ParamName),
			causeField(err),
		)
	}
	return err
}

func causeField(err error) logging.Field {
	var verr *assertion.VerificationError
	if errors.As(err, &verr) && verr.Cause != nil {
		return logging.StringField("observed", verr.Cause.Error())
	}
	return logging.StringField("observed", "<accepted>")
}
