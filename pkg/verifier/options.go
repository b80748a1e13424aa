package verifier

import (
	"digital.vasic.paramcheck/pkg/assertion"
	"digital.vasic.paramcheck/pkg/logging"
	"digital.vasic.paramcheck/pkg/metrics"
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithRegistry sets the assertion registry.
func WithRegistry(reg assertion.Registry) Option {
	return func(v *Verifier) {
		v.registry = reg
	}
}

// WithLogger sets the logger used to trace probes.
func WithLogger(logger logging.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// WithMetrics sets the metrics sink for probe outcomes.
func WithMetrics(m metrics.VerificationMetrics) Option {
	return func(v *Verifier) {
		v.metrics = m
	}
}
