package runner

import (
	"digital.vasic.paramcheck/pkg/logging"
	"digital.vasic.paramcheck/pkg/metrics"
	"digital.vasic.paramcheck/pkg/registry"
	"digital.vasic.paramcheck/pkg/verifier"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRegistry sets the target registry used to resolve
// contract targets.
func WithRegistry(reg registry.Registry) RunnerOption {
	return func(r *Runner) {
		r.registry = reg
	}
}

// WithVerifier sets the verifier. By default the runner builds
// one sharing its logger and metrics.
func WithVerifier(v *verifier.Verifier) RunnerOption {
	return func(r *Runner) {
		r.verifier = v
	}
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.VerificationMetrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithConfig sets the run configuration.
func WithConfig(cfg *Config) RunnerOption {
	return func(r *Runner) {
		r.config = cfg
	}
}
