// Package runner verifies the contracts of a bank against the
// functions of a target registry.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"digital.vasic.paramcheck/pkg/assertion"
	"digital.vasic.paramcheck/pkg/bank"
	"digital.vasic.paramcheck/pkg/logging"
	"digital.vasic.paramcheck/pkg/metrics"
	"digital.vasic.paramcheck/pkg/registry"
	"digital.vasic.paramcheck/pkg/verifier"
)

// Runner executes bank contracts.
type Runner struct {
	registry registry.Registry
	verifier *verifier.Verifier
	logger   logging.Logger
	metrics  metrics.VerificationMetrics
	config   *Config

	newRunID func() (string, error)
}

// NewRunner creates a Runner using the default target registry,
// a null logger, no-op metrics and DefaultConfig. When no
// verifier is supplied one is built that shares the runner's
// logger and metrics.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: registry.Default,
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopMetrics{},
		config:   DefaultConfig(),
		newRunID: NewRunID,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.verifier == nil {
		r.verifier = verifier.New(
			verifier.WithLogger(r.logger),
			verifier.WithMetrics(r.metrics),
		)
	}
	return r
}

// Run verifies a single contract. It never returns nil; setup
// problems are reported as StatusError.
func (r *Runner) Run(ctx context.Context, c *bank.Contract) *Result {
	start := time.Now()
	result := &Result{
		ContractID: c.ID,
		Target:     c.Target,
		StartTime:  start,
	}

	defer func() {
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(start)
		r.metrics.RecordContract(
			result.ContractID, result.Status, result.Duration,
		)
	}()

	if err := ctx.Err(); err != nil {
		result.Status = StatusSkipped
		result.Error = err.Error()
		return result
	}

	fn, err := r.registry.Get(c.Target)
	if err != nil {
		result.Status = StatusError
		result.Error = err.Error()
		r.logger.Error("target lookup failed",
			logging.StringField("contract", c.ID),
			logging.ErrorField(err),
		)
		return result
	}

	err = r.verifier.VerifyAssertions(fn, c.Definitions())
	classify(result, err)

	if result.Status == StatusPassed {
		r.logger.Debug("contract passed",
			logging.StringField("contract", c.ID),
		)
	} else {
		r.logger.Warn("contract did not pass",
			logging.StringField("contract", c.ID),
			logging.StringField("status", result.Status),
			logging.StringField("error", result.Error),
		)
	}
	return result
}

// classify maps a VerifyAssertions outcome onto the result.
// Assertion failures are StatusFailed; anything else, such as
// a guard violation on the definitions, is StatusError.
func classify(result *Result, err error) {
	if err == nil {
		result.Status = StatusPassed
		return
	}
	result.Error = err.Error()

	var verr *assertion.VerificationError
	var uerr *assertion.UnknownAssertionError
	switch {
	case errors.As(err, &verr):
		result.Status = StatusFailed
		result.Assertion = verr.Assertion
		result.Param = verr.Param
		if verr.Cause != nil {
			result.Observed = verr.Cause.Error()
		}
	case errors.As(err, &uerr):
		result.Status = StatusFailed
		result.Assertion = uerr.Assertion
	default:
		result.Status = StatusError
	}
}

// RunAll verifies contracts in order. With MaxConcurrency above
// one the contracts run in parallel and FailFast is ignored.
// Contracts not verified because ctx was cancelled are reported
// as StatusSkipped. The returned error is non-nil only when ctx
// was cancelled; contract failures are reported through the
// summary.
func (r *Runner) RunAll(
	ctx context.Context,
	contracts []*bank.Contract,
) (*Summary, error) {
	runID, err := r.newRunID()
	if err != nil {
		return nil, fmt.Errorf("run id: %w", err)
	}

	summary := &Summary{
		RunID:     runID,
		StartedAt: time.Now(),
		Results:   make([]*Result, 0, len(contracts)),
	}
	r.metrics.IncrementRunTotal()
	r.logger.Info("run started",
		logging.StringField("run_id", runID),
		logging.IntField("contracts", len(contracts)),
		logging.IntField("max_concurrency", r.config.MaxConcurrency),
	)

	var runErr error
	if r.config.MaxConcurrency > 1 {
		var results []*Result
		results, runErr = runParallel(
			ctx, r, contracts, r.config.MaxConcurrency,
		)
		for _, res := range results {
			summary.add(res)
		}
	} else {
		runErr = r.runSequential(ctx, contracts, summary)
	}

	summary.FinishedAt = time.Now()
	summary.Duration = summary.FinishedAt.Sub(summary.StartedAt)
	r.logger.Info("run finished",
		logging.StringField("run_id", runID),
		logging.IntField("passed", summary.Passed),
		logging.IntField("failed", summary.Failed),
		logging.IntField("errored", summary.Errored),
		logging.IntField("skipped", summary.Skipped),
	)
	return summary, runErr
}

func (r *Runner) runSequential(
	ctx context.Context,
	contracts []*bank.Contract,
	summary *Summary,
) error {
	for _, c := range contracts {
		res := r.Run(ctx, c)
		summary.add(res)
		if res.Status == StatusSkipped {
			continue
		}
		if r.config.FailFast && res.Status != StatusPassed {
			r.logger.Info("fail fast: stopping run",
				logging.StringField("contract", c.ID),
			)
			return nil
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run cancelled: %w", err)
	}
	return nil
}

// RunBank verifies every contract of b in ID order.
func (r *Runner) RunBank(
	ctx context.Context,
	b *bank.Bank,
) (*Summary, error) {
	return r.RunAll(ctx, b.All())
}

// LoadBanks loads every file matched by the configured bank
// patterns into a new bank.
func (r *Runner) LoadBanks() (*bank.Bank, error) {
	b := bank.New()
	for _, pattern := range r.config.Banks {
		n, err := b.LoadGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("load banks %s: %w", pattern, err)
		}
		r.logger.Debug("bank pattern loaded",
			logging.StringField("pattern", pattern),
			logging.IntField("files", n),
		)
	}
	return b, nil
}
