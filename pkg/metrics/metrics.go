// Package metrics records counters for verification runs.
package metrics

import "time"

// VerificationMetrics defines the interface for recording
// verification metrics.
type VerificationMetrics interface {
	// RecordProbe records the outcome of one probe.
	RecordProbe(assertion string, passed bool)
	// RecordContract records one verified contract.
	RecordContract(contractID, status string, duration time.Duration)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
}

// NoopMetrics is a no-op implementation of VerificationMetrics
// useful when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordProbe(_ string, _ bool)                {}
func (NoopMetrics) RecordContract(_, _ string, _ time.Duration) {}
func (NoopMetrics) IncrementRunTotal()                          {}
