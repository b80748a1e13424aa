package runner

import (
	"time"
)

// Status constants for contract verification outcomes.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Result captures the outcome of verifying one contract.
type Result struct {
	// ContractID is the bank ID of the contract.
	ContractID string `json:"contract_id"`

	// Target is the registry name of the verified function.
	Target string `json:"target"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Assertion and Param identify the failing pair when
	// Status is StatusFailed.
	Assertion string `json:"assertion,omitempty"`
	Param     string `json:"param,omitempty"`

	// Observed is what the target returned for the failing
	// probe, empty when it accepted the probe.
	Observed string `json:"observed,omitempty"`

	// Error is the verification or setup error message.
	Error string `json:"error,omitempty"`

	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// Summary aggregates the results of one suite run.
type Summary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Duration   time.Duration `json:"duration"`
	Total      int           `json:"total"`
	Passed     int           `json:"passed"`
	Failed     int           `json:"failed"`
	Errored    int           `json:"errored"`
	Skipped    int           `json:"skipped"`
	Results    []*Result     `json:"results"`
}

// OK reports whether every contract passed.
func (s *Summary) OK() bool {
	return s.Passed == s.Total
}

func (s *Summary) add(r *Result) {
	s.Results = append(s.Results, r)
	s.Total++
	switch r.Status {
	case StatusPassed:
		s.Passed++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	default:
		s.Errored++
	}
}
