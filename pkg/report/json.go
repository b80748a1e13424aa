package report

import (
	"encoding/json"

	"digital.vasic.paramcheck/pkg/runner"
)

// JSONReporter renders summaries as JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Generate renders the summary as JSON.
func (r *JSONReporter) Generate(summary *runner.Summary) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// Extension returns "json".
func (r *JSONReporter) Extension() string { return "json" }
