package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"digital.vasic.paramcheck/pkg/runner"
)

// HistoricalEntry represents a single run in the historical
// log.
type HistoricalEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	RunID      string    `json:"run_id"`
	Total      int       `json:"total"`
	Passed     int       `json:"passed"`
	Failed     int       `json:"failed"`
	Errored    int       `json:"errored"`
	Skipped    int       `json:"skipped"`
	Duration   string    `json:"duration"`
	ReportPath string    `json:"report_path,omitempty"`
}

// AppendToHistory adds an entry for summary to the historical
// log stored at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	summary *runner.Summary,
	reportPath string,
) error {
	entry := HistoricalEntry{
		Timestamp:  summary.FinishedAt,
		RunID:      summary.RunID,
		Total:      summary.Total,
		Passed:     summary.Passed,
		Failed:     summary.Failed,
		Errored:    summary.Errored,
		Skipped:    summary.Skipped,
		Duration:   summary.Duration.String(),
		ReportPath: reportPath,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
		return fmt.Errorf(
			"failed to create history directory: %w", err,
		)
	}
	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
