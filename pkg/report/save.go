package report

import (
	"fmt"
	"path/filepath"

	"digital.vasic.paramcheck/pkg/runner"
)

// HistoryFile is the run history kept in the report directory.
const HistoryFile = "history.jsonl"

// Save writes the JSON and Markdown reports for summary into
// cfg.ReportDir and appends the run to the directory's history
// file. It does nothing when ReportDir is empty.
func Save(cfg *runner.Config, summary *runner.Summary) ([]string, error) {
	if cfg == nil || cfg.ReportDir == "" {
		return nil, nil
	}

	paths, err := WriteAll(cfg.ReportDir, summary,
		NewJSONReporter(true), NewMarkdownReporter(),
	)
	if err != nil {
		return paths, err
	}

	history := filepath.Join(cfg.ReportDir, HistoryFile)
	if err := AppendToHistory(history, summary, paths[0]); err != nil {
		return paths, fmt.Errorf("failed to record history: %w", err)
	}
	return paths, nil
}
