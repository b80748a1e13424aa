// Package report renders suite run summaries as JSON or
// Markdown and keeps a run history.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"digital.vasic.paramcheck/pkg/runner"
)

// Reporter renders a run summary.
type Reporter interface {
	// Generate renders the summary.
	Generate(summary *runner.Summary) ([]byte, error)

	// Extension is the file extension of generated reports,
	// without the dot.
	Extension() string
}

// Write renders summary with reporter into w.
func Write(w io.Writer, reporter Reporter, summary *runner.Summary) error {
	data, err := reporter.Generate(summary)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile renders summary into dir as
// paramcheck-<runID>.<ext> and returns the written path.
func WriteFile(
	dir string,
	reporter Reporter,
	summary *runner.Summary,
) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	data, err := reporter.Generate(summary)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf(
		"paramcheck-%s.%s", summary.RunID, reporter.Extension(),
	))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// WriteAll writes one file per reporter into dir.
func WriteAll(
	dir string,
	summary *runner.Summary,
	reporters ...Reporter,
) ([]string, error) {
	paths := make([]string, 0, len(reporters))
	for _, r := range reporters {
		p, err := WriteFile(dir, r, summary)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
