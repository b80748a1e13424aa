package report

import (
	"fmt"
	"strings"
	"time"

	"digital.vasic.paramcheck/pkg/runner"
)

// MarkdownReporter renders summaries as a Markdown document.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// Extension returns "md".
func (r *MarkdownReporter) Extension() string { return "md" }

// Generate renders the summary as Markdown.
func (r *MarkdownReporter) Generate(summary *runner.Summary) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# Parameter Contract Report\n\n")
	sb.WriteString(fmt.Sprintf("**Run ID:** %s\n\n", summary.RunID))
	sb.WriteString(fmt.Sprintf(
		"**Started:** %s\n\n",
		summary.StartedAt.Format(time.RFC3339),
	))

	sb.WriteString("## Contracts\n\n")
	sb.WriteString("| Contract | Target | Status | Duration |\n")
	sb.WriteString("|----------|--------|--------|----------|\n")
	for _, res := range summary.Results {
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %s | %v |\n",
			escapeCell(res.ContractID), escapeCell(res.Target),
			strings.ToUpper(res.Status), res.Duration,
		))
	}

	var failures []*runner.Result
	for _, res := range summary.Results {
		if res.Status != runner.StatusPassed {
			failures = append(failures, res)
		}
	}
	if len(failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, res := range failures {
			sb.WriteString(fmt.Sprintf("### %s\n\n", res.ContractID))
			sb.WriteString(fmt.Sprintf("- Error: %s\n", res.Error))
			if res.Param != "" {
				sb.WriteString(fmt.Sprintf(
					"- Parameter: `%s`\n", res.Param,
				))
			}
			if res.Observed != "" {
				sb.WriteString(fmt.Sprintf(
					"- Observed: %s\n", res.Observed,
				))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total | %d |\n", summary.Total))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.Passed))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.Failed))
	sb.WriteString(fmt.Sprintf("| Errored | %d |\n", summary.Errored))
	sb.WriteString(fmt.Sprintf("| Skipped | %d |\n", summary.Skipped))
	sb.WriteString(fmt.Sprintf("| Pass Rate | %.0f%% |\n", passRate(summary)*100))
	sb.WriteString(fmt.Sprintf("| Duration | %v |\n", summary.Duration))

	return []byte(sb.String()), nil
}

func passRate(s *runner.Summary) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
