package reporting

import (
	"fmt"
	"io"
	"time"

	"huectl/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleReporter logs each item through pkg/logging and prints a summary
// table at the end.
type ConsoleReporter struct {
	out   io.Writer
	quiet bool
}

// NewConsoleReporter creates a reporter printing its summary to out. A quiet
// reporter only logs.
func NewConsoleReporter(out io.Writer, quiet bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, quiet: quiet}
}

// Item logs a single result at a level matching its status.
func (c *ConsoleReporter) Item(result ItemResult) {
	subsystem := "Item-" + result.Item
	switch result.Status {
	case StatusApplied:
		logging.Info(subsystem, "Applied %s", result.Artifact)
	case StatusSkipped:
		logging.Debug(subsystem, "Skipped: %v", result.Err)
	case StatusThemeMissing:
		logging.Warn(subsystem, "Theme missing: %v", result.Err)
	case StatusRenderFailed:
		logging.Error(subsystem, result.Err, "Render failed")
	case StatusHookFailed:
		logging.Error(subsystem, result.Err, "Hook failed")
	}
}

// Summary renders one row per item.
func (c *ConsoleReporter) Summary(report *Report) {
	for _, err := range report.HookErrors {
		logging.Error("Hooks", err, "Global hook failed")
	}
	if c.quiet || len(report.Items) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%s %s", report.Operation, report.Scheme))
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("ITEM"),
		text.FgHiCyan.Sprint("STATUS"),
		text.FgHiCyan.Sprint("DETAIL"),
		text.FgHiCyan.Sprint("TIME"),
	})

	for _, item := range report.Items {
		detail := item.Artifact
		if item.Err != nil && item.Status != StatusApplied {
			detail = item.Err.Error()
		}
		t.AppendRow(table.Row{item.Item, formatStatus(item.Status), detail, formatDuration(item.Duration)})
	}

	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("%d/%d applied", report.Count(StatusApplied), len(report.Items)),
		fmt.Sprintf("%d failed", len(report.Failures())),
		formatDuration(time.Since(report.StartedAt)),
	})
	t.Render()
}

func formatStatus(status ItemStatus) string {
	switch status {
	case StatusApplied:
		return text.FgGreen.Sprint(status.String())
	case StatusSkipped:
		return text.FgHiBlack.Sprint(status.String())
	case StatusThemeMissing:
		return text.FgYellow.Sprint(status.String())
	case StatusRenderFailed:
		return text.FgRed.Sprint(status.String())
	case StatusHookFailed:
		return text.FgRed.Sprint(status.String())
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}
