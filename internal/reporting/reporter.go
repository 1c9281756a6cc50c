package reporting

import (
	"fmt"
	"time"
)

// ItemStatus is the outcome of processing one item during an apply.
type ItemStatus string

const (
	StatusApplied      ItemStatus = "applied"       // rendered, hook succeeded or absent
	StatusSkipped      ItemStatus = "skipped"       // item does not support the scheme's system
	StatusThemeMissing ItemStatus = "theme-missing" // no theme file for the scheme
	StatusRenderFailed ItemStatus = "render-failed" // theme file could not be read or written
	StatusHookFailed   ItemStatus = "hook-failed"   // rendered, but the hook failed
)

// String makes ItemStatus satisfy the fmt.Stringer interface.
func (s ItemStatus) String() string {
	return string(s)
}

// Failed reports whether the status counts as a failure in the summary.
func (s ItemStatus) Failed() bool {
	return s == StatusThemeMissing || s == StatusRenderFailed || s == StatusHookFailed
}

// ItemResult records what happened to a single item.
type ItemResult struct {
	Item     string
	Status   ItemStatus
	Artifact string // rendered file, empty unless the theme was written
	Err      error
	Duration time.Duration
}

// String provides a simple string representation for logs.
func (r ItemResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", r.Item, r.Status, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Item, r.Status)
}

// Report collects the results of one apply run. Side effects happen eagerly
// per item; the report only describes them.
type Report struct {
	Scheme    string
	Operation string
	StartedAt time.Time
	Items     []ItemResult
	// HookErrors holds failures of the global hooks run after all items.
	HookErrors []error
}

// NewReport starts an empty report.
func NewReport(schemeID, operation string) *Report {
	return &Report{
		Scheme:    schemeID,
		Operation: operation,
		StartedAt: time.Now(),
	}
}

// Add appends a result.
func (r *Report) Add(result ItemResult) {
	r.Items = append(r.Items, result)
}

// Count returns the number of items with the given status.
func (r *Report) Count(status ItemStatus) int {
	n := 0
	for _, item := range r.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// Failures returns the failed item results in processing order.
func (r *Report) Failures() []ItemResult {
	var failed []ItemResult
	for _, item := range r.Items {
		if item.Status.Failed() {
			failed = append(failed, item)
		}
	}
	return failed
}

// OK reports whether every item and global hook succeeded or was skipped.
func (r *Report) OK() bool {
	return len(r.Failures()) == 0 && len(r.HookErrors) == 0
}

// Reporter receives results as they happen and the final report.
type Reporter interface {
	Item(result ItemResult)
	Summary(report *Report)
}
