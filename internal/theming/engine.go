// Package theming runs the apply, cycle and init flows over the configured
// items.
package theming

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"huectl/internal/config"
	"huectl/internal/cycle"
	"huectl/internal/hook"
	"huectl/internal/render"
	"huectl/internal/reporting"
	"huectl/internal/scheme"
	"huectl/internal/state"
	"huectl/pkg/logging"
)

// ErrNoCurrentScheme is returned when a command needs the current scheme but
// none has been applied.
var ErrNoCurrentScheme = errors.New("no scheme has been applied yet")

// HookRunner executes item and global hooks.
type HookRunner interface {
	Invoke(ctx context.Context, item config.Item, artifactPath string, s *scheme.Scheme, op hook.Operation) error
	RunGlobal(ctx context.Context, hook string, s *scheme.Scheme, op hook.Operation) error
}

// Engine applies schemes to the items of one configuration.
type Engine struct {
	Config   config.Config
	DataDir  string
	Hooks    HookRunner
	Reporter reporting.Reporter
}

// NewEngine creates an engine running hooks through cfg.Shell. A nil
// reporter discards results.
func NewEngine(cfg config.Config, dataDir string, reporter reporting.Reporter) *Engine {
	if reporter == nil {
		reporter = reporting.NewConsoleReporter(io.Discard, true)
	}
	return &Engine{
		Config:   cfg,
		DataDir:  dataDir,
		Hooks:    hook.NewInvoker(cfg.Shell),
		Reporter: reporter,
	}
}

// SchemeDirs returns the scheme search directories in priority order.
func (e *Engine) SchemeDirs() []string {
	return config.SchemeSearchDirs(e.DataDir)
}

// Apply resolves fullName and applies it to every item. Resolution errors
// abort before any item is touched. Per-item failures are collected in the
// report and do not stop the run; the current scheme is persisted once all
// items have been processed.
func (e *Engine) Apply(ctx context.Context, fullName string) (*reporting.Report, error) {
	return e.apply(ctx, fullName, hook.OperationApply)
}

// Init re-applies the current scheme, falling back to the default scheme and
// then to config.FallbackScheme.
func (e *Engine) Init(ctx context.Context) (*reporting.Report, error) {
	current, err := state.Read(e.DataDir)
	if err != nil {
		return nil, err
	}
	name := current
	if name == "" {
		name = e.Config.DefaultScheme
	}
	if name == "" {
		name = config.FallbackScheme
	}
	return e.apply(ctx, name, hook.OperationInit)
}

// Cycle applies the scheme following the current one in the cycle list. It
// returns a nil report when there is nothing to apply.
func (e *Engine) Cycle(ctx context.Context) (*reporting.Report, error) {
	current, err := state.Read(e.DataDir)
	if err != nil {
		return nil, err
	}

	list := cycle.BuildList(e.Config.DefaultScheme, e.Config.PreferredSchemes)
	next := cycle.Next(current, list)
	if next == "" {
		logging.Info("Cycle", "No default-scheme or preferred-schemes configured and no scheme applied; nothing to do")
		return nil, nil
	}

	logging.Debug("Cycle", "Cycling from %q to %q (list: %v)", current, next, list)
	return e.apply(ctx, next, hook.OperationApply)
}

// Current loads the current scheme.
func (e *Engine) Current() (*scheme.Scheme, error) {
	current, err := state.Read(e.DataDir)
	if err != nil {
		return nil, err
	}
	if current == "" {
		return nil, ErrNoCurrentScheme
	}
	return scheme.Resolve(current, e.SchemeDirs())
}

// Schemes lists the installed schemes.
func (e *Engine) Schemes() ([]scheme.Identifier, error) {
	return scheme.List(e.SchemeDirs())
}

func (e *Engine) apply(ctx context.Context, fullName string, op hook.Operation) (*reporting.Report, error) {
	if err := e.Config.Validate(); err != nil {
		return nil, err
	}

	s, err := scheme.Resolve(fullName, e.SchemeDirs())
	if err != nil {
		return nil, err
	}
	logging.Info("Apply", "Applying %s to %d item(s)", s.Identifier, len(e.Config.Items))

	// Every artifact lands in the data directory, so failing to create it
	// ends the run.
	if err := os.MkdirAll(e.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", e.DataDir, err)
	}

	report := reporting.NewReport(s.Identifier.String(), string(op))
	for _, item := range e.Config.Items {
		result := e.applyItem(ctx, item, s, op)
		report.Add(result)
		e.Reporter.Item(result)
	}

	for _, h := range e.Config.Hooks {
		if err := e.Hooks.RunGlobal(ctx, h, s, op); err != nil {
			report.HookErrors = append(report.HookErrors, err)
		}
	}

	if err := state.Write(e.DataDir, s.Identifier.String()); err != nil {
		return report, err
	}

	e.Reporter.Summary(report)
	return report, nil
}

// applyItem renders and hooks a single item. Failures are recorded in the
// result and never stop the remaining items.
func (e *Engine) applyItem(ctx context.Context, item config.Item, s *scheme.Scheme, op hook.Operation) reporting.ItemResult {
	start := time.Now()
	result := reporting.ItemResult{Item: item.Name}

	if !item.Supports(s.System) {
		result.Status = reporting.StatusSkipped
		result.Err = fmt.Errorf("%s is not in supported-systems %v", s.System, item.SupportedSystems)
		return result
	}

	artifact, err := render.Render(item, s, e.DataDir)
	if err != nil {
		result.Status = reporting.StatusRenderFailed
		if errors.Is(err, render.ErrThemeMissing) {
			result.Status = reporting.StatusThemeMissing
		}
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Artifact = artifact.Path

	if err := e.Hooks.Invoke(ctx, item, artifact.Path, s, op); err != nil {
		result.Status = reporting.StatusHookFailed
		result.Err = err
	} else {
		result.Status = reporting.StatusApplied
	}
	result.Duration = time.Since(start)
	return result
}
