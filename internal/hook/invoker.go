// Package hook runs the user commands configured for items after their theme
// file has been rendered.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"huectl/internal/config"
	"huectl/internal/scheme"
	"huectl/pkg/logging"

	"github.com/mattn/go-shellwords"
)

// ErrHookFailed is returned when a hook cannot be started or exits non-zero.
var ErrHookFailed = errors.New("hook failed")

// For mocking in tests
var lookPath = exec.LookPath

// BuildCommand embeds hook into the shell template at its "{}" and splits the
// result into argv using shell quoting rules. Unquoted operators such as ";"
// or "|" are rejected: they only work inside the shell's quoted argument.
func BuildCommand(hook, shell string) ([]string, error) {
	line := strings.Replace(shell, config.ShellPlaceholder, hook, 1)
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("unquoted shell operator at offset %d in command %q", p.Position, line)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command from shell template %q", shell)
	}
	return args, nil
}

// Invoker runs hooks synchronously through the configured shell template.
type Invoker struct {
	Shell  string
	Stdout io.Writer
	Stderr io.Writer
}

// NewInvoker creates an invoker writing hook output to the process's stdout
// and stderr.
func NewInvoker(shell string) *Invoker {
	return &Invoker{
		Shell:  shell,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Invoke runs item's hook for a rendered artifact. Items without a hook are a
// no-op.
func (i *Invoker) Invoke(ctx context.Context, item config.Item, artifactPath string, s *scheme.Scheme, op Operation) error {
	if strings.TrimSpace(item.Hook) == "" {
		return nil
	}
	if err := i.run(ctx, Substitute(item.Hook, artifactPath, op), s); err != nil {
		return fmt.Errorf("item %q: %w", item.Name, err)
	}
	return nil
}

// RunGlobal runs a hook that is not bound to an item. Only %o is meaningful.
func (i *Invoker) RunGlobal(ctx context.Context, hook string, s *scheme.Scheme, op Operation) error {
	if strings.TrimSpace(hook) == "" {
		return nil
	}
	return i.run(ctx, Substitute(hook, "", op), s)
}

func (i *Invoker) run(ctx context.Context, hook string, s *scheme.Scheme) error {
	args, err := BuildCommand(hook, i.Shell)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHookFailed, err)
	}
	if _, err := lookPath(args[0]); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrHookFailed, args[0], err)
	}

	logging.Debug("Hook", "Running %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = append(os.Environ(), Env(s)...)
	cmd.Stdout = i.Stdout
	cmd.Stderr = i.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %q exited with status %d", ErrHookFailed, hook, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %q: %v", ErrHookFailed, hook, err)
	}
	return nil
}
