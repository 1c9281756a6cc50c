package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"huectl/internal/config"
	"huectl/internal/repo"
	"huectl/internal/reporting"
	"huectl/internal/scheme"
	"huectl/internal/state"
	"huectl/internal/tui"
	"huectl/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default since rootCmd is shared
// between tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

type cliFixture struct {
	dataDir    string
	srcDir     string
	configPath string
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	f := &cliFixture{dataDir: t.TempDir(), srcDir: t.TempDir()}
	f.configPath = filepath.Join(t.TempDir(), "config.yaml")

	builtin := config.SchemeSearchDirs(f.dataDir)[0]
	for _, id := range []scheme.Identifier{
		{System: scheme.Base16, Slug: "mocha"},
		{System: scheme.Base16, Slug: "ocean"},
		{System: scheme.Base24, Slug: "dracula"},
	} {
		var b strings.Builder
		fmt.Fprintf(&b, "system: %q\nname: %q\nauthor: \"Tester\"\npalette:\n", id.System, strings.ToUpper(id.Slug))
		for _, slot := range id.System.Slots() {
			fmt.Fprintf(&b, "  %s: \"#202020\"\n", slot)
		}
		path := filepath.Join(builtin, string(id.System), id.Slug+".yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	}

	themes := filepath.Join(f.srcDir, "scripts")
	require.NoError(t, os.MkdirAll(themes, 0o755))
	for _, name := range []string{"base16-mocha.sh", "base16-ocean.sh"} {
		require.NoError(t, os.WriteFile(filepath.Join(themes, name), []byte("# "+name), 0o644))
	}

	f.writeConfig(t, fmt.Sprintf(`default-scheme: base16-mocha
preferred-schemes: [base16-ocean]
items:
  - name: shell
    path: %s
    themes-dir: scripts
`, f.srcDir))
	return f
}

func (f *cliFixture) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.configPath, []byte(content), 0o644))
}

func (f *cliFixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommand(t, append([]string{"--config", f.configPath, "--data-dir", f.dataDir}, args...)...)
}

func TestApplyCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "apply", "base16-mocha")
	require.NoError(t, err)
	assert.Contains(t, out, "shell")

	content, err := os.ReadFile(filepath.Join(f.dataDir, "base16-shell-scripts-file.sh"))
	require.NoError(t, err)
	assert.Equal(t, "# base16-mocha.sh", string(content))

	current, err := state.Read(f.dataDir)
	require.NoError(t, err)
	assert.Equal(t, "base16-mocha", current)
}

func TestApplyCommand_Quiet(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "apply", "--quiet", "base16-mocha")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestApplyCommand_Errors(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run(t, "apply", "mocha")
	assert.ErrorIs(t, err, scheme.ErrInvalidFormat)

	_, err = f.run(t, "apply", "base8-mocha")
	assert.ErrorIs(t, err, scheme.ErrUnsupportedSystem)

	_, err = f.run(t, "apply", "base16-nope")
	assert.ErrorIs(t, err, scheme.ErrSchemeNotFound)

	_, err = f.run(t, "apply")
	assert.Error(t, err)
}

func TestApplyCommand_DuplicateItemsFailBeforeTouchingFilesystem(t *testing.T) {
	f := newCLIFixture(t)
	f.writeConfig(t, fmt.Sprintf(`items:
  - name: shell
    path: %[1]s
    themes-dir: scripts
  - name: shell
    path: %[1]s
    themes-dir: scripts
`, f.srcDir))

	_, err := f.run(t, "apply", "base16-mocha")
	assert.ErrorIs(t, err, config.ErrDuplicateItem)

	_, statErr := os.Stat(filepath.Join(f.dataDir, "base16-shell-scripts-file.sh"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCycleCommand(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run(t, "cycle", "-q")
	require.NoError(t, err)
	current, _ := state.Read(f.dataDir)
	assert.Equal(t, "base16-mocha", current)

	_, err = f.run(t, "cycle", "-q")
	require.NoError(t, err)
	current, _ = state.Read(f.dataDir)
	assert.Equal(t, "base16-ocean", current)

	_, err = f.run(t, "cycle", "-q")
	require.NoError(t, err)
	current, _ = state.Read(f.dataDir)
	assert.Equal(t, "base16-mocha", current)
}

func TestCycleCommand_NothingConfigured(t *testing.T) {
	f := newCLIFixture(t)
	f.writeConfig(t, "items: []\n")

	out, err := f.run(t, "cycle")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to cycle")
}

func TestInitCommand_UsesDefaultScheme(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "init")
	require.NoError(t, err)
	assert.Empty(t, out)

	current, _ := state.Read(f.dataDir)
	assert.Equal(t, "base16-mocha", current)
}

func TestCurrentCommand(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run(t, "current")
	assert.Error(t, err, "nothing applied yet")

	require.NoError(t, state.Write(f.dataDir, "base16-ocean"))

	out, err := f.run(t, "current")
	require.NoError(t, err)
	assert.Equal(t, "base16-ocean\n", out)

	out, err = f.run(t, "current", "name")
	require.NoError(t, err)
	assert.Equal(t, "OCEAN\n", out)

	out, err = f.run(t, "current", "author")
	require.NoError(t, err)
	assert.Equal(t, "Tester\n", out)

	_, err = f.run(t, "current", "colour")
	assert.Error(t, err)
}

func TestCurrentCommand_Copy(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, state.Write(f.dataDir, "base16-mocha"))

	var copied string
	original := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	defer func() { clipboardWriteAll = original }()

	_, err := f.run(t, "current", "--copy", "slug")
	require.NoError(t, err)
	assert.Equal(t, "mocha", copied)
}

func TestListCommand_JSON(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, state.Write(f.dataDir, "base24-dracula"))

	out, err := f.run(t, "list", "--json")
	require.NoError(t, err)

	var entries []schemeEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "base16-mocha", entries[0].ID)
	assert.Equal(t, "base16-ocean", entries[1].ID)
	assert.Equal(t, "base24-dracula", entries[2].ID)
	assert.True(t, entries[2].Current)
	assert.False(t, entries[0].Current)
}

func TestListCommand_Table(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "list", "--system", "base24")
	require.NoError(t, err)
	assert.Contains(t, out, "base24-dracula")
	assert.NotContains(t, out, "base16-mocha")

	_, err = f.run(t, "list", "--system", "base8")
	assert.ErrorIs(t, err, scheme.ErrUnsupportedSystem)
}

func TestListCommand_SchemesMissing(t *testing.T) {
	f := newCLIFixture(t)
	emptyDataDir := t.TempDir()

	_, err := executeCommand(t, "--config", f.configPath, "--data-dir", emptyDataDir, "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, scheme.ErrSchemesMissing)
	assert.Contains(t, err.Error(), `run "huectl install" first`)
}

func TestInfoCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "info", "base24-dracula")
	require.NoError(t, err)
	assert.Contains(t, out, "DRACULA")
	assert.Contains(t, out, "base17")
	assert.Contains(t, out, "202020")
}

func TestSelectCommand(t *testing.T) {
	f := newCLIFixture(t)

	var offered []string
	original := pickScheme
	pickScheme = func(ids []scheme.Identifier, current string, load tui.SchemeLoader) (string, error) {
		for _, id := range ids {
			offered = append(offered, id.String())
		}
		s, err := load(ids[1])
		if err != nil {
			return "", err
		}
		return s.Identifier.String(), nil
	}
	defer func() { pickScheme = original }()

	_, err := f.run(t, "select", "-q")
	require.NoError(t, err)
	assert.Equal(t, []string{"base16-mocha", "base16-ocean", "base24-dracula"}, offered)

	current, _ := state.Read(f.dataDir)
	assert.Equal(t, "base16-ocean", current)
}

func TestSelectCommand_Cancelled(t *testing.T) {
	f := newCLIFixture(t)

	original := pickScheme
	pickScheme = func([]scheme.Identifier, string, tui.SchemeLoader) (string, error) { return "", nil }
	defer func() { pickScheme = original }()

	out, err := f.run(t, "select")
	require.NoError(t, err)
	assert.Contains(t, out, "No scheme selected")

	current, _ := state.Read(f.dataDir)
	assert.Empty(t, current)
}

func TestInstallAndUpdateCommands(t *testing.T) {
	f := newCLIFixture(t)
	// The fixture's schemes directory is not a clone, so install elsewhere.
	f.dataDir = t.TempDir()
	f.writeConfig(t, `items:
  - name: shell
    path: https://example.com/tinted-shell.git
    themes-dir: scripts
`)

	var calls []string
	original := newRepoManager
	newRepoManager = func(dataDir string) *repo.Manager {
		return &repo.Manager{DataDir: dataDir, Git: func(ctx context.Context, dir string, args ...string) error {
			calls = append(calls, strings.Join(args, " "))
			return nil
		}}
	}
	defer func() { newRepoManager = original }()

	out, err := f.run(t, "install")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed into")
	require.Len(t, calls, 2, "schemes repository and the shell item")
	assert.Contains(t, calls[1], "https://example.com/tinted-shell.git")

	calls = nil
	_, err = f.run(t, "update")
	require.NoError(t, err)
	assert.Len(t, calls, 2)
}

func TestConfigCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "config", "--config-path")
	require.NoError(t, err)
	assert.Equal(t, f.configPath+"\n", out)

	out, err = f.run(t, "config", "--data-dir-path")
	require.NoError(t, err)
	assert.Equal(t, f.dataDir+"\n", out)

	out, err = f.run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "default-scheme: base16-mocha")
	assert.Contains(t, out, "sh -c")

	_, err = f.run(t, "config", "--config-path", "--data-dir-path")
	assert.Error(t, err)
}

func TestApplyCommand_ItemFailureKeepsExitStatus(t *testing.T) {
	f := newCLIFixture(t)
	f.writeConfig(t, fmt.Sprintf(`items:
  - name: vim
    path: %[1]s
    themes-dir: colors
  - name: shell
    path: %[1]s
    themes-dir: scripts
`, f.srcDir))

	out, err := f.run(t, "apply", "base16-ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "theme-missing")
	assert.FileExists(t, filepath.Join(f.dataDir, "base16-shell-scripts-file.sh"))

	current, _ := state.Read(f.dataDir)
	assert.Equal(t, "base16-ocean", current)
}

func TestFinishRun(t *testing.T) {
	var logs bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &logs)

	report := reporting.NewReport("base16-mocha", "apply")
	report.Add(reporting.ItemResult{Item: "shell", Status: reporting.StatusApplied})
	require.NoError(t, finishRun(report, nil))
	assert.Empty(t, logs.String())

	report.Add(reporting.ItemResult{Item: "vim", Status: reporting.StatusRenderFailed})
	require.NoError(t, finishRun(report, nil))
	assert.Contains(t, logs.String(), "base16-mocha: 1 item(s) and 0 global hook(s) failed")

	boom := fmt.Errorf("boom")
	assert.Equal(t, boom, finishRun(nil, boom))
}
