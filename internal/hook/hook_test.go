package hook

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"huectl/internal/config"
	"huectl/internal/scheme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScheme(t *testing.T) *scheme.Scheme {
	t.Helper()
	palette := make(map[string]scheme.Color)
	for _, slot := range scheme.Base16.Slots() {
		c, err := scheme.ParseColor("808080")
		require.NoError(t, err)
		palette[slot] = c
	}
	palette["base00"], _ = scheme.ParseColor("000000")
	palette["base05"], _ = scheme.ParseColor("ffffff")
	palette["base0A"], _ = scheme.ParseColor("#ff8000")
	return &scheme.Scheme{
		Identifier: scheme.Identifier{System: scheme.Base16, Slug: "mocha"},
		Name:       "Mocha",
		Author:     "Chris Kempson",
		Variant:    scheme.VariantDark,
		Palette:    palette,
	}
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"file", "echo %f", `echo "/data/x-file.sh"`},
		{"operation", "notify %o", "notify apply"},
		{"both twice", "%o %f %o %f", `apply "/data/x-file.sh" apply "/data/x-file.sh"`},
		{"unknown kept", "printf '%s %d' %f", `printf '%s %d' "/data/x-file.sh"`},
		{"no placeholders", "true", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, "/data/x-file.sh", OperationApply))
		})
	}
}

func TestSubstitute_ValuesNotReexpanded(t *testing.T) {
	got := Substitute("%f", "/tmp/%o", OperationInit)
	assert.Equal(t, `"/tmp/%o"`, got)
}

func TestBuildCommand(t *testing.T) {
	args, err := BuildCommand(Substitute("echo %f", "/data/x-file.sh", OperationApply), "sh -c '{}'")
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", `echo "/data/x-file.sh"`}, args)

	args, err = BuildCommand(`tmux source-file '/a b/c.conf'`, `bash -lc "{}"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "-lc", `tmux source-file '/a b/c.conf'`}, args)

	args, err = BuildCommand("echo hi", "{}")
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hi"}, args)

	_, err = BuildCommand("echo 'unterminated", "{}")
	assert.Error(t, err)

	_, err = BuildCommand("", "{}")
	assert.Error(t, err)
}

func TestBuildCommand_RejectsUnquotedOperators(t *testing.T) {
	for _, hook := range []string{"echo a; echo b", "echo a | wc -l", "echo a && echo b", "echo a > /tmp/x"} {
		_, err := BuildCommand(hook, "{}")
		assert.Error(t, err, hook)
	}

	args, err := BuildCommand("echo a; echo b", "sh -c '{}'")
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", "echo a; echo b"}, args)
}

func TestInvoke_UnquotedOperatorIsHookFailure(t *testing.T) {
	inv := &Invoker{Shell: "{}", Stdout: io.Discard, Stderr: io.Discard}
	item := config.Item{Name: "shell", Hook: "echo a; echo b"}

	err := inv.Invoke(context.Background(), item, "/data/x", testScheme(t), OperationApply)
	assert.ErrorIs(t, err, ErrHookFailed)
}

func TestEnv(t *testing.T) {
	env := Env(testScheme(t))

	vars := make(map[string]string)
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		require.True(t, ok)
		vars[k] = v
	}

	assert.Equal(t, "base16-mocha", vars["HUECTL_SCHEME_ID"])
	assert.Equal(t, "base16", vars["HUECTL_SCHEME_SYSTEM"])
	assert.Equal(t, "mocha", vars["HUECTL_SCHEME_SLUG"])
	assert.Equal(t, "Mocha", vars["HUECTL_SCHEME_NAME"])
	assert.Equal(t, "Chris Kempson", vars["HUECTL_SCHEME_AUTHOR"])
	assert.Equal(t, "dark", vars["HUECTL_SCHEME_VARIANT"])

	assert.Equal(t, "ff", vars["HUECTL_SCHEME_PALETTE_BASE0A_HEX_R"])
	assert.Equal(t, "80", vars["HUECTL_SCHEME_PALETTE_BASE0A_HEX_G"])
	assert.Equal(t, "00", vars["HUECTL_SCHEME_PALETTE_BASE0A_HEX_B"])
	assert.Equal(t, "255", vars["HUECTL_SCHEME_PALETTE_BASE0A_RGB_R"])
	assert.Equal(t, "128", vars["HUECTL_SCHEME_PALETTE_BASE0A_RGB_G"])
	assert.Equal(t, "0", vars["HUECTL_SCHEME_PALETTE_BASE0A_RGB_B"])
	assert.Equal(t, "1", vars["HUECTL_SCHEME_PALETTE_BASE0A_DEC_R"])
	assert.Equal(t, "0", vars["HUECTL_SCHEME_PALETTE_BASE0A_DEC_B"])
	assert.True(t, strings.HasPrefix(vars["HUECTL_SCHEME_PALETTE_BASE0A_DEC_G"], "0.50196"))

	bg, err := strconv.ParseFloat(vars["HUECTL_SCHEME_LIGHTNESS_BACKGROUND"], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0, bg, 0.01)
	fg, err := strconv.ParseFloat(vars["HUECTL_SCHEME_LIGHTNESS_FOREGROUND"], 64)
	require.NoError(t, err)
	assert.InDelta(t, 100, fg, 0.01)

	// 7 metadata + 2 lightness + 16 slots * 9 channels
	assert.Len(t, env, 7+2+16*9)
	assert.IsIncreasing(t, env)
}

func TestInvoke_RunsHookWithPathAndEnv(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	artifact := filepath.Join(dir, "base16-shell-scripts-file.sh")

	var stdout bytes.Buffer
	inv := &Invoker{Shell: config.DefaultShell, Stdout: &stdout, Stderr: &stdout}
	item := config.Item{Name: "shell", Hook: `printf "%s %s %o" $HUECTL_SCHEME_ID %f > ` + out}

	require.NoError(t, inv.Invoke(context.Background(), item, artifact, testScheme(t), OperationApply))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "base16-mocha "+artifact+" apply", string(data))
}

func TestInvoke_NoHookIsNoop(t *testing.T) {
	inv := &Invoker{Shell: "definitely-not-a-shell -c '{}'"}
	err := inv.Invoke(context.Background(), config.Item{Name: "x"}, "/p", testScheme(t), OperationApply)
	assert.NoError(t, err)
}

func TestInvoke_NonZeroExit(t *testing.T) {
	requireShell(t)
	var stderr bytes.Buffer
	inv := &Invoker{Shell: config.DefaultShell, Stdout: &stderr, Stderr: &stderr}

	err := inv.Invoke(context.Background(), config.Item{Name: "tmux", Hook: "exit 3"}, "/p", testScheme(t), OperationApply)
	assert.ErrorIs(t, err, ErrHookFailed)
	assert.Contains(t, err.Error(), "status 3")
	assert.Contains(t, err.Error(), `"tmux"`)
}

func TestInvoke_CommandNotFound(t *testing.T) {
	originalLookPath := lookPath
	defer func() { lookPath = originalLookPath }()
	lookPath = func(file string) (string, error) { return "", errors.New("not found") }

	inv := NewInvoker(config.DefaultShell)
	err := inv.Invoke(context.Background(), config.Item{Name: "x", Hook: "true"}, "/p", testScheme(t), OperationApply)
	assert.ErrorIs(t, err, ErrHookFailed)
}

func TestRunGlobal(t *testing.T) {
	requireShell(t)
	out := filepath.Join(t.TempDir(), "global")
	inv := &Invoker{Shell: config.DefaultShell, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	require.NoError(t, inv.RunGlobal(context.Background(), "echo %o $HUECTL_SCHEME_VARIANT > "+out, testScheme(t), OperationInit))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "init dark\n", string(data))
}
