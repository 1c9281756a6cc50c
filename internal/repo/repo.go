// Package repo clones and updates the git repositories huectl reads schemes
// and item themes from.
package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"huectl/internal/config"
	"huectl/pkg/logging"
)

// Repo is a repository managed under the data directory.
type Repo struct {
	Name string
	URL  string
	Dir  string
}

// Repos returns the schemes repository followed by every remote item, in
// configuration order. Local items are not managed.
func Repos(cfg config.Config, dataDir string) []Repo {
	repos := []Repo{{
		Name: config.SchemesRepoName,
		URL:  cfg.SchemesRepo,
		Dir:  filepath.Join(dataDir, config.RepoDir, config.SchemesRepoName),
	}}
	for _, item := range cfg.Items {
		if !item.IsRemote() {
			continue
		}
		repos = append(repos, Repo{Name: item.Name, URL: item.Path, Dir: item.SourceDir(dataDir)})
	}
	return repos
}

// GitRunner runs git with args in dir ("" for the working directory).
type GitRunner func(ctx context.Context, dir string, args ...string) error

// Manager installs and updates repositories.
type Manager struct {
	DataDir string
	Git     GitRunner
}

// NewManager creates a manager using the git binary on PATH.
func NewManager(dataDir string) *Manager {
	return &Manager{DataDir: dataDir, Git: runGit}
}

// Install clones every repository that is not present yet. Failures are
// collected so one unreachable remote does not block the others.
func (m *Manager) Install(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var errs []error
	for _, r := range Repos(cfg, m.DataDir) {
		installed, err := isInstalled(r.Dir)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if installed {
			logging.Info("Repo", "%s already installed at %s", r.Name, r.Dir)
			continue
		}
		if err := m.clone(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Update pulls every installed repository and clones missing ones.
func (m *Manager) Update(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var errs []error
	for _, r := range Repos(cfg, m.DataDir) {
		installed, err := isInstalled(r.Dir)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !installed {
			if err := m.clone(ctx, r); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		logging.Info("Repo", "Updating %s", r.Name)
		if err := m.Git(ctx, r.Dir, "pull", "--ff-only"); err != nil {
			errs = append(errs, fmt.Errorf("failed to update %s in %s: %w", r.Name, r.Dir, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) clone(ctx context.Context, r Repo) error {
	if err := os.MkdirAll(filepath.Dir(r.Dir), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(r.Dir), err)
	}
	logging.Info("Repo", "Cloning %s from %s", r.Name, r.URL)
	if err := m.Git(ctx, "", "clone", "--depth", "1", r.URL, r.Dir); err != nil {
		return fmt.Errorf("failed to clone %s into %s: %w", r.URL, r.Dir, err)
	}
	return nil
}

func isInstalled(dir string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to inspect %s: %w", dir, err)
	}
	// A directory without .git is left alone rather than cloned over.
	if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
		return false, fmt.Errorf("%s exists but is not a git repository", dir)
	}
	return false, nil
}

// runGit executes git, capturing stderr for the error message.
func runGit(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w. Stderr: %s", strings.Join(args, " "), err, strings.TrimSpace(stderrBuf.String()))
	}
	return nil
}
