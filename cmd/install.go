package cmd

import (
	"fmt"

	"huectl/internal/repo"

	"github.com/spf13/cobra"
)

// newRepoManager is a variable so tests can swap in a fake git.
var newRepoManager = repo.NewManager

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Clone the schemes repository and every item repository",
		Long: `Clones the schemes repository and the repository of every item whose path
is a git URL into the data directory. Repositories that are already present are
left alone; use "huectl update" to pull them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			if err := newRepoManager(env.DataDir).Install(cmd.Context(), env.Config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed into %s\n", env.DataDir)
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Pull the schemes repository and every item repository",
		Long: `Fast-forwards every managed repository in the data directory and clones the
ones that are missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			if err := newRepoManager(env.DataDir).Update(cmd.Context(), env.Config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated repositories in %s\n", env.DataDir)
			return nil
		},
	}
}
