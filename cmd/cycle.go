package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCycleCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Apply the next scheme from default-scheme and preferred-schemes",
		Long: `Applies the scheme after the current one in the cycle list.

The cycle list is default-scheme followed by preferred-schemes with duplicates
removed. After the last entry cycling wraps around to the first; when no scheme
has been applied yet, or the current one is not in the list, the first entry is
applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			report, err := env.newEngine(cmd.OutOrStdout(), quiet).Cycle(cmd.Context())
			if err := finishRun(report, err); err != nil {
				return err
			}
			if report == nil && !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to cycle: set default-scheme or preferred-schemes in the configuration")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary table")
	return cmd
}
