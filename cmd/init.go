package cmd

import (
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Re-apply the current scheme, for use in shell startup files",
		Long: `Re-applies the current scheme to every item, running hooks with the "init"
operation. Without a current scheme the default-scheme is used, and without
that base16-default-dark.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			return finishRun(env.newEngine(cmd.OutOrStdout(), !verbose).Init(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the summary table")
	return cmd
}
