package cmd

import (
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "apply <system>-<slug>",
		Short: "Apply a scheme to every configured item",
		Long: `Applies the named scheme, for example base16-mocha, to every configured item.

The scheme is resolved first; an invalid name or unknown scheme aborts before
anything is changed. Items whose theme file is missing or whose hook fails are
reported but do not stop the remaining items. The scheme becomes the current
scheme once all items have been processed.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSchemes,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			return finishRun(env.newEngine(cmd.OutOrStdout(), quiet).Apply(cmd.Context(), args[0]))
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary table")
	return cmd
}

// completeSchemes offers installed scheme names for shell completion.
func completeSchemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	env, err := loadEnvironment()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids, err := env.newEngine(cmd.OutOrStdout(), true).Schemes()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
