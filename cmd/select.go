package cmd

import (
	"fmt"

	"huectl/internal/scheme"
	"huectl/internal/state"
	"huectl/internal/tui"

	"github.com/spf13/cobra"
)

// pickScheme is a variable so tests can replace the interactive picker.
var pickScheme = tui.PickScheme

func newSelectCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick a scheme interactively and apply it",
		Long: `Opens an interactive list of installed schemes with a palette preview.
Press enter to apply the highlighted scheme, / to filter, esc or q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			engine := env.newEngine(cmd.OutOrStdout(), quiet)

			ids, err := engine.Schemes()
			if err != nil {
				return err
			}
			current, err := state.Read(env.DataDir)
			if err != nil {
				return err
			}

			dirs := engine.SchemeDirs()
			choice, err := pickScheme(ids, current, func(id scheme.Identifier) (*scheme.Scheme, error) {
				return scheme.Resolve(id.String(), dirs)
			})
			if err != nil {
				return err
			}
			if choice == "" {
				if !quiet {
					fmt.Fprintln(cmd.OutOrStdout(), "No scheme selected")
				}
				return nil
			}

			return finishRun(engine.Apply(cmd.Context(), choice))
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary table")
	return cmd
}
