package cmd

import (
	"fmt"

	"huectl/internal/color"
	"huectl/internal/scheme"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [system-slug]",
		Short: "Show a scheme's metadata and palette",
		Long: `Shows the metadata and every palette slot of the named scheme, or of the
current scheme when no name is given.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSchemes,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			engine := env.newEngine(cmd.OutOrStdout(), true)

			var s *scheme.Scheme
			if len(args) == 1 {
				s, err = scheme.Resolve(args[0], engine.SchemeDirs())
			} else {
				s, err = engine.Current()
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), color.RenderScheme(s))
			return nil
		},
	}
}
