package cmd

import (
	"fmt"
	"strings"

	"huectl/internal/scheme"
	"huectl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// clipboardWriteAll is a variable so tests can run without a clipboard.
var clipboardWriteAll = clipboard.WriteAll

func newCurrentCmd() *cobra.Command {
	var copyValue bool

	cmd := &cobra.Command{
		Use:   "current [property]",
		Short: "Print the current scheme or one of its properties",
		Long: fmt.Sprintf(`Prints the identifier of the current scheme, or the given property of it.

Properties: %s`, strings.Join(scheme.Properties(), ", ")),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: scheme.Properties(),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s, err := env.newEngine(cmd.OutOrStdout(), true).Current()
			if err != nil {
				return err
			}

			property := "id"
			if len(args) == 1 {
				property = args[0]
			}
			value, err := s.Property(property)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			if copyValue {
				if err := clipboardWriteAll(value); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				logging.Debug("Current", "Copied %q to clipboard", value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyValue, "copy", "c", false, "Also copy the value to the clipboard")
	return cmd
}
