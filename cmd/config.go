package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	var (
		printConfigPath  bool
		printDataDirPath bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after defaults have been merged in, or with a flag
only the path of the configuration file or of the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printConfigPath && printDataDirPath {
				return fmt.Errorf("--config-path and --data-dir-path are mutually exclusive")
			}
			env, err := loadEnvironment()
			if err != nil {
				return err
			}

			switch {
			case printConfigPath:
				fmt.Fprintln(cmd.OutOrStdout(), env.ConfigPath)
			case printDataDirPath:
				fmt.Fprintln(cmd.OutOrStdout(), env.DataDir)
			default:
				out, err := yaml.Marshal(env.Config)
				if err != nil {
					return fmt.Errorf("failed to encode configuration: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printConfigPath, "config-path", false, "Print the configuration file path")
	cmd.Flags().BoolVar(&printDataDirPath, "data-dir-path", false, "Print the data directory path")
	return cmd
}
