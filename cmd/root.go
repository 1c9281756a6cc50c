package cmd

import (
	"io"
	"os"

	"huectl/internal/config"
	"huectl/internal/reporting"
	"huectl/internal/theming"
	"huectl/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	logLevel   string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huectl",
	Short: "Apply base16 and base24 color schemes across your tools",
	Long: `huectl applies a color scheme to every configured tool in one go.

Each item in the configuration points at a repository of theme files. Applying
a scheme copies the matching theme file into the data directory and runs the
item's hook so the tool picks it up. The last applied scheme is remembered, and
"huectl cycle" steps through your default and preferred schemes.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// that are not about command-line syntax (missing scheme, bad config)
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "huectl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/huectl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default is $XDG_DATA_HOME/huectl)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (same as --log-level debug)")

	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newCycleCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCurrentCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	return nil
}

// environment is the loaded configuration plus the paths it came from.
type environment struct {
	Config     config.Config
	ConfigPath string
	DataDir    string
}

// loadEnvironment resolves --config and --data-dir and loads the
// configuration. LoadConfig validates, so nothing touches the filesystem with
// an invalid configuration.
func loadEnvironment() (*environment, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	dir := dataDir
	if dir == "" {
		d, err := config.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logging.Debug("Config", "Loaded %s (%d items), data directory %s", path, len(cfg.Items), dir)

	return &environment{Config: cfg, ConfigPath: path, DataDir: dir}, nil
}

// finishRun logs a notice when items or global hooks failed. Item failures
// never change the exit status.
func finishRun(report *reporting.Report, err error) error {
	if err == nil && report != nil && !report.OK() {
		logging.Warn("Apply", "%s: %d item(s) and %d global hook(s) failed",
			report.Scheme, len(report.Failures()), len(report.HookErrors))
	}
	return err
}

// newEngine builds a theming engine whose summary goes to out.
func (e *environment) newEngine(out io.Writer, quiet bool) *theming.Engine {
	return theming.NewEngine(e.Config, e.DataDir, reporting.NewConsoleReporter(out, quiet))
}
