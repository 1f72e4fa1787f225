package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ihis/fhir-engine-skills/internal/config"
	"github.com/ihis/fhir-engine-skills/internal/logging"
)

var (
	// Version is set at build time via ldflags
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configFile string

	// Loaded by initConfig before any subcommand runs.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fhir-skills",
	Short: "FHIR Engine Claude Skills - AI-powered development assistance",
	Long: `fhir-skills installs Claude Code skills for FHIR Engine development
into a project's .claude/skills directory.

Examples:
  # Install skills to current project
  fhir-skills install

  # Install to specific project
  fhir-skills install --path /path/to/my-fhir-project

  # List available skills
  fhir-skills list

  # Update existing installation
  fhir-skills update

  # Force install (no confirmation)
  fhir-skills install --force`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand behaves like info; anything unrecognized is an error.
		if len(args) == 0 {
			return runInfo(cmd, args)
		}
		_ = cmd.Help()
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: <user config dir>/fhir-skills/config.toml)")

	// Version flag
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("fhir-skills {{.Version}}\n")
}

// initConfig loads configuration and builds the logger shared by all
// subcommands.
func initConfig() error {
	path := configFile
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	logger = logging.NewFromConfig(cfg)

	return nil
}

// targetBase resolves the installation base directory: the --path value if
// given, else the configured default target, else the current directory.
func targetBase(flagPath string) (string, error) {
	if flagPath != "" {
		return filepath.Abs(flagPath)
	}
	return cfg.Target()
}
