package main

import (
	"archlint/internal/config"
	"archlint/internal/logging"
	"archlint/internal/version"

	"github.com/spf13/cobra"
)

var (
	// configFlag is the CLI --config flag value: an explicit config
	// file path that bypasses <root>/.archlint/config.json discovery.
	configFlag string

	// logLevelFlag overrides the configured log level
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "archlint",
	Short: "archlint - project structure linter",
	Long: `archlint validates a project's structure against architecture rules:
required directories and files exist, the test tree mirrors the source
tree, and module dependencies (inferred heuristically from import-like
statements) contain no cycles.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("archlint version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to an architecture config file (default: <root>/.archlint/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default: from config)")
}

// loadProjectConfig resolves configuration for a project root.
// Precedence: --config file > <root>/.archlint/config.json > defaults.
func loadProjectConfig(projectRoot string) (*config.Config, error) {
	if configFlag != "" {
		return config.LoadConfigFile(configFlag)
	}
	return config.LoadConfig(projectRoot)
}

// newLogger builds a logger from config, with the --log-level flag
// taking precedence.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(level),
	})
}

// projectRootArg returns the positional project root, defaulting to
// the current directory.
func projectRootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
