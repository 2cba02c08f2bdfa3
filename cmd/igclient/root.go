package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"igclient/pkg/config"
	"igclient/pkg/logger"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "igclient",
	Short: "A client for Instagram's web and GraphQL endpoints",
	Long: `igclient talks to Instagram's undocumented web API.

It can fetch public profiles, page through a user's media feed, and log
in to produce an authenticated session. Credentials are stored in the
system keychain or an encrypted file, never in plain text.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(authCmd)
}

// setup loads the configuration and builds the logger shared by all commands
func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.New(logger.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetLogger(log)

	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
