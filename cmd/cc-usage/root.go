package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DiologIR/cc-usage/internal/config"
	"github.com/DiologIR/cc-usage/internal/log"
	"github.com/DiologIR/cc-usage/internal/output"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string

	// Shared state injected into commands
	env config.Environment
	cfg config.Config
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cc-usage",
	Short: "Claude Code usage monitor",
	Long: `cc-usage monitors Claude Code token usage across projects and
billing blocks.

Configuration is resolved from built-in defaults, the config file and
CC_USAGE_* environment variables, in ascending precedence.

Config file: ~/.config/cc-usage/config.toml (or $XDG_CONFIG_HOME)`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; wire the logger and printer here.
		ctx := cmd.Context()
		l := log.New(os.Stderr, verbose, quiet)
		ctx = log.WithLogger(ctx, l)
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		switch cmd.Name() {
		case "completion", "__complete", "help":
			return nil
		case "init":
			// Must work even when the existing config is invalid.
			return nil
		}

		loaded, err := config.Load(env, configPath)
		if err != nil {
			var verr *config.ValidationError
			if errors.As(err, &verr) {
				return verr
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded

		l.Verbosef("config file: %s", effectiveConfigPath())
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// effectiveConfigPath returns the config file location commands read and
// write: the --config flag when given, the canonical path otherwise.
func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigFilePath(env)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	env = config.OSEnvironment()

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'cc-usage -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show config resolution details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ~/.config/cc-usage/config.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newThemeCmd())

	// Configuration commands
	rootCmd.AddCommand(newConfigCmd())
}
