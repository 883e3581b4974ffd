// SPDX-License-Identifier: MIT

// Package cmd contains all CLI commands for dymslex.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dymslex/internal/config"
	"dymslex/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedCfg holds the configuration resolved during initialization.
	// Never nil after initRootConfig runs; falls back to defaults on error.
	loadedCfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "dymslex",
		Short: "Syntax highlighting for the DYMS language",
		Long: TitleStyle.Render("dymslex") + SubtitleStyle.Render(" - Syntax highlighting for the DYMS language") + `

dymslex packages a DYMS lexer for the chroma highlighting framework.
It registers the 'dyms' language identifier into chroma's global lexer
registry and ships the plugin manifest describing that registration.

` + SubtitleStyle.Render("Examples:") + `
  dymslex highlight prog.dyms       Highlight a file to the terminal
  dymslex highlight --formatter html prog.dyms
  dymslex tokens prog.dyms          Dump the token stream
  dymslex check                     Verify the plugin registration
  dymslex info                      Show the plugin manifest
  dymslex pager prog.dyms           Scrollable highlighted view
  dymslex serve --port 2222         Serve highlighted views over SSH`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dymslex/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newPagerCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil {
		loadedCfg = cfg

		// Apply verbose from config if not set via flag
		if !verbose {
			verbose = cfg.UI.Verbose
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
