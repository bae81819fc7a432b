// Package main provides the CLI entrypoint for subwin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/subwin/internal/config"
	"github.com/jmylchreest/subwin/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themeName  string
		logFile    string
	}
	logger      *slog.Logger
	themeLoader *theme.Loader
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "subwin",
	Short: "Floating sub-window compositor for the terminal",
	Long: `subwin renders draggable, closeable floating windows inside a single
terminal surface: a z-ordered window stack with modal support, window
chrome, and shared application state kept in sync between the main view
and every open window.

Running subwin without a subcommand launches the interactive demo.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalOpts.logFile != "" {
			cfg.Log.File = globalOpts.logFile
		}
		if err := setupLogger(); err != nil {
			return err
		}

		themeLoader = theme.NewLoader(logger)
		name := cfg.Theme.Name
		if globalOpts.themeName != "" {
			name = globalOpts.themeName
		}
		if err := themeLoader.LoadTheme(name); err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}

		return nil
	},
	// Default to the demo when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/subwin/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themeName, "theme", "",
		"Theme name (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logFile, "log-file", "",
		"Path to log file (logging disabled if empty)")
}

// setupLogger configures the global slog logger. The TUI owns the
// terminal, so logs go to a file or nowhere, never to stderr.
func setupLogger() error {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	} else {
		switch cfg.Log.Level {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	var out io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
	return nil
}
