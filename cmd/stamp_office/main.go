// Package main provides the entry point for the Stamp Office content tools.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jonathan/stamp-office/internal/config"
	"github.com/jonathan/stamp-office/internal/observability"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "stamp_office",
	Short:             "The Stamp Office content tools",
	Long:              "Validates the game's ticket, toast and rule content and syncs it into the game engine's data directory.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var (
	configPath string
	rootDir    string
	noColor    bool
	logLevel   string

	// cfg is populated by setup before any subcommand runs
	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (default stamp_office.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Repository root holding data/ (default: searched from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies persistent flags and initializes logging
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if rootDir != "" {
		loaded.Root = rootDir
	}
	if noColor {
		loaded.NoColor = true
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if err := loaded.Check(); err != nil {
		return err
	}
	if err := loaded.ResolveRoot(); err != nil {
		return err
	}

	slog.SetDefault(newLogger(loaded.Log, cmd.ErrOrStderr()))
	observability.SetColor(!loaded.NoColor)
	slog.Debug("configuration loaded", "root", loaded.Root, "data", loaded.DataPath())

	cfg = loaded
	return nil
}

func newLogger(lc config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(lc.Level)}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
