// Package main provides the entry point for the Stamp Office content tools.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jonathan/stamp-office/internal/gamedata"
	"github.com/jonathan/stamp-office/internal/observability"
	"github.com/jonathan/stamp-office/internal/validation"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy content into the game's data directory",
	Long: "Copies data/tickets/*.json, data/toasts/toasts.json and data/rules/rules.json into the game data directory, " +
		"creating directories as needed and overwriting existing files.",
	Args: cobra.NoArgs,
	RunE: runSync,
}

var (
	syncWatch         bool
	syncValidateFirst bool
)

func init() {
	syncCmd.Flags().BoolVarP(&syncWatch, "watch", "w", false, "Keep running and re-sync whenever content changes")
	syncCmd.Flags().BoolVar(&syncValidateFirst, "validate", false, "Validate content first and refuse to sync on errors")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())
	opts := gamedata.Options{
		SourceDir:     cfg.DataPath(),
		DestDir:       cfg.GameDataPath(),
		TicketPattern: cfg.Sync.TicketPattern,
	}

	if syncValidateFirst {
		vopts, err := validationOptions(validateCmd)
		if err != nil {
			return err
		}
		report, err := validation.Run(vopts)
		if err != nil {
			return fmt.Errorf("failed to validate content: %w", err)
		}
		if !report.Passed() {
			printer.PrintReport(report)
			return fmt.Errorf("refusing to sync: validation found %d error(s)", len(report.Violations))
		}
	}

	dest := displayPath(opts.DestDir)
	printer.Banner(fmt.Sprintf("Syncing %s -> %s", displayPath(opts.SourceDir), dest))

	if syncWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		interval := time.Duration(cfg.Sync.WatchInterval)
		slog.Info("watching for content changes", "path", opts.SourceDir, "interval", interval)
		return gamedata.Watch(ctx, opts, interval, printer, func(result *gamedata.Result, err error) {
			if err != nil {
				slog.Error("sync failed", "error", err)
				return
			}
			printer.SyncDone(len(result.Copied), dest)
		})
	}

	result, err := gamedata.Sync(opts, printer)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	printer.SyncDone(len(result.Copied), dest)
	return nil
}

// displayPath shortens path relative to the repository root when possible
func displayPath(path string) string {
	rel, err := filepath.Rel(cfg.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel) + "/"
}
