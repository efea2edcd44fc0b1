// Package main provides the entry point for the Stamp Office content tools.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/stamp-office/internal/observability"
	"github.com/jonathan/stamp-office/internal/types"
	"github.com/jonathan/stamp-office/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate ticket, toast and rule content",
	Long: "Checks required keys, unique ids, 8-word text limits and toast references across data/toasts, data/rules and data/tickets. " +
		"Exits with status 1 when any error is found.",
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateIDScope       string
	validateTicketPattern string
	validateMaxWords      int
	validateStrict        bool
	validateReportPath    string
)

func init() {
	validateCmd.Flags().StringVar(&validateIDScope, "id-scope", "", "Ticket id uniqueness scope: global or file (default from config)")
	validateCmd.Flags().StringVar(&validateTicketPattern, "ticket-pattern", "", "Glob for ticket files inside data/tickets (default from config)")
	validateCmd.Flags().IntVar(&validateMaxWords, "max-words", 0, "Maximum words per text field (default from config)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also check each file against its JSON Schema")
	validateCmd.Flags().StringVarP(&validateReportPath, "report", "o", "", "Write the violations as JSON to this path")

	rootCmd.AddCommand(validateCmd)
}

// validationOptions merges validate flags over the loaded config
func validationOptions(cmd *cobra.Command) (validation.Options, error) {
	scopeValue := cfg.Validate.TicketIDScope
	if cmd.Flags().Changed("id-scope") {
		scopeValue = validateIDScope
	}
	scope, err := validation.ParseIDScope(scopeValue)
	if err != nil {
		return validation.Options{}, err
	}

	opts := validation.Options{
		DataDir:       cfg.DataPath(),
		TicketPattern: cfg.Validate.TicketPattern,
		Scope:         scope,
		MaxWords:      cfg.Validate.MaxWords,
		Strict:        cfg.Validate.Strict,
	}
	if cmd.Flags().Changed("ticket-pattern") {
		opts.TicketPattern = validateTicketPattern
	}
	if cmd.Flags().Changed("max-words") {
		if validateMaxWords < 1 {
			return validation.Options{}, fmt.Errorf("--max-words must be at least 1")
		}
		opts.MaxWords = validateMaxWords
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = validateStrict
	}
	return opts, nil
}

func runValidate(cmd *cobra.Command, _ []string) error {
	opts, err := validationOptions(cmd)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.Banner("The Stamp Office - Data Validator")
	opts.Progress = printer

	report, err := validation.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to validate content: %w", err)
	}
	printer.PrintReport(report)

	if validateReportPath != "" {
		if err := writeReport(validateReportPath, report); err != nil {
			return err
		}
	}

	if !report.Passed() {
		// Return error to indicate violations were found (exit code 1)
		return fmt.Errorf("validation found %d error(s)", len(report.Violations))
	}
	return nil
}

func writeReport(path string, report *validation.Report) error {
	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	violations := types.Violations{Violations: report.Violations}
	if violations.Violations == nil {
		violations.Violations = []types.Violation{}
	}

	jsonBytes, err := json.MarshalIndent(violations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal violations to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write violations to output file: %w", err)
	}
	return nil
}
