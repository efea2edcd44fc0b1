package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const (
	toastsJSON = `{"toasts": [
  {"id": "toast_good_job", "text": "The office thanks you", "rarity": "common", "tags": ["praise"]}
]}`
	rulesJSON = `{"rules": [
  {"id": "R-001", "shift": "shift01", "text": "Blue forms need two stamps"}
]}`
	ticketsJSON = `{"tickets": [
  {"id": "T-001", "shift": "shift01", "type": "form", "text": "Stamp this form", "attachment": "A damp envelope",
   "allowed_stamps": ["approve"], "rarity": "common", "tags": [],
   "outcomes": {"approve": {"toast_id": "toast_good_job", "mood_delta": 1, "contradiction_delta": 0}}}
]}`
)

// repoRoot lays out a repository with a valid data/ tree and returns its path
func repoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeContent(t, filepath.Join(root, "data", "toasts", "toasts.json"), toastsJSON)
	writeContent(t, filepath.Join(root, "data", "rules", "rules.json"), rulesJSON)
	writeContent(t, filepath.Join(root, "data", "tickets", "shift01.json"), ticketsJSON)
	return root
}

func writeContent(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

// resetFlags restores every flag to its default; flag values live in package
// variables and would otherwise leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command in-process and returns its stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfg = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--no-color"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}
