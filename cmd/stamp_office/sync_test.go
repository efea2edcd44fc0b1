package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCommand_CopiesContent(t *testing.T) {
	root := repoRoot(t)

	output, err := executeCommand(t, "sync", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, output, "Syncing data/ -> game/data/")
	assert.Contains(t, output, "tickets/shift01.json")
	assert.Contains(t, output, "Synced 3 files to game/data/")

	for _, rel := range []string{"tickets/shift01.json", "toasts/toasts.json", "rules/rules.json"} {
		_, err := os.Stat(filepath.Join(root, "game", "data", filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}

func TestSyncCommand_SourceMissing(t *testing.T) {
	root := t.TempDir()

	_, err := executeCommand(t, "sync", "--root", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source data folder not found")
}

func TestSyncCommand_ValidateGate(t *testing.T) {
	root := repoRoot(t)
	writeContent(t, filepath.Join(root, "data", "toasts", "toasts.json"), `{"toasts": [{"id": "toast_good_job"}]}`)

	output, err := executeCommand(t, "sync", "--root", root, "--validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to sync")
	assert.Contains(t, output, "[TOAST] toasts.json: Toast toast_good_job missing required key: text")

	_, statErr := os.Stat(filepath.Join(root, "game", "data"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSyncCommand_ValidateGatePasses(t *testing.T) {
	root := repoRoot(t)

	output, err := executeCommand(t, "sync", "--root", root, "--validate")
	require.NoError(t, err)
	assert.Contains(t, output, "Synced 3 files")
}
