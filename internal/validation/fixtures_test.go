package validation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/stamp-office/internal/content"
	"github.com/jonathan/stamp-office/internal/types"
	"github.com/stretchr/testify/require"
)

func sampleToasts() types.ToastFile {
	return types.ToastFile{Toasts: []types.Toast{
		{ID: "toast_good_job", Text: "The office thanks you", Rarity: "common", Tags: []string{"praise"}},
		{ID: "toast_paper_cut", Text: "Ouch", Rarity: "rare", Tags: []string{"pain"}},
	}}
}

func sampleRules() types.RuleFile {
	return types.RuleFile{Rules: []types.Rule{
		{ID: "R-001", Shift: "shift01", Text: "Blue forms need two stamps"},
		{ID: "R-002", Shift: "shift01", Text: "Never stamp on Tuesdays"},
	}}
}

func sampleTicket(id string) types.Ticket {
	return types.Ticket{
		ID:            id,
		Shift:         "shift01",
		Type:          "form",
		Text:          "Stamp this and send it back now",
		Attachment:    "A slightly damp envelope",
		AllowedStamps: []string{"approve", "deny"},
		Rarity:        "common",
		Tags:          []string{"mail"},
		Outcomes: map[string]types.Outcome{
			"approve": {ToastID: "toast_good_job", MoodDelta: 1, ContradictionDelta: 0},
			"deny":    {ToastID: "", MoodDelta: -1, ContradictionDelta: 0.5},
		},
	}
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	return data
}

// contentDir lays out a well-formed data/ directory and returns its path
func contentDir(t *testing.T, ticketFiles map[string]types.TicketFile) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	writeJSON(t, filepath.Join(dir, "toasts", "toasts.json"), marshal(t, sampleToasts()))
	writeJSON(t, filepath.Join(dir, "rules", "rules.json"), marshal(t, sampleRules()))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tickets"), 0755))
	for name, file := range ticketFiles {
		writeJSON(t, filepath.Join(dir, "tickets", name), marshal(t, file))
	}
	return dir
}

func writeJSON(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// document writes raw JSON under name and loads it back
func document(t *testing.T, name string, data []byte) *content.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writeJSON(t, path, data)
	doc, err := content.Load(path)
	require.NoError(t, err)
	return doc
}

func kinds(violations []types.Violation) []types.Kind {
	out := make([]types.Kind, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Kind)
	}
	return out
}

func countKind(violations []types.Violation, kind types.Kind) int {
	n := 0
	for _, v := range violations {
		if v.Kind == kind {
			n++
		}
	}
	return n
}
