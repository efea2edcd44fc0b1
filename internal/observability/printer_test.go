package observability

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/jonathan/stamp-office/internal/content"
	"github.com/jonathan/stamp-office/internal/types"
	"github.com/jonathan/stamp-office/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	SetColor(false)
	os.Exit(m.Run())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Banner("The Stamp Office - Data Validator")

	output := buf.String()
	assert.Contains(t, output, "The Stamp Office - Data Validator")
	assert.Contains(t, output, "============================================================\n")
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Loading("toasts.json")
	p.Loaded("toasts.json", 12, "toast IDs")
	p.Loading("rules.json")
	p.LoadFailed("rules.json", &content.LoadError{Kind: content.FileMissing, Path: "data/rules/rules.json"})
	p.Loading("shift01.json")
	p.LoadFailed("shift01.json", &content.LoadError{Kind: content.MalformedJSON, Cause: errors.New("unexpected end of JSON input")})
	p.LoadFailed("shift02.json", errors.New("permission denied"))
	p.NoTicketFiles("data/tickets")

	assert.Equal(t, "Loading toasts.json...\n"+
		"  Found 12 toast IDs\n"+
		"Loading rules.json...\n"+
		"  ERROR: File not found!\n"+
		"Loading shift01.json...\n"+
		"  ERROR: Invalid JSON - unexpected end of JSON input\n"+
		"  ERROR: permission denied\n"+
		"No ticket files found in data/tickets\n", buf.String())
}

func TestPrintReport_Pass(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(&validation.Report{
		Files: []validation.FileResult{
			{Name: "toasts.json", Count: 3, Loaded: true},
			{Name: "rules.json", Count: 2, Loaded: true},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "PER-FILE SUMMARY")
	assert.Contains(t, output, "✓ toasts.json: PASS")
	assert.Contains(t, output, "✓ rules.json: PASS")
	assert.Contains(t, output, "PASS - All checks passed!")
	assert.NotContains(t, output, "FAIL")
}

func TestPrintReport_Fail(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(&validation.Report{
		Files: []validation.FileResult{
			{Name: "toasts.json", Count: 3, Loaded: true},
			{Name: "rules.json"},
			{Name: "shift01.json", Count: 4, Violations: 1, Loaded: true},
		},
		Violations: []types.Violation{
			{Category: types.CategoryFile, Kind: types.KindFileMissing, File: "rules.json", Message: "Missing: data/rules/rules.json"},
			{Category: types.CategoryTicket, Kind: types.KindUnknownToastReference, File: "shift01.json", EntityID: "T-1", Message: "Ticket T-1 unknown toast_id: nope"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "✓ toasts.json: PASS")
	assert.Contains(t, output, "✗ rules.json: FAIL")
	assert.Contains(t, output, "✗ shift01.json: FAIL")
	assert.Contains(t, output, "FAIL - 2 error(s) found:")
	assert.Contains(t, output, "  ✗ [FILE] Missing: data/rules/rules.json\n")
	assert.Contains(t, output, "  ✗ [TICKET] shift01.json: Ticket T-1 unknown toast_id: nope\n")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", "✗ shift_with_an_extremely_long_file_name_that_will_not_fit.json: FAIL")

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), ": FAIL")
}

func TestSyncOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Copied("tickets/shift01.json")
	p.SyncDone(3, "game/data")

	output := buf.String()
	assert.Contains(t, output, "  ✓ tickets/shift01.json\n")
	assert.Contains(t, output, "Synced 3 files to game/data\n")
}
