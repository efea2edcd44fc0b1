// Package validation checks the structural and referential integrity of game content.
package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jonathan/stamp-office/internal/content"
	"github.com/jonathan/stamp-office/internal/schemas"
	"github.com/jonathan/stamp-office/internal/types"
)

// DefaultTicketPattern matches the per-shift ticket files
const DefaultTicketPattern = "shift*.json"

// Options configures a validation run
type Options struct {
	DataDir       string  // directory holding toasts/, rules/ and tickets/
	TicketPattern string  // glob matched inside DataDir/tickets
	Scope         IDScope // ticket-id uniqueness scope
	MaxWords      int
	Strict        bool     // also check every document against its JSON Schema
	Progress      Progress // optional
}

// Progress receives per-file load events as the run proceeds
type Progress interface {
	Loading(name string)
	Loaded(name string, count int, noun string)
	LoadFailed(name string, err error)
	NoTicketFiles(dir string)
}

// FileResult is the outcome for one content file
type FileResult struct {
	Name       string
	Count      int
	Violations int
	Loaded     bool
}

// Passed reports whether the file loaded and produced no violations
func (f FileResult) Passed() bool {
	return f.Loaded && f.Violations == 0
}

// Report is the result of a validation run
type Report struct {
	Files      []FileResult
	Violations []types.Violation
}

// Passed reports whether the run found no violations at all
func (r *Report) Passed() bool {
	return len(r.Violations) == 0
}

// Run loads toasts, rules and every ticket file under opts.DataDir in that
// order and validates them. Missing or malformed files become [FILE]
// violations; only a failure to enumerate the ticket directory is returned
// as an error.
func Run(opts Options) (*Report, error) {
	if opts.TicketPattern == "" {
		opts.TicketPattern = DefaultTicketPattern
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}
	v := New(opts.MaxWords, opts.Scope)
	r := &runner{opts: opts, progress: progress, report: &Report{}}

	// Toasts come first: tickets reference their ids.
	toastIDs := IDSet{}
	if doc := r.load(filepath.Join(opts.DataDir, "toasts", "toasts.json")); doc != nil {
		violations, ids := v.ValidateToasts(doc)
		toastIDs = ids
		if err := r.record(doc, schemas.Toasts, len(ids), "toast IDs", violations); err != nil {
			return nil, err
		}
	}
	slog.Debug("toasts validated", "count", len(toastIDs))

	if doc := r.load(filepath.Join(opts.DataDir, "rules", "rules.json")); doc != nil {
		violations := v.ValidateRules(doc)
		if err := r.record(doc, schemas.Rules, len(doc.List("rules")), "rules", violations); err != nil {
			return nil, err
		}
	}

	ticketDir := filepath.Join(opts.DataDir, "tickets")
	ticketFiles, err := TicketFiles(ticketDir, opts.TicketPattern)
	if err != nil {
		return nil, err
	}
	if len(ticketFiles) == 0 {
		progress.NoTicketFiles(ticketDir)
		r.report.Violations = append(r.report.Violations, types.Violation{
			Category: types.CategoryFile,
			Kind:     types.KindFileMissing,
			Message:  "No ticket files found",
		})
	}

	ticketIDs := IDSet{}
	for _, path := range ticketFiles {
		if v.Scope == ScopeFile {
			ticketIDs = IDSet{}
		}
		doc := r.load(path)
		if doc == nil {
			continue
		}
		violations := v.ValidateTickets(doc, toastIDs, ticketIDs)
		if err := r.record(doc, schemas.Tickets, len(doc.List("tickets")), "tickets", violations); err != nil {
			return nil, err
		}
	}
	slog.Debug("tickets validated", "files", len(ticketFiles), "scope", string(v.Scope))

	return r.report, nil
}

// TicketFiles lists the ticket files in dir matching pattern, sorted by name.
// A missing directory yields no files.
func TicketFiles(dir, pattern string) ([]string, error) {
	matches, err := content.MatchFiles(dir, pattern)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to list ticket files in %s", dir), Cause: err}
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return paths, nil
}

type runner struct {
	opts     Options
	progress Progress
	report   *Report
}

// load reads one document, turning load failures into [FILE] violations
func (r *runner) load(path string) *content.Document {
	name := filepath.Base(path)
	r.progress.Loading(name)

	doc, err := content.Load(path)
	if err == nil {
		return doc
	}

	r.progress.LoadFailed(name, err)
	kind, message := types.KindFileUnreadable, "Unreadable"
	var loadErr *content.LoadError
	if errors.As(err, &loadErr) {
		switch loadErr.Kind {
		case content.FileMissing:
			kind, message = types.KindFileMissing, "Missing"
		case content.MalformedJSON:
			kind, message = types.KindMalformedJSON, "Invalid JSON"
		}
	}
	slog.Debug("content file not loaded", "path", path, "error", err)

	r.report.Violations = append(r.report.Violations, types.Violation{
		Category: types.CategoryFile,
		Kind:     kind,
		File:     name,
		Message:  fmt.Sprintf("%s: %s", message, path),
	})
	r.report.Files = append(r.report.Files, FileResult{Name: name})
	return nil
}

// record adds a loaded document's violations and its per-file result
func (r *runner) record(doc *content.Document, schema schemas.Name, count int, noun string, violations []types.Violation) error {
	if r.opts.Strict {
		schemaViolations, err := schemaCheck(doc, schema)
		if err != nil {
			return err
		}
		violations = append(violations, schemaViolations...)
	}

	r.progress.Loaded(doc.Name, count, noun)
	r.report.Violations = append(r.report.Violations, violations...)
	r.report.Files = append(r.report.Files, FileResult{
		Name:       doc.Name,
		Count:      count,
		Violations: len(violations),
		Loaded:     true,
	})
	return nil
}

func schemaCheck(doc *content.Document, schema schemas.Name) ([]types.Violation, error) {
	err := schemas.Validate(schema, doc.Raw)
	if err == nil {
		return nil, nil
	}

	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, &Error{Message: fmt.Sprintf("schema check of %s failed", doc.Name), Cause: err}
	}

	violations := make([]types.Violation, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		violations = append(violations, types.Violation{
			Category: types.CategorySchema,
			Kind:     types.KindSchemaViolation,
			File:     doc.Name,
			Message:  fmt.Sprintf("%s: %s", fe.Field, fe.Message),
		})
	}
	return violations, nil
}

type nopProgress struct{}

func (nopProgress) Loading(string) {}
func (nopProgress) Loaded(string, int, string) {}
func (nopProgress) LoadFailed(string, error) {}
func (nopProgress) NoTicketFiles(string) {}
