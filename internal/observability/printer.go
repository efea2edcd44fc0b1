// Package observability provides the human-readable console output of the CLI tools.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/jonathan/stamp-office/internal/content"
	"github.com/jonathan/stamp-office/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted console output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// SetColor turns coloured output on or off for every printer
func SetColor(enabled bool) {
	color.Enable = enabled
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) rule(ch string) {
	fmt.Fprintln(p.out, strings.Repeat(ch, boxWidth))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Banner prints the tool title between two rules
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Banner(title string) {
	p.rule("=")
	fmt.Fprintln(p.out, title)
	p.rule("=")
	fmt.Fprintln(p.out)
}

// Loading announces that a content file is about to be read
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Loading(name string) {
	fmt.Fprintf(p.out, "Loading %s...\n", name)
}

// Loaded reports how many records a file held
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Loaded(_ string, count int, noun string) {
	fmt.Fprintf(p.out, "  Found %d %s\n", count, noun)
}

// LoadFailed reports why a file could not be loaded
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) LoadFailed(_ string, err error) {
	var loadErr *content.LoadError
	if errors.As(err, &loadErr) {
		switch loadErr.Kind {
		case content.FileMissing:
			fmt.Fprintf(p.out, "  %s File not found!\n", color.Red.Sprint("ERROR:"))
			return
		case content.MalformedJSON:
			fmt.Fprintf(p.out, "  %s Invalid JSON - %v\n", color.Red.Sprint("ERROR:"), loadErr.Cause)
			return
		}
	}
	fmt.Fprintf(p.out, "  %s %v\n", color.Red.Sprint("ERROR:"), err)
}

// NoTicketFiles reports an empty ticket directory
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) NoTicketFiles(dir string) {
	fmt.Fprintf(p.out, "No ticket files found in %s\n", dir)
}

// PrintReport outputs the per-file summary followed by the overall result
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *validation.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for _, f := range report.Files {
		if f.Passed() {
			sb.WriteString(fmt.Sprintf("✓ %s: PASS\n", f.Name))
		} else {
			sb.WriteString(fmt.Sprintf("✗ %s: FAIL\n", f.Name))
		}
	}
	if len(report.Files) == 0 {
		sb.WriteString("(no files checked)\n")
	}

	fmt.Fprintln(p.out)
	p.printBox("PER-FILE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
	fmt.Fprintln(p.out)
	p.rule("=")

	if report.Passed() {
		fmt.Fprintln(p.out, color.Green.Sprint("PASS - All checks passed!"))
		p.rule("=")
		fmt.Fprintln(p.out)
		return
	}

	fmt.Fprintln(p.out, color.Red.Sprintf("FAIL - %d error(s) found:", len(report.Violations)))
	p.rule("=")
	for _, v := range report.Violations {
		fmt.Fprintf(p.out, "  %s %s\n", color.Red.Sprint("✗"), v.String())
	}
	fmt.Fprintln(p.out)
}

// Copied reports one file copied by the sync tool
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Copied(rel string) {
	fmt.Fprintf(p.out, "  %s %s\n", color.Green.Sprint("✓"), rel)
}

// SyncDone prints the closing line of a sync run
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) SyncDone(count int, dest string) {
	p.rule("-")
	fmt.Fprintf(p.out, "Synced %d files to %s\n", count, dest)
	p.rule("=")
}
