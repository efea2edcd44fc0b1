// Package gamedata copies canonical content into the game engine's data directory.
package gamedata

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/stamp-office/internal/content"
)

// Options configures a sync run
type Options struct {
	SourceDir     string // canonical data/ directory
	DestDir       string // game engine data directory
	TicketPattern string // glob matched inside SourceDir/tickets
}

// Reporter receives each copied file, relative to the data directory
type Reporter interface {
	Copied(rel string)
}

// Result lists the files copied by a sync run
type Result struct {
	Copied []string
}

// singleFiles are copied when present; a missing one is skipped
var singleFiles = []string{
	filepath.Join("toasts", "toasts.json"),
	filepath.Join("rules", "rules.json"),
}

// Sync copies every ticket file plus the toast and rule files from
// opts.SourceDir into the same layout under opts.DestDir, creating
// directories as needed and overwriting existing files.
func Sync(opts Options, reporter Reporter) (*Result, error) {
	if opts.TicketPattern == "" {
		opts.TicketPattern = "*.json"
	}
	if info, err := os.Stat(opts.SourceDir); err != nil || !info.IsDir() {
		return nil, &SourceMissingError{Path: opts.SourceDir}
	}

	tickets, err := content.MatchFiles(filepath.Join(opts.SourceDir, "tickets"), opts.TicketPattern)
	if err != nil {
		return nil, err
	}

	rels := make([]string, 0, len(tickets)+len(singleFiles))
	for _, name := range tickets {
		rels = append(rels, filepath.Join("tickets", filepath.FromSlash(name)))
	}

	// destination directories exist even when there is nothing to copy
	for _, dir := range []string{"tickets", "toasts", "rules"} {
		if err := os.MkdirAll(filepath.Join(opts.DestDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, rel := range singleFiles {
		if _, err := os.Stat(filepath.Join(opts.SourceDir, rel)); errors.Is(err, os.ErrNotExist) {
			slog.Debug("skipping missing content file", "path", rel)
			continue
		}
		rels = append(rels, rel)
	}

	result := &Result{}
	for _, rel := range rels {
		if err := copyFile(filepath.Join(opts.SourceDir, rel), filepath.Join(opts.DestDir, rel)); err != nil {
			return result, err
		}
		slashed := filepath.ToSlash(rel)
		result.Copied = append(result.Copied, slashed)
		if reporter != nil {
			reporter.Copied(slashed)
		}
	}

	slog.Debug("sync complete", "copied", len(result.Copied), "dest", opts.DestDir)
	return result, nil
}

// copyFile copies src over dst, keeping the source's permissions and modification time
func copyFile(src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}

	in, err := os.Open(src)
	if err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &CopyError{Source: src, Dest: dst, Cause: cerr}
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}

	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return &CopyError{Source: src, Dest: dst, Cause: err}
	}
	return nil
}
