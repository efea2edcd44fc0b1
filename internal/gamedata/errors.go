// Package gamedata copies canonical content into the game engine's data directory.
package gamedata

import "fmt"

// SourceMissingError is returned when the canonical data directory does not exist
type SourceMissingError struct {
	Path string
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("source data folder not found at %s", e.Path)
}

// CopyError represents a failure copying one file
type CopyError struct {
	Source string
	Dest   string
	Cause  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy error: %s -> %s: %v", e.Source, e.Dest, e.Cause)
}

func (e *CopyError) Unwrap() error {
	return e.Cause
}
