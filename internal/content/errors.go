// Package content loads the JSON documents that make up the game's static content.
package content

import "fmt"

// LoadErrorKind distinguishes why a document could not be loaded
type LoadErrorKind int

const (
	// FileMissing means the path does not exist
	FileMissing LoadErrorKind = iota
	// MalformedJSON means the file was read but is not valid JSON
	MalformedJSON
	// Unreadable means the file exists but could not be read
	Unreadable
)

func (k LoadErrorKind) String() string {
	switch k {
	case FileMissing:
		return "file missing"
	case MalformedJSON:
		return "malformed JSON"
	default:
		return "unreadable"
	}
}

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Kind    LoadErrorKind
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Kind, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
