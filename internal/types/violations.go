// Package types provides type definitions for the game content handled by the stamp-office tools.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/stoewer/go-strcase"
)

// Category tags a violation with the content area it was found in
type Category string

const (
	CategoryFile   Category = "FILE"
	CategoryToast  Category = "TOAST"
	CategoryRule   Category = "RULE"
	CategoryTicket Category = "TICKET"
	CategorySchema Category = "SCHEMA"
)

// Kind identifies which check produced a violation
type Kind string

const (
	KindFileMissing           Kind = "FileMissing"
	KindFileUnreadable        Kind = "FileUnreadable"
	KindMalformedJSON         Kind = "MalformedJSON"
	KindMissingRequiredKey    Kind = "MissingRequiredKey"
	KindDuplicateID           Kind = "DuplicateID"
	KindWordCountExceeded     Kind = "WordCountExceeded"
	KindUnknownToastReference Kind = "UnknownToastReference"
	KindSchemaViolation       Kind = "SchemaViolation"
)

// MarshalText renders the kind in snake_case for JSON reports
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strcase.SnakeCase(string(k))), nil
}

// Violation represents a single content validation failure
type Violation struct {
	Category Category `json:"category"`
	Kind     Kind     `json:"kind"`
	File     string   `json:"file"`
	EntityID string   `json:"entity_id,omitempty"`
	Message  string   `json:"message"`
}

// String renders the violation the way it is printed in the failure list.
// File-level violations already name the path in their message.
func (v Violation) String() string {
	if v.File == "" || v.Category == CategoryFile {
		return fmt.Sprintf("[%s] %s", v.Category, v.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", v.Category, v.File, v.Message)
}

// Violations represents a collection of validation failures
type Violations struct {
	Violations []Violation `json:"violations"`
}
