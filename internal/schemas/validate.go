// Package schemas provides JSON Schema validation for the content documents.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Name identifies one of the embedded content schemas
type Name string

const (
	Toasts  Name = "toasts"
	Rules   Name = "rules"
	Tickets Name = "tickets"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Path returns the embedded file name for the schema
func (n Name) Path() string {
	return string(n) + ".schema.json"
}

// Load returns the raw schema document
func Load(name Name) ([]byte, error) {
	data, err := schemaFS.ReadFile(name.Path())
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name.Path(),
			Message: "schema not embedded",
			Cause:   err,
		}
	}
	return data, nil
}

// Validate validates a JSON document against the named content schema.
// It returns a *ValidationError when the document does not conform.
func Validate(name Name, document []byte) error {
	schemaContent, err := Load(name)
	if err != nil {
		return err
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{
			Path:    name.Path(),
			Message: "schema could not be compiled",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate document against %s: %w", name.Path(), err)
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
