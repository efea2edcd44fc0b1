// Package validation checks the structural and referential integrity of game content.
package validation

import "fmt"

// Error represents a failure that stops a validation run outright,
// as opposed to a violation found in the content itself
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
