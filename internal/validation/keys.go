// Package validation checks the structural and referential integrity of game content.
package validation

// RequiredKeys lists the keys every record of each entity must carry
type RequiredKeys struct {
	Toast   []string
	Rule    []string
	Ticket  []string
	Outcome []string
}

// DefaultRequiredKeys returns the required-key tables for the current content format.
// A fresh value is built on every call so callers cannot mutate shared state.
func DefaultRequiredKeys() RequiredKeys {
	return RequiredKeys{
		Toast:   []string{"id", "text", "rarity", "tags"},
		Rule:    []string{"id", "shift", "text"},
		Ticket:  []string{"id", "shift", "type", "text", "attachment", "allowed_stamps", "rarity", "tags", "outcomes"},
		Outcome: []string{"toast_id", "mood_delta", "contradiction_delta"},
	}
}
