// Package validation checks the structural and referential integrity of game content.
package validation

import (
	"fmt"

	"github.com/jonathan/stamp-office/internal/content"
	"github.com/jonathan/stamp-office/internal/types"
	"github.com/tidwall/gjson"
)

// Validator runs the per-category content checks.
// Every check reports all violations it finds instead of stopping at the first.
type Validator struct {
	Keys     RequiredKeys
	MaxWords int
	Scope    IDScope
}

// New creates a Validator with the default required keys
func New(maxWords int, scope IDScope) *Validator {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if scope == "" {
		scope = ScopeGlobal
	}
	return &Validator{
		Keys:     DefaultRequiredKeys(),
		MaxWords: maxWords,
		Scope:    scope,
	}
}

// ValidateToasts checks the toast list and returns the ids it saw.
// The id set feeds ticket validation, so toasts must be validated first.
func (v *Validator) ValidateToasts(doc *content.Document) ([]types.Violation, IDSet) {
	var violations []types.Violation
	toastIDs := IDSet{}

	for _, toast := range doc.List("toasts") {
		id := recordID(toast)

		for _, key := range missingKeys(toast, v.Keys.Toast) {
			violations = append(violations, violation(types.CategoryToast, types.KindMissingRequiredKey, doc, id,
				"Toast %s missing required key: %s", id, key))
		}

		if toastIDs.Has(id) {
			violations = append(violations, violation(types.CategoryToast, types.KindDuplicateID, doc, id,
				"Duplicate ID: %s", id))
		}
		toastIDs.Add(id)
	}

	return violations, toastIDs
}

// ValidateRules checks the rule list
func (v *Validator) ValidateRules(doc *content.Document) []types.Violation {
	var violations []types.Violation
	seen := IDSet{}

	for _, rule := range doc.List("rules") {
		id := recordID(rule)

		for _, key := range missingKeys(rule, v.Keys.Rule) {
			violations = append(violations, violation(types.CategoryRule, types.KindMissingRequiredKey, doc, id,
				"Rule %s missing required key: %s", id, key))
		}

		if seen.Has(id) {
			violations = append(violations, violation(types.CategoryRule, types.KindDuplicateID, doc, id,
				"Duplicate ID: %s", id))
		}
		seen.Add(id)

		text := rule.Get("text").String()
		if !WithinWordLimit(text, v.MaxWords) {
			violations = append(violations, violation(types.CategoryRule, types.KindWordCountExceeded, doc, id,
				"Rule %s text exceeds %d words: \"%s\"", id, v.MaxWords, text))
		}
	}

	return violations
}

// ValidateTickets checks one ticket document. Ticket ids are checked against
// and added to ids, which the caller shares across files or resets per file
// depending on the id scope.
func (v *Validator) ValidateTickets(doc *content.Document, toastIDs, ids IDSet) []types.Violation {
	var violations []types.Violation

	for _, ticket := range doc.List("tickets") {
		id := recordID(ticket)

		for _, key := range missingKeys(ticket, v.Keys.Ticket) {
			violations = append(violations, violation(types.CategoryTicket, types.KindMissingRequiredKey, doc, id,
				"Ticket %s missing required key: %s", id, key))
		}

		if ids.Has(id) {
			format := "Duplicate ticket ID across files: %s"
			if v.Scope == ScopeFile {
				format = "Duplicate ticket ID: %s"
			}
			violations = append(violations, violation(types.CategoryTicket, types.KindDuplicateID, doc, id, format, id))
		}
		ids.Add(id)

		for _, field := range []string{"text", "attachment"} {
			value := ticket.Get(field).String()
			if !WithinWordLimit(value, v.MaxWords) {
				violations = append(violations, violation(types.CategoryTicket, types.KindWordCountExceeded, doc, id,
					"Ticket %s %s exceeds %d words: \"%s\"", id, field, v.MaxWords, value))
			}
		}

		outcomes := ticket.Get("outcomes")
		if !outcomes.IsObject() {
			continue
		}
		outcomes.ForEach(func(stamp, outcome gjson.Result) bool {
			for _, key := range missingKeys(outcome, v.Keys.Outcome) {
				violations = append(violations, violation(types.CategoryTicket, types.KindMissingRequiredKey, doc, id,
					"Ticket %s outcome %s missing key: %s", id, stamp.String(), key))
			}

			ref := outcome.Get("toast_id")
			if !truthy(ref) {
				return true
			}
			if toastID := ref.String(); !toastIDs.Has(toastID) {
				violations = append(violations, violation(types.CategoryTicket, types.KindUnknownToastReference, doc, id,
					"Ticket %s unknown toast_id: %s", id, toastID))
			}
			return true
		})
	}

	return violations
}

func recordID(record gjson.Result) string {
	id := record.Get("id")
	if !id.Exists() {
		return unknownID
	}
	return id.String()
}

func missingKeys(record gjson.Result, keys []string) []string {
	var missing []string
	for _, key := range keys {
		if !record.Get(gjson.Escape(key)).Exists() {
			missing = append(missing, key)
		}
	}
	return missing
}

func violation(category types.Category, kind types.Kind, doc *content.Document, id, format string, args ...any) types.Violation {
	return types.Violation{
		Category: category,
		Kind:     kind,
		File:     doc.Name,
		EntityID: id,
		Message:  fmt.Sprintf(format, args...),
	}
}

// truthy reports whether a JSON value is set to something other than null,
// false, zero or an empty string, array or object.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		return len(r.Map()) > 0
	}
	return true
}
