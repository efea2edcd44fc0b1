// Package validation checks the structural and referential integrity of game content.
package validation

import (
	"fmt"
	"sort"
)

// unknownID labels records that have no id key
const unknownID = "UNKNOWN"

// IDSet is a set of entity ids
type IDSet map[string]struct{}

// NewIDSet builds a set holding ids
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IDScope controls how far ticket-id uniqueness reaches
type IDScope string

const (
	// ScopeGlobal requires ticket ids to be unique across every ticket file
	ScopeGlobal IDScope = "global"
	// ScopeFile requires ticket ids to be unique within each ticket file only
	ScopeFile IDScope = "file"
)

// ParseIDScope converts a config or flag value into an IDScope
func ParseIDScope(s string) (IDScope, error) {
	switch IDScope(s) {
	case ScopeGlobal, ScopeFile:
		return IDScope(s), nil
	case "":
		return ScopeGlobal, nil
	default:
		return "", fmt.Errorf("unknown ticket id scope %q (want %q or %q)", s, ScopeGlobal, ScopeFile)
	}
}
