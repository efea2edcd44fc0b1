// Package types provides type definitions for the game content handled by the stamp-office tools.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ToastFile is the document stored at data/toasts/toasts.json
type ToastFile struct {
	Toasts []Toast `json:"toasts"`
}

// Toast is a short reward or flavor message shown to the player
type Toast struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Rarity string   `json:"rarity"`
	Tags   []string `json:"tags"`
}

// RuleFile is the document stored at data/rules/rules.json
type RuleFile struct {
	Rules []Rule `json:"rules"`
}

// Rule is a single line of rule text grouped by shift
type Rule struct {
	ID    string `json:"id"`
	Shift string `json:"shift"`
	Text  string `json:"text"`
}

// TicketFile is one data/tickets/shiftNN.json document
type TicketFile struct {
	Tickets []Ticket `json:"tickets"`
}

// Ticket is a unit of gameplay content presented to the player for stamping
type Ticket struct {
	ID            string             `json:"id"`
	Shift         string             `json:"shift"`
	Type          string             `json:"type"`
	Text          string             `json:"text"`
	Attachment    string             `json:"attachment"`
	AllowedStamps []string           `json:"allowed_stamps"`
	Rarity        string             `json:"rarity"`
	Tags          []string           `json:"tags"`
	Outcomes      map[string]Outcome `json:"outcomes"`
}

// Outcome is the effect of applying one stamp to a ticket.
// An empty ToastID means no toast is shown.
type Outcome struct {
	ToastID            string  `json:"toast_id"`
	MoodDelta          float64 `json:"mood_delta"`
	ContradictionDelta float64 `json:"contradiction_delta"`
}
