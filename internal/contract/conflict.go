// Package contract defines the request/response types exchanged between
// services, the CLI, and the conflict engine.
package contract

import (
	"time"

	"github.com/clavrhq/clavr/internal/domain"
)

// TimeSlot is a candidate free interval of the requested duration.
// Slots are generated per request and never persisted.
type TimeSlot struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DisplayText string    `json:"display_text"`
}

// ConflictEntry is one conflicting event. Reason is empty for direct
// overlaps and carries the travel explanation for synthesized entries.
type ConflictEntry struct {
	Event  domain.CalendarEvent `json:"event"`
	Reason string               `json:"reason,omitempty"`
}

// ConflictResult is the outcome of a conflict check.
// HasConflict is always len(Conflicts) > 0, and Suggestions are only
// populated when conflicts exist.
type ConflictResult struct {
	HasConflict bool            `json:"has_conflict"`
	Conflicts   []ConflictEntry `json:"conflicts"`
	Suggestions []TimeSlot      `json:"suggestions"`
}

// ConflictCheckRequest describes a proposed booking to validate.
// End may be zero; the service derives it from DurationMin or the
// profile's default duration.
type ConflictCheckRequest struct {
	Title          string
	Start          time.Time
	End            time.Time
	DurationMin    int
	Location       string
	ExcludeEventID string
}
