package formatter

import (
	"testing"
	"time"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatConflictResult_Free(t *testing.T) {
	out := FormatConflictResult(&contract.ConflictResult{})
	assert.Contains(t, out, "FREE")
	assert.Contains(t, out, "The slot is free.")
	assert.NotContains(t, out, "ALTERNATIVES")
}

func TestFormatConflictResult_DirectConflictWithSuggestions(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	resp := &contract.ConflictResult{
		HasConflict: true,
		Conflicts: []contract.ConflictEntry{
			{Event: domain.CalendarEvent{
				Title:    "Team sync",
				Start:    start,
				End:      start.Add(time.Hour),
				Location: "Room 4",
			}},
		},
		Suggestions: []contract.TimeSlot{
			{DisplayText: "Mon Jun 2, 11:30 AM - 12:30 PM"},
		},
	}

	out := FormatConflictResult(resp)
	assert.Contains(t, out, "CONFLICT")
	assert.Contains(t, out, "Team sync")
	assert.Contains(t, out, "10:00–11:00")
	assert.Contains(t, out, "Room 4")
	assert.Contains(t, out, "Mon Jun 2, 11:30 AM - 12:30 PM")
}

func TestFormatConflictResult_TravelReason(t *testing.T) {
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	resp := &contract.ConflictResult{
		HasConflict: true,
		Conflicts: []contract.ConflictEntry{
			{
				Event: domain.CalendarEvent{
					Title: "Morning review", Start: start, End: start.Add(90 * time.Minute),
					Location: "Office A",
				},
				Reason: `Travel time of 45 min required from "Office A"`,
			},
		},
	}

	out := FormatConflictResult(resp)
	assert.Contains(t, out, "Travel time of 45 min")
}

func TestFormatSuggestions_Empty(t *testing.T) {
	out := FormatSuggestions(nil)
	assert.Contains(t, out, "No open slot found in the coming week.")
}
