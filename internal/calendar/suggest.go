package calendar

import (
	"time"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
)

// SuggestRequest parameterizes the multi-strategy alternative search.
type SuggestRequest struct {
	ProposedStart  time.Time
	DurationMin    int
	Events         []domain.CalendarEvent
	MaxSuggestions int
	Hours          WorkingHours
	ExcludeEventID string // reschedules skip their own busy block
}

// SuggestAlternatives searches expanding windows for open slots: the
// proposed day first (anchored near the requested time), then the next
// day, then the full week from the proposed day. Each strategy only asks
// for the count still missing, so results stay ordered closest-first and
// never exceed MaxSuggestions. A fully booked week yields an empty slice,
// not an error.
func SuggestAlternatives(req SuggestRequest) []contract.TimeSlot {
	if req.MaxSuggestions <= 0 || req.DurationMin <= 0 {
		return nil
	}

	busy := busyIntervals(req.Events, req.ExcludeEventID)
	dayStart := startOfDay(req.ProposedStart)
	preferred := req.ProposedStart

	var suggestions []contract.TimeSlot

	// Same day, preferring slots near the requested start.
	suggestions = append(suggestions, FindFreeSlots(SlotRequest{
		RangeStart:       dayStart,
		RangeEnd:         dayStart.AddDate(0, 0, 1),
		DurationMin:      req.DurationMin,
		Busy:             busy,
		PreferredStart:   &preferred,
		MaxCount:         req.MaxSuggestions,
		WorkingHoursOnly: true,
		Hours:            req.Hours,
	})...)

	// Next day, no anchor.
	if remaining := req.MaxSuggestions - len(suggestions); remaining > 0 {
		nextDay := dayStart.AddDate(0, 0, 1)
		suggestions = append(suggestions, FindFreeSlots(SlotRequest{
			RangeStart:       nextDay,
			RangeEnd:         nextDay.AddDate(0, 0, 1),
			DurationMin:      req.DurationMin,
			Busy:             busy,
			MaxCount:         remaining,
			WorkingHoursOnly: true,
			Hours:            req.Hours,
		})...)
	}

	// Whole week from the proposed day.
	if remaining := req.MaxSuggestions - len(suggestions); remaining > 0 {
		suggestions = append(suggestions, dedupeSlots(FindFreeSlots(SlotRequest{
			RangeStart:       dayStart,
			RangeEnd:         dayStart.AddDate(0, 0, 7),
			DurationMin:      req.DurationMin,
			Busy:             busy,
			MaxCount:         remaining + len(suggestions),
			WorkingHoursOnly: true,
			Hours:            req.Hours,
		}), suggestions, remaining)...)
	}

	return suggestions
}

// busyIntervals projects blocking events onto intervals, dropping
// transparent events and the excluded id.
func busyIntervals(events []domain.CalendarEvent, excludeID string) []TimeInterval {
	var busy []TimeInterval
	for _, ev := range events {
		if !ev.Blocks() {
			continue
		}
		if excludeID != "" && ev.ID == excludeID {
			continue
		}
		busy = append(busy, TimeInterval{Start: ev.Start, End: ev.End})
	}
	return busy
}

// dedupeSlots filters week-strategy slots already produced by the day
// strategies, keeping at most limit new entries.
func dedupeSlots(candidates, seen []contract.TimeSlot, limit int) []contract.TimeSlot {
	var fresh []contract.TimeSlot
	for _, c := range candidates {
		if len(fresh) >= limit {
			break
		}
		dup := false
		for _, s := range seen {
			if c.Start.Equal(s.Start) {
				dup = true
				break
			}
		}
		if !dup {
			fresh = append(fresh, c)
		}
	}
	return fresh
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
