package calendar

import (
	"sort"
	"time"

	"github.com/clavrhq/clavr/internal/domain"
)

// ProposedBooking is a candidate event to check against the calendar.
// ExcludeEventID lets a reschedule skip the event being moved.
type ProposedBooking struct {
	Title          string
	Interval       TimeInterval
	Location       string
	ExcludeEventID string
}

// ConflictScan is the outcome of a single pass over candidate events.
// Previous is the latest event whose end is at or before the proposed
// start; it feeds the travel-time check and may be nil.
type ConflictScan struct {
	Conflicts []domain.CalendarEvent
	Previous  *domain.CalendarEvent
}

// FindConflicts returns the blocking events that overlap the proposed
// interval. Transparent events and the excluded event never conflict.
// The same pass tracks the nearest preceding event, so callers get the
// travel-check anchor without a second scan. Ties on end instant resolve
// to the later entry in start order.
func FindConflicts(proposed ProposedBooking, events []domain.CalendarEvent) ConflictScan {
	var scan ConflictScan
	if len(events) == 0 {
		return scan
	}

	if !sortedByStart(events) {
		sorted := make([]domain.CalendarEvent, len(events))
		copy(sorted, events)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Start.Before(sorted[j].Start)
		})
		events = sorted
	}

	start := proposed.Interval.Start.Truncate(time.Second)

	for i := range events {
		ev := events[i]
		if proposed.ExcludeEventID != "" && ev.ID == proposed.ExcludeEventID {
			continue
		}
		if !ev.Blocks() {
			continue
		}

		evInterval := TimeInterval{Start: ev.Start, End: ev.End}
		if Overlaps(proposed.Interval, evInterval) {
			scan.Conflicts = append(scan.Conflicts, ev)
		}

		end := ev.End.Truncate(time.Second)
		if !end.After(start) {
			if scan.Previous == nil || !end.Before(scan.Previous.End.Truncate(time.Second)) {
				prev := ev
				scan.Previous = &prev
			}
		}
	}

	return scan
}

func sortedByStart(events []domain.CalendarEvent) bool {
	for i := 1; i < len(events); i++ {
		if events[i].Start.Before(events[i-1].Start) {
			return false
		}
	}
	return true
}
