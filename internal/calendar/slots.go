package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/clavrhq/clavr/internal/contract"
)

// slotStep is the search granularity: candidate starts land on a
// 30-minute grid.
const slotStep = 30 * time.Minute

// WorkingHours bounds slot suggestions to business-appropriate times.
type WorkingHours struct {
	StartHour int // inclusive, 24h clock
	EndHour   int // exclusive, 24h clock
}

// DefaultWorkingHours is the 09:00-18:00 window.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{StartHour: 9, EndHour: 18}
}

// SlotRequest parameterizes a free-slot search.
type SlotRequest struct {
	RangeStart       time.Time
	RangeEnd         time.Time
	DurationMin      int
	Busy             []TimeInterval
	PreferredStart   *time.Time // anchor the cursor near a requested time
	MaxCount         int
	WorkingHoursOnly bool
	Hours            WorkingHours
}

// FindFreeSlots enumerates 30-minute-aligned start times in
// [RangeStart, RangeEnd) and returns the first MaxCount that fit the
// duration without touching any busy interval. When a candidate collides,
// the cursor jumps past the busy interval's end rather than probing every
// grid position across it.
func FindFreeSlots(req SlotRequest) []contract.TimeSlot {
	if req.MaxCount <= 0 || req.DurationMin <= 0 || !req.RangeStart.Before(req.RangeEnd) {
		return nil
	}
	hours := req.Hours
	if hours.EndHour <= hours.StartHour {
		hours = DefaultWorkingHours()
	}

	busy := filterBusy(req.Busy, TimeInterval{Start: req.RangeStart, End: req.RangeEnd})
	duration := time.Duration(req.DurationMin) * time.Minute

	cursor := req.RangeStart
	if req.PreferredStart != nil && !req.PreferredStart.Before(req.RangeStart) {
		cursor = *req.PreferredStart
	}
	// Whole-hour starts read better in suggestions.
	cursor = truncateToHour(cursor)

	var slots []contract.TimeSlot
	for len(slots) < req.MaxCount {
		if req.WorkingHoursOnly {
			cursor = clampToWorkingHours(cursor, hours)
		}

		slotEnd := cursor.Add(duration)
		if slotEnd.After(req.RangeEnd) {
			break
		}

		candidate := TimeInterval{Start: cursor, End: slotEnd}
		if blocked, blocker := firstOverlap(candidate, busy); blocked {
			// Skip-ahead: resume just past the colliding interval,
			// re-aligned to the grid.
			cursor = alignUp(blocker.End)
			continue
		}

		slots = append(slots, contract.TimeSlot{
			Start:       cursor,
			End:         slotEnd,
			DisplayText: FormatSlot(cursor, slotEnd),
		})
		cursor = cursor.Add(slotStep)
	}

	return slots
}

// FormatSlot renders a slot as e.g. "Mon Jan 2, 2:00 PM - 3:00 PM".
func FormatSlot(start, end time.Time) string {
	return fmt.Sprintf("%s, %s - %s",
		start.Format("Mon Jan 2"),
		start.Format("3:04 PM"),
		end.Format("3:04 PM"))
}

// filterBusy keeps intervals overlapping the range, sorted by start.
func filterBusy(busy []TimeInterval, rng TimeInterval) []TimeInterval {
	var kept []TimeInterval
	for _, iv := range busy {
		if Overlaps(iv, rng) {
			kept = append(kept, iv)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Start.Before(kept[j].Start)
	})
	return kept
}

func firstOverlap(candidate TimeInterval, busy []TimeInterval) (bool, TimeInterval) {
	for _, iv := range busy {
		if Overlaps(candidate, iv) {
			return true, iv
		}
	}
	return false, TimeInterval{}
}

// clampToWorkingHours moves a cursor outside working hours to the next
// work-start: earlier the same day before StartHour, the following day at
// or past EndHour.
func clampToWorkingHours(cursor time.Time, hours WorkingHours) time.Time {
	h := cursor.Hour()
	if h < hours.StartHour {
		return workStart(cursor, hours)
	}
	if h >= hours.EndHour {
		return workStart(cursor.AddDate(0, 0, 1), hours)
	}
	return cursor
}

func workStart(day time.Time, hours WorkingHours) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hours.StartHour, 0, 0, 0, day.Location())
}

func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// alignUp rounds t up to the next 30-minute boundary; an already-aligned
// time is returned unchanged.
func alignUp(t time.Time) time.Time {
	t = t.Truncate(time.Second)
	aligned := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	for aligned.Before(t) {
		aligned = aligned.Add(slotStep)
	}
	return aligned
}
