package testutil

import (
	"time"

	"github.com/clavrhq/clavr/internal/domain"
)

// Event builds an opaque calendar event for tests.
func Event(id, title string, start, end time.Time) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:           id,
		Title:        title,
		Start:        start,
		End:          end,
		Transparency: domain.TransparencyOpaque,
	}
}

// EventAt builds an opaque event on the given day at hour:min lasting the
// given number of minutes.
func EventAt(id, title string, day time.Time, hour, min, durationMin int) domain.CalendarEvent {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
	return Event(id, title, start, start.Add(time.Duration(durationMin)*time.Minute))
}

// TransparentEvent builds a non-blocking event for tests.
func TransparentEvent(id, title string, start, end time.Time) domain.CalendarEvent {
	ev := Event(id, title, start, end)
	ev.Transparency = domain.TransparencyTransparent
	return ev
}
