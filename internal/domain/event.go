package domain

import "time"

// Transparency mirrors the calendar-provider flag for whether an event
// blocks time on the calendar.
type Transparency string

const (
	// TransparencyOpaque marks an event that blocks its time range.
	// Providers that omit the flag default to opaque.
	TransparencyOpaque Transparency = "opaque"

	// TransparencyTransparent marks an informational event (all-day
	// reminders, OOO banners) that never participates in conflicts.
	TransparencyTransparent Transparency = "transparent"
)

// CalendarEvent is a normalized calendar entry as returned by an event
// source. Events are constructed fresh per listing call and never mutated.
type CalendarEvent struct {
	ID           string
	Title        string
	Start        time.Time
	End          time.Time
	Location     string
	Transparency Transparency
}

// Blocks reports whether the event occupies calendar time.
func (e CalendarEvent) Blocks() bool {
	return e.Transparency != TransparencyTransparent
}

// Duration returns the event length.
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
