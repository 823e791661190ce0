package contract

import (
	"time"

	"github.com/clavrhq/clavr/internal/domain"
)

// AgendaRequest asks for the events of a day (or multi-day window).
type AgendaRequest struct {
	Day  time.Time
	Days int // window length; <= 0 means a single day
}

// AgendaResponse lists the window's events in start order.
type AgendaResponse struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Events     []domain.CalendarEvent
}

// FreeSlotsRequest asks for open slots of a given duration.
type FreeSlotsRequest struct {
	Day              time.Time
	DurationMin      int
	MaxCount         int
	WorkingHoursOnly bool
}

// FreeSlotsResponse lists open slots in chronological order.
type FreeSlotsResponse struct {
	Slots []TimeSlot
}

// EmailSummaryRequest asks for a mailbox digest.
type EmailSummaryRequest struct {
	Query      string // optional Gmail search query
	MaxResults int
}

// EmailSummaryResponse carries matching messages plus the unread total.
type EmailSummaryResponse struct {
	Messages    []domain.EmailMessage
	UnreadCount int
	Summary     string // LLM digest when available, otherwise deterministic
}
