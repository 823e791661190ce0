package calendar

import (
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/domain"
)

// TravelConflict is a synthesized conflict: the slot itself is free, but
// the user cannot leave the previous event early enough to arrive on time.
type TravelConflict struct {
	Previous          domain.CalendarEvent
	TravelDuration    time.Duration
	RequiredDeparture time.Time
	Reason            string
}

// CheckTravel decides whether travel from the previous event's location
// makes the proposed start unreachable. travelDuration is the provider's
// estimate for arriving at proposed.Interval.Start. The check only applies
// when the slot has no direct conflicts; the caller enforces that, along
// with the provider/location preconditions.
//
// Only the single nearest preceding event is considered. Multi-stop days
// can under-detect; that matches the product behavior on purpose.
func CheckTravel(previous domain.CalendarEvent, proposed ProposedBooking, travelDuration time.Duration) (*TravelConflict, bool) {
	if travelDuration <= 0 {
		return nil, false
	}

	start := proposed.Interval.Start.Truncate(time.Second)
	departure := start.Add(-travelDuration)
	prevEnd := previous.End.Truncate(time.Second)

	if !departure.Before(prevEnd) {
		return nil, false
	}

	return &TravelConflict{
		Previous:          previous,
		TravelDuration:    travelDuration,
		RequiredDeparture: departure,
		Reason: fmt.Sprintf("Travel time of %d min required from %q",
			int(travelDuration.Minutes()), previous.Location),
	}, true
}
