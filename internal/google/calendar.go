package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/clavrhq/clavr/internal/domain"
)

// CalendarClient wraps the Google Calendar API for a single calendar.
type CalendarClient struct {
	svc        *calendarapi.Service
	calendarID string
	loc        *time.Location
}

// NewCalendarClient builds a client over an authenticated HTTP client.
// Events are localized into loc as they are read.
func NewCalendarClient(ctx context.Context, httpClient *http.Client, calendarID string, loc *time.Location) (*CalendarClient, error) {
	svc, err := calendarapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &CalendarClient{svc: svc, calendarID: calendarID, loc: loc}, nil
}

// ListEvents returns the calendar's events in [rangeStart, rangeEnd),
// sorted by start time with recurrences expanded. Cancelled entries are
// dropped; everything else is normalized into the configured timezone.
func (c *CalendarClient) ListEvents(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.CalendarEvent, error) {
	call := c.svc.Events.List(c.calendarID).
		TimeMin(rangeStart.Format(time.RFC3339)).
		TimeMax(rangeEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("listing events %s to %s: %w",
			rangeStart.Format(time.RFC3339), rangeEnd.Format(time.RFC3339), err)
	}

	events := make([]domain.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Status == "cancelled" {
			continue
		}
		ev, err := eventFromAPI(item, c.loc)
		if err != nil {
			// A single malformed event must not sink the listing.
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// InsertEvent creates an event and returns its provider id.
func (c *CalendarClient) InsertEvent(ctx context.Context, ev domain.CalendarEvent) (string, error) {
	created, err := c.svc.Events.Insert(c.calendarID, eventToAPI(ev)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("inserting event %q: %w", ev.Title, err)
	}
	return created.Id, nil
}

// UpdateEvent moves or edits an existing event in place.
func (c *CalendarClient) UpdateEvent(ctx context.Context, ev domain.CalendarEvent) error {
	if _, err := c.svc.Events.Update(c.calendarID, ev.ID, eventToAPI(ev)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("updating event %s: %w", ev.ID, err)
	}
	return nil
}

// DeleteEvent removes an event.
func (c *CalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("deleting event %s: %w", eventID, err)
	}
	return nil
}

// eventFromAPI normalizes a provider event: timed events parse their
// RFC3339 instants, all-day events span local midnights, and a missing
// transparency flag means opaque.
func eventFromAPI(item *calendarapi.Event, loc *time.Location) (domain.CalendarEvent, error) {
	start, err := parseEventTime(item.Start, loc)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, err := parseEventTime(item.End, loc)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event %s end: %w", item.Id, err)
	}

	transparency := domain.TransparencyOpaque
	if item.Transparency == "transparent" {
		transparency = domain.TransparencyTransparent
	}

	return domain.CalendarEvent{
		ID:           item.Id,
		Title:        item.Summary,
		Start:        start,
		End:          end,
		Location:     item.Location,
		Transparency: transparency,
	}, nil
}

func parseEventTime(edt *calendarapi.EventDateTime, loc *time.Location) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing event time")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing %q: %w", edt.DateTime, err)
		}
		return t.In(loc), nil
	}
	if edt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", edt.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing %q: %w", edt.Date, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("event time has neither dateTime nor date")
}

func eventToAPI(ev domain.CalendarEvent) *calendarapi.Event {
	return &calendarapi.Event{
		Summary:      ev.Title,
		Location:     ev.Location,
		Transparency: string(ev.Transparency),
		Start:        &calendarapi.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:          &calendarapi.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
	}
}
