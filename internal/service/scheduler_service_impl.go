package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/calendar"
	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/repository"
	"github.com/clavrhq/clavr/internal/travel"
)

// conflictWindowDays is the listing window for a conflict check: the
// proposed day plus the week the suggestion search may reach into.
const conflictWindowDays = 7

type schedulerService struct {
	events   EventSource
	profiles repository.UserProfileRepo
	travel   travel.Provider
	observer UseCaseObserver
}

func NewSchedulerService(
	events EventSource,
	profiles repository.UserProfileRepo,
	travelProvider travel.Provider,
	observers ...UseCaseObserver,
) SchedulerService {
	if travelProvider == nil {
		travelProvider = travel.Noop{}
	}
	return &schedulerService{
		events:   events,
		profiles: profiles,
		travel:   travelProvider,
		observer: useCaseObserverOrNoop(observers),
	}
}

// CheckConflict validates a proposed booking against the calendar. Direct
// overlaps come first; a travel-time conflict is only synthesized when the
// slot itself is free. When anything conflicts, alternatives for the same
// duration are attached.
func (s *schedulerService) CheckConflict(ctx context.Context, req contract.ConflictCheckRequest) (result *contract.ConflictResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"title": req.Title}
	defer func() {
		if result != nil {
			fields["has_conflict"] = result.HasConflict
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "check-conflict",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	loc := profileLocation(profile)

	interval, durationMin, err := resolveInterval(req, profile, loc)
	if err != nil {
		return nil, err
	}

	windowStart := startOfDayIn(interval.Start, loc)
	windowEnd := windowStart.AddDate(0, 0, conflictWindowDays)
	events, err := s.events.ListEvents(ctx, windowStart, windowEnd)
	if err != nil {
		// Fail closed: never report a slot free without calendar data.
		return nil, fmt.Errorf("listing calendar events: %w: %v", ErrUpstreamUnavailable, err)
	}

	proposed := calendar.ProposedBooking{
		Title:          req.Title,
		Interval:       interval,
		Location:       req.Location,
		ExcludeEventID: req.ExcludeEventID,
	}
	scan := calendar.FindConflicts(proposed, events)

	result = &contract.ConflictResult{}
	for _, ev := range scan.Conflicts {
		result.Conflicts = append(result.Conflicts, contract.ConflictEntry{Event: ev})
	}

	if len(result.Conflicts) == 0 {
		if entry, ok := s.travelConflict(ctx, profile, scan.Previous, proposed); ok {
			result.Conflicts = append(result.Conflicts, entry)
		}
	}

	result.HasConflict = len(result.Conflicts) > 0
	if result.HasConflict {
		result.Suggestions = calendar.SuggestAlternatives(calendar.SuggestRequest{
			ProposedStart:  interval.Start,
			DurationMin:    durationMin,
			Events:         events,
			MaxSuggestions: profile.MaxSuggestions,
			Hours:          profileHours(profile),
			ExcludeEventID: req.ExcludeEventID,
		})
	}
	return result, nil
}

// travelConflict runs the secondary travel check. It is best-effort: a
// provider failure is observed and skipped rather than failing the whole
// conflict check.
func (s *schedulerService) travelConflict(
	ctx context.Context,
	profile *domain.UserProfile,
	previous *domain.CalendarEvent,
	proposed calendar.ProposedBooking,
) (contract.ConflictEntry, bool) {
	if !profile.TravelCheckEnabled || previous == nil {
		return contract.ConflictEntry{}, false
	}
	if proposed.Location == "" || previous.Location == "" || previous.Location == proposed.Location {
		return contract.ConflictEntry{}, false
	}

	duration, ok, err := s.travel.Estimate(ctx, previous.Location, proposed.Location, proposed.Interval.Start)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "travel-estimate",
			StartedAt: time.Now().UTC(),
			Success:   false,
			Err:       err,
			Fields:    map[string]any{"origin": previous.Location, "destination": proposed.Location},
		})
		return contract.ConflictEntry{}, false
	}
	if !ok {
		return contract.ConflictEntry{}, false
	}

	tc, flagged := calendar.CheckTravel(*previous, proposed, duration)
	if !flagged {
		return contract.ConflictEntry{}, false
	}
	return contract.ConflictEntry{Event: tc.Previous, Reason: tc.Reason}, true
}

func (s *schedulerService) FindFreeSlots(ctx context.Context, req contract.FreeSlotsRequest) (*contract.FreeSlotsResponse, error) {
	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	loc := profileLocation(profile)

	if req.Day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", ErrInvalidInput)
	}
	durationMin := req.DurationMin
	if durationMin <= 0 {
		durationMin = profile.DefaultEventMin
	}
	maxCount := req.MaxCount
	if maxCount <= 0 {
		maxCount = profile.MaxSuggestions
	}

	dayStart := startOfDayIn(req.Day, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	events, err := s.events.ListEvents(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w: %v", ErrUpstreamUnavailable, err)
	}

	var busy []calendar.TimeInterval
	for _, ev := range events {
		if !ev.Blocks() {
			continue
		}
		busy = append(busy, calendar.TimeInterval{Start: ev.Start, End: ev.End})
	}

	slots := calendar.FindFreeSlots(calendar.SlotRequest{
		RangeStart:       dayStart,
		RangeEnd:         dayEnd,
		DurationMin:      durationMin,
		Busy:             busy,
		MaxCount:         maxCount,
		WorkingHoursOnly: req.WorkingHoursOnly,
		Hours:            profileHours(profile),
	})
	return &contract.FreeSlotsResponse{Slots: slots}, nil
}

// Book inserts the event without re-checking conflicts; callers run
// CheckConflict first and may book anyway after confirmation.
func (s *schedulerService) Book(ctx context.Context, req contract.ConflictCheckRequest) (id string, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "book-event",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"title": req.Title},
		})
	}()

	if req.Title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return "", err
	}
	loc := profileLocation(profile)

	interval, _, err := resolveInterval(req, profile, loc)
	if err != nil {
		return "", err
	}

	id, err = s.events.InsertEvent(ctx, domain.CalendarEvent{
		Title:        req.Title,
		Start:        interval.Start,
		End:          interval.End,
		Location:     req.Location,
		Transparency: domain.TransparencyOpaque,
	})
	if err != nil {
		return "", fmt.Errorf("inserting event: %w: %v", ErrUpstreamUnavailable, err)
	}
	return id, nil
}

func (s *schedulerService) Reschedule(ctx context.Context, ev domain.CalendarEvent) error {
	if ev.ID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if _, err := calendar.NewInterval(ev.Start, ev.End); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.events.UpdateEvent(ctx, ev); err != nil {
		return fmt.Errorf("updating event: %w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

func (s *schedulerService) Cancel(ctx context.Context, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if err := s.events.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("deleting event: %w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// resolveInterval normalizes a check request into a concrete interval in
// the profile's timezone, deriving the end from the duration (or the
// profile default) when the request omits it.
func resolveInterval(req contract.ConflictCheckRequest, profile *domain.UserProfile, loc *time.Location) (calendar.TimeInterval, int, error) {
	if req.Start.IsZero() {
		return calendar.TimeInterval{}, 0, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	durationMin := req.DurationMin
	end := req.End
	switch {
	case durationMin > 0 && end.IsZero():
		end = req.Start.Add(time.Duration(durationMin) * time.Minute)
	case !end.IsZero():
		durationMin = int(end.Sub(req.Start).Minutes())
	default:
		durationMin = profile.DefaultEventMin
		end = req.Start.Add(time.Duration(durationMin) * time.Minute)
	}

	interval, err := calendar.NewInterval(req.Start, end)
	if err != nil {
		return calendar.TimeInterval{}, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return interval.In(loc), durationMin, nil
}
