package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/testutil"
	"github.com/clavrhq/clavr/internal/travel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventSource serves canned events and records writes.
type fakeEventSource struct {
	events  []domain.CalendarEvent
	listErr error

	inserted []domain.CalendarEvent
	updated  []domain.CalendarEvent
	deleted  []string
	writeErr error
}

func (f *fakeEventSource) ListEvents(_ context.Context, _, _ time.Time) ([]domain.CalendarEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventSource) InsertEvent(_ context.Context, ev domain.CalendarEvent) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	f.inserted = append(f.inserted, ev)
	return "new-event-id", nil
}

func (f *fakeEventSource) UpdateEvent(_ context.Context, ev domain.CalendarEvent) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updated = append(f.updated, ev)
	return nil
}

func (f *fakeEventSource) DeleteEvent(_ context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeProfileRepo serves a fixed profile.
type fakeProfileRepo struct {
	profile *domain.UserProfile
	err     error
}

func (f *fakeProfileRepo) Get(context.Context) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(context.Context, *domain.UserProfile) error { return nil }

// monday is a fixed reference day; tests build events relative to it.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestCheckConflict_NoOverlap(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.EventAt("ev1", "Standup", monday, 9, 0, 30),
	}}
	svc := NewSchedulerService(source, nil, nil)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Dentist",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.Suggestions)
}

func TestCheckConflict_DirectOverlapWithSuggestions(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.EventAt("ev1", "Team sync", monday, 10, 0, 60),
	}}
	svc := NewSchedulerService(source, nil, nil)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Dentist",
		Start:       mondayAt(10, 30),
		DurationMin: 60,
	})
	require.NoError(t, err)
	assert.True(t, result.HasConflict)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "ev1", result.Conflicts[0].Event.ID)
	assert.Empty(t, result.Conflicts[0].Reason, "direct conflicts carry no reason")

	require.NotEmpty(t, result.Suggestions)
	for _, slot := range result.Suggestions {
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
	}
}

func TestCheckConflict_BackToBackIsNotConflict(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.EventAt("ev1", "Team sync", monday, 9, 0, 60),
	}}
	svc := NewSchedulerService(source, nil, nil)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Next meeting",
		Start:       mondayAt(10, 0),
		DurationMin: 30,
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckConflict_TransparentEventIgnored(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.TransparentEvent("ooo", "Holiday reminder", mondayAt(0, 0), mondayAt(23, 59)),
	}}
	svc := NewSchedulerService(source, nil, nil)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Lunch",
		Start:       mondayAt(12, 0),
		DurationMin: 60,
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckConflict_ExcludeEventIDForReschedule(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.EventAt("ev1", "Team sync", monday, 10, 0, 60),
	}}
	svc := NewSchedulerService(source, nil, nil)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:          "Team sync (moved)",
		Start:          mondayAt(10, 0),
		DurationMin:    60,
		ExcludeEventID: "ev1",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict, "an event never conflicts with itself")
}

func TestCheckConflict_DefaultDurationFromProfile(t *testing.T) {
	// 60-minute default: a proposal at 10:00 with no end or duration
	// must reach into the 10:45 event.
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.EventAt("ev1", "Review", monday, 10, 45, 30),
	}}
	svc := NewSchedulerService(source, nil, nil)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title: "Coffee chat",
		Start: mondayAt(10, 0),
	})
	require.NoError(t, err)
	assert.True(t, result.HasConflict)
}

func TestCheckConflict_TravelTimeTooTight(t *testing.T) {
	// Previous meeting ends 09:30 at Office A; the 10:00 slot at Office B
	// is free, but a 45-minute drive demands leaving by 09:15.
	source := &fakeEventSource{events: []domain.CalendarEvent{
		func() domain.CalendarEvent {
			ev := testutil.EventAt("prev", "Morning review", monday, 8, 0, 90)
			ev.Location = "Office A"
			return ev
		}(),
	}}
	provider := travel.Static{Durations: map[[2]string]time.Duration{
		{"Office A", "Office B"}: 45 * time.Minute,
	}}
	svc := NewSchedulerService(source, nil, provider)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Client meeting",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
		Location:    "Office B",
	})
	require.NoError(t, err)
	assert.True(t, result.HasConflict)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "prev", result.Conflicts[0].Event.ID)
	assert.Contains(t, result.Conflicts[0].Reason, "Travel time of 45 min")
	assert.NotEmpty(t, result.Suggestions)
}

func TestCheckConflict_TravelFeasible(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		func() domain.CalendarEvent {
			ev := testutil.EventAt("prev", "Morning review", monday, 8, 0, 60)
			ev.Location = "Office A"
			return ev
		}(),
	}}
	provider := travel.Static{Durations: map[[2]string]time.Duration{
		{"Office A", "Office B"}: 45 * time.Minute,
	}}
	svc := NewSchedulerService(source, nil, provider)

	// Ends 09:00, departure 09:15 needed: reachable.
	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Client meeting",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
		Location:    "Office B",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckConflict_TravelSkippedWhenDirectConflict(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		func() domain.CalendarEvent {
			ev := testutil.EventAt("prev", "Morning review", monday, 8, 0, 90)
			ev.Location = "Office A"
			return ev
		}(),
		testutil.EventAt("clash", "Team sync", monday, 10, 0, 60),
	}}
	provider := travel.Static{Durations: map[[2]string]time.Duration{
		{"Office A", "Office B"}: 45 * time.Minute,
	}}
	svc := NewSchedulerService(source, nil, provider)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Client meeting",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
		Location:    "Office B",
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "clash", result.Conflicts[0].Event.ID)
}

type failingTravelProvider struct{}

func (failingTravelProvider) Estimate(context.Context, string, string, time.Time) (time.Duration, bool, error) {
	return 0, false, errors.New("matrix quota exceeded")
}

func TestCheckConflict_TravelProviderFailureIsSkipped(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		func() domain.CalendarEvent {
			ev := testutil.EventAt("prev", "Morning review", monday, 8, 0, 90)
			ev.Location = "Office A"
			return ev
		}(),
	}}
	svc := NewSchedulerService(source, nil, failingTravelProvider{})

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Client meeting",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
		Location:    "Office B",
	})
	require.NoError(t, err, "provider failures must not fail the check")
	assert.False(t, result.HasConflict)
}

func TestCheckConflict_TravelDisabledByProfile(t *testing.T) {
	profile := domain.DefaultUserProfile()
	profile.TravelCheckEnabled = false

	source := &fakeEventSource{events: []domain.CalendarEvent{
		func() domain.CalendarEvent {
			ev := testutil.EventAt("prev", "Morning review", monday, 8, 0, 90)
			ev.Location = "Office A"
			return ev
		}(),
	}}
	provider := travel.Static{Durations: map[[2]string]time.Duration{
		{"Office A", "Office B"}: 45 * time.Minute,
	}}
	svc := NewSchedulerService(source, &fakeProfileRepo{profile: profile}, provider)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Client meeting",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
		Location:    "Office B",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckConflict_SameLocationSkipsTravel(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		func() domain.CalendarEvent {
			ev := testutil.EventAt("prev", "Morning review", monday, 8, 0, 90)
			ev.Location = "Office A"
			return ev
		}(),
	}}
	provider := travel.Static{Durations: map[[2]string]time.Duration{
		{"Office A", "Office A"}: time.Minute,
	}}
	svc := NewSchedulerService(source, nil, provider)

	result, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Follow-up",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
		Location:    "Office A",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestCheckConflict_UpstreamFailureFailsClosed(t *testing.T) {
	source := &fakeEventSource{listErr: errors.New("calendar API 503")}
	svc := NewSchedulerService(source, nil, nil)

	_, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title:       "Dentist",
		Start:       mondayAt(10, 0),
		DurationMin: 60,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCheckConflict_MissingStartRejected(t *testing.T) {
	svc := NewSchedulerService(&fakeEventSource{}, nil, nil)

	_, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{Title: "Dentist"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckConflict_EndBeforeStartRejected(t *testing.T) {
	svc := NewSchedulerService(&fakeEventSource{}, nil, nil)

	_, err := svc.CheckConflict(context.Background(), contract.ConflictCheckRequest{
		Title: "Dentist",
		Start: mondayAt(10, 0),
		End:   mondayAt(9, 0),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindFreeSlots_ReturnsOpenSlots(t *testing.T) {
	source := &fakeEventSource{events: []domain.CalendarEvent{
		testutil.EventAt("ev1", "Planning", monday, 9, 0, 120),
	}}
	svc := NewSchedulerService(source, nil, nil)

	resp, err := svc.FindFreeSlots(context.Background(), contract.FreeSlotsRequest{
		Day:              monday,
		DurationMin:      60,
		MaxCount:         2,
		WorkingHoursOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, mondayAt(11, 0), resp.Slots[0].Start)
	assert.Equal(t, mondayAt(11, 30), resp.Slots[1].Start)
}

func TestFindFreeSlots_UpstreamFailure(t *testing.T) {
	source := &fakeEventSource{listErr: errors.New("calendar API 503")}
	svc := NewSchedulerService(source, nil, nil)

	_, err := svc.FindFreeSlots(context.Background(), contract.FreeSlotsRequest{
		Day:         monday,
		DurationMin: 30,
		MaxCount:    3,
	})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestBook_InsertsEvent(t *testing.T) {
	source := &fakeEventSource{}
	svc := NewSchedulerService(source, nil, nil)

	id, err := svc.Book(context.Background(), contract.ConflictCheckRequest{
		Title:       "Dentist",
		Start:       mondayAt(10, 0),
		DurationMin: 45,
		Location:    "Main St 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-event-id", id)
	require.Len(t, source.inserted, 1)
	assert.Equal(t, "Dentist", source.inserted[0].Title)
	assert.Equal(t, mondayAt(10, 0), source.inserted[0].Start)
	assert.Equal(t, mondayAt(10, 45), source.inserted[0].End)
	assert.Equal(t, domain.TransparencyOpaque, source.inserted[0].Transparency)
}

func TestBook_RequiresTitle(t *testing.T) {
	svc := NewSchedulerService(&fakeEventSource{}, nil, nil)

	_, err := svc.Book(context.Background(), contract.ConflictCheckRequest{
		Start:       mondayAt(10, 0),
		DurationMin: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReschedule_UpdatesEvent(t *testing.T) {
	source := &fakeEventSource{}
	svc := NewSchedulerService(source, nil, nil)

	err := svc.Reschedule(context.Background(), domain.CalendarEvent{
		ID:    "ev1",
		Title: "Team sync",
		Start: mondayAt(14, 0),
		End:   mondayAt(15, 0),
	})
	require.NoError(t, err)
	require.Len(t, source.updated, 1)
	assert.Equal(t, "ev1", source.updated[0].ID)
}

func TestReschedule_RejectsInvalidInterval(t *testing.T) {
	svc := NewSchedulerService(&fakeEventSource{}, nil, nil)

	err := svc.Reschedule(context.Background(), domain.CalendarEvent{
		ID:    "ev1",
		Start: mondayAt(15, 0),
		End:   mondayAt(14, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_DeletesEvent(t *testing.T) {
	source := &fakeEventSource{}
	svc := NewSchedulerService(source, nil, nil)

	require.NoError(t, svc.Cancel(context.Background(), "ev1"))
	assert.Equal(t, []string{"ev1"}, source.deleted)
}

func TestCancel_RequiresID(t *testing.T) {
	svc := NewSchedulerService(&fakeEventSource{}, nil, nil)
	assert.ErrorIs(t, svc.Cancel(context.Background(), ""), ErrInvalidInput)
}
