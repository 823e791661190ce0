package service

import (
	"context"
	"testing"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/repository"
	"github.com/clavrhq/clavr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteUserProfileRepo(db))
	ctx := context.Background()

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UTC", p.Timezone)

	p.Timezone = "Europe/Berlin"
	p.WorkStartHour = 8
	p.HomeLocation = "Berlin"
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", got.Timezone)
	assert.Equal(t, 8, got.WorkStartHour)
	assert.Equal(t, "Berlin", got.HomeLocation)
}

func TestProfileService_RejectsInvalidHours(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteUserProfileRepo(db))

	p := domain.DefaultUserProfile()
	p.WorkStartHour = 18
	p.WorkEndHour = 9
	assert.ErrorIs(t, svc.Save(context.Background(), p), ErrInvalidInput)
}

func TestProfileService_RejectsUnknownTimezone(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteUserProfileRepo(db))

	p := domain.DefaultUserProfile()
	p.Timezone = "Mars/Olympus_Mons"
	assert.ErrorIs(t, svc.Save(context.Background(), p), ErrInvalidInput)
}

func TestHistoryService_RecordAndRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewHistoryService(repository.NewSQLiteHistoryRepo(db))
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, "am I free at 3pm?", "check_availability", "Yes, you're free."))
	require.NoError(t, svc.Record(ctx, "book dentist tomorrow 10am", "schedule_event", "Booked."))

	logs, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.NotEmpty(t, logs[0].ID)

	assert.ErrorIs(t, svc.Record(ctx, "", "", ""), ErrInvalidInput)
}
