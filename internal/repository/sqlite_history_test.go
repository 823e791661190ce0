package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepo_InsertAndListRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoryRepo(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Insert(ctx, &domain.ExchangeLog{
			ID:        uuid.NewString(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Query:     fmt.Sprintf("query %d", i),
			Intent:    "agenda",
			Reply:     fmt.Sprintf("reply %d", i),
		})
		require.NoError(t, err)
	}

	logs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	// Newest first.
	assert.Equal(t, "query 2", logs[0].Query)
	assert.Equal(t, "query 0", logs[2].Query)
	assert.Equal(t, "agenda", logs[0].Intent)
	assert.Equal(t, base.Add(2*time.Minute), logs[0].CreatedAt)
}

func TestHistoryRepo_ListRecent_RespectsLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoryRepo(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Insert(ctx, &domain.ExchangeLog{
			ID:        uuid.NewString(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Query:     fmt.Sprintf("query %d", i),
		})
		require.NoError(t, err)
	}

	logs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "query 4", logs[0].Query)
	assert.Equal(t, "query 3", logs[1].Query)
}

func TestHistoryRepo_Insert_FillsMissingTimestamp(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoryRepo(db)
	ctx := context.Background()

	err := repo.Insert(ctx, &domain.ExchangeLog{
		ID:    uuid.NewString(),
		Query: "what's next",
	})
	require.NoError(t, err)

	logs, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].CreatedAt.IsZero())
}

func TestHistoryRepo_ListRecent_EmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoryRepo(db)

	logs, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
