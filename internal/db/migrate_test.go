package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"user_profile", "exchange_log"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrateSeedsDefaultProfile(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var timezone string
	var workStart, workEnd, travelEnabled int
	err = database.QueryRow(
		`SELECT timezone, work_start_hour, work_end_hour, travel_check_enabled
		 FROM user_profile WHERE id = 'default'`,
	).Scan(&timezone, &workStart, &workEnd, &travelEnabled)
	require.NoError(t, err)

	assert.Equal(t, "UTC", timezone)
	assert.Equal(t, 9, workStart)
	assert.Equal(t, 18, workEnd)
	assert.Equal(t, 1, travelEnabled)
}

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM user_profile`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
