package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhen(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2025-06-03T10:00:00Z", time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)},
		{"date and time", "2025-06-03 10:00", time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)},
		{"date only", "2025-06-03", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
		{"today with time", "today 15:30", time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)},
		{"tomorrow with time", "tomorrow 09:00", time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)},
		{"tomorrow bare", "tomorrow", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
		{"case insensitive", "Tomorrow 09:00", time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWhen(tt.input, now, time.UTC)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseWhen_Timezone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, berlin)

	got, err := parseWhen("tomorrow 09:00", now, berlin)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 3, 9, 0, 0, 0, berlin), got)
}

func TestParseWhen_Invalid(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC)

	_, err := parseWhen("next blursday", now, time.UTC)
	assert.Error(t, err)

	_, err = parseWhen("tomorrow 25:99", now, time.UTC)
	assert.Error(t, err)
}
